package domain

import (
	"context"
	"strconv"
	"time"
)

// AnswerRecord is the stored detail of one answered question.
type AnswerRecord struct {
	QuestionText   string             `json:"question_text"`
	SelectedOption *string            `json:"selected_option"`
	CorrectOption  string             `json:"correct_option"`
	Options        map[string]*string `json:"options"`
}

// AnswerSheet maps a question id (decimal string) to its record.
type AnswerSheet map[string]AnswerRecord

// StudentQuizAttempt is one scored submission. Attempts are never updated.
type StudentQuizAttempt struct {
	ID             int64
	StudentID      int64
	QuizID         int64
	Score          int
	TotalQuestions int
	AttemptDate    time.Time
	StudentAnswers AnswerSheet
}

// ScoreSubmission grades answers (keyed by question id) against questions.
// A question without an answer is recorded with a nil selection and scores
// nothing; matching is exact and case-sensitive.
func ScoreSubmission(questions []Question, answers map[int64]string) (int, AnswerSheet) {
	score := 0
	sheet := make(AnswerSheet, len(questions))
	for i := range questions {
		q := &questions[i]
		var selected *string
		if answer, ok := answers[q.ID]; ok {
			a := answer
			selected = &a
		}
		if selected != nil && *selected == q.CorrectAnswer {
			score++
		}
		sheet[strconv.FormatInt(q.ID, 10)] = AnswerRecord{
			QuestionText:   q.QuestionStatement,
			SelectedOption: selected,
			CorrectOption:  q.CorrectAnswer,
			Options:        q.StoredOptions(),
		}
	}
	return score, sheet
}

// LatestAttemptByQuiz keeps, per quiz, the attempt with the latest date.
// Ties on date go to the higher id.
func LatestAttemptByQuiz(attempts []StudentQuizAttempt) map[int64]StudentQuizAttempt {
	latest := make(map[int64]StudentQuizAttempt)
	for _, a := range attempts {
		prev, ok := latest[a.QuizID]
		if !ok || a.AttemptDate.After(prev.AttemptDate) ||
			(a.AttemptDate.Equal(prev.AttemptDate) && a.ID > prev.ID) {
			latest[a.QuizID] = a
		}
	}
	return latest
}

type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *StudentQuizAttempt) error
	GetAttemptByID(ctx context.Context, id int64) (*StudentQuizAttempt, error)
	ListAttemptsByStudent(ctx context.Context, studentID int64) ([]StudentQuizAttempt, error)
	AverageScoreByQualification(ctx context.Context, qualifications []string) (map[string]float64, error)
	DeleteAttemptsByQuiz(ctx context.Context, quizID int64) error
	DeleteAttemptsByChapter(ctx context.Context, chapterID int64) error
	DeleteAttemptsByCourse(ctx context.Context, courseID int64) error
}
