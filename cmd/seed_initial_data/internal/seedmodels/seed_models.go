package seedmodels

import (
	"time"

	"quizmaster/internal/domain"
)

// SeedQuestion defines a multiple-choice question in the JSON seed file.
// Options may hold fewer than four entries; missing ones stay empty.
type SeedQuestion struct {
	Statement     string    `json:"question_statement"`
	Options       [4]string `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
}

// SeedQuiz defines a quiz. Its date is relative to the time of seeding so
// that freshly seeded quizzes are still open.
type SeedQuiz struct {
	Name         string         `json:"name"`
	DaysFromNow  int            `json:"days_from_now"`
	TimeDuration string         `json:"time_duration"`
	Remarks      string         `json:"remarks"`
	Questions    []SeedQuestion `json:"questions"`
}

type SeedChapter struct {
	Name    string     `json:"chapter_name"`
	Quizzes []SeedQuiz `json:"quizzes"`
}

// SeedCourse defines the top-level structure of the JSON seed file.
type SeedCourse struct {
	Name     string        `json:"course_name"`
	Category string        `json:"category"`
	Chapters []SeedChapter `json:"chapters"`
}

// DateOfQuiz truncates now to the minute and adds DaysFromNow days.
func (q SeedQuiz) DateOfQuiz(now time.Time) time.Time {
	return now.Truncate(time.Minute).AddDate(0, 0, q.DaysFromNow)
}

func (q SeedQuiz) ToDomain(courseID, chapterID int64, now time.Time) *domain.Quiz {
	return &domain.Quiz{
		Name:         q.Name,
		CourseID:     courseID,
		ChapterID:    chapterID,
		DateOfQuiz:   q.DateOfQuiz(now),
		TimeDuration: q.TimeDuration,
		Remarks:      q.Remarks,
	}
}

func (q SeedQuestion) ToDomain(quizID, chapterID int64) *domain.Question {
	return &domain.Question{
		QuestionStatement: q.Statement,
		QuizID:            quizID,
		ChapterID:         chapterID,
		Option1:           q.Options[0],
		Option2:           q.Options[1],
		Option3:           q.Options[2],
		Option4:           q.Options[3],
		CorrectAnswer:     q.CorrectAnswer,
	}
}
