package dto

import (
	"time"

	"quizmaster/internal/domain"
)

// TestQuestion is a question as shown to a student: no correct answer.
type TestQuestion struct {
	ID                int64             `json:"id"`
	QuestionStatement string            `json:"question_statement"`
	Options           map[string]string `json:"options"`
}

// TakeTestResponse represents the quiz form a student fills in
// @Description Quiz with its questions, without answers
type TakeTestResponse struct {
	Quiz            QuizResponse   `json:"quiz"`
	DueDate         time.Time      `json:"due_date"`
	IsAvailable     bool           `json:"is_available"`
	IsDeadlineClose bool           `json:"is_deadline_close"`
	Questions       []TestQuestion `json:"questions"`
}

// SubmitTestRequest is the JSON form of a submission, keyed by question id.
// Form submissions use question_<id> fields instead.
type SubmitTestRequest struct {
	Answers map[string]string `json:"answers"`
}

// SubmitTestResponse represents the result of a submission
// @Description Score of a submitted attempt
type SubmitTestResponse struct {
	AttemptID      int64  `json:"attempt_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Message        string `json:"message"`
}

type AttemptResponse struct {
	ID             int64              `json:"id"`
	StudentID      int64              `json:"student_id"`
	QuizID         int64              `json:"quiz_id"`
	Score          int                `json:"score"`
	TotalQuestions int                `json:"total_questions"`
	AttemptDate    time.Time          `json:"attempt_date"`
	StudentAnswers domain.AnswerSheet `json:"student_answers"`
}

// ViewAttemptResponse shows a stored attempt next to its quiz.
type ViewAttemptResponse struct {
	Attempt   AttemptResponse    `json:"attempt"`
	Quiz      QuizResponse       `json:"quiz"`
	Questions []QuestionResponse `json:"questions"`
}

// LastAttempt summarises the most recent attempt of a quiz.
type LastAttempt struct {
	AttemptID      int64 `json:"attempt_id"`
	Score          int   `json:"score"`
	TotalQuestions int   `json:"total_questions"`
}

// StudentQuizView is a quiz annotated with the student's progress.
type StudentQuizView struct {
	QuizResponse
	Attempted       bool         `json:"attempted"`
	LastAttempt     *LastAttempt `json:"last_attempt,omitempty"`
	IsAvailable     bool         `json:"is_available"`
	IsDeadlineClose bool         `json:"is_deadline_close"`
}

type StudentChapterView struct {
	Chapter ChapterResponse   `json:"chapter"`
	Quizzes []StudentQuizView `json:"quizzes"`
}

// StudentChaptersResponse is the student-facing chapter listing of a course.
type StudentChaptersResponse struct {
	Course   CourseResponse       `json:"course"`
	Query    string               `json:"query,omitempty"`
	Chapters []StudentChapterView `json:"chapters"`
}
