package domain

import (
	"context"
	"time"
)

// DeadlineWarningWindow is how close to its date a quiz is flagged as due soon.
const DeadlineWarningWindow = 24 * time.Hour

// Quiz belongs to a chapter and, redundantly, to that chapter's course.
// DateOfQuiz is the last moment the quiz is considered available.
type Quiz struct {
	ID           int64
	Name         string
	CourseID     int64
	ChapterID    int64
	DateOfQuiz   time.Time
	TimeDuration string
	Remarks      string
}

// Availability is derived from a quiz date relative to now.
type Availability struct {
	IsAvailable     bool
	IsDeadlineClose bool
}

func (q *Quiz) Availability(now time.Time) Availability {
	available := !now.After(q.DateOfQuiz)
	return Availability{
		IsAvailable:     available,
		IsDeadlineClose: available && q.DateOfQuiz.Sub(now) <= DeadlineWarningWindow,
	}
}

// Question is a multiple-choice question; Option3 and Option4 may be empty.
type Question struct {
	ID                int64
	QuestionStatement string
	QuizID            int64
	ChapterID         int64
	Option1           string
	Option2           string
	Option3           string
	Option4           string
	CorrectAnswer     string
}

// Options returns the four options keyed "1".."4".
func (q *Question) Options() map[string]string {
	return map[string]string{
		"1": q.Option1,
		"2": q.Option2,
		"3": q.Option3,
		"4": q.Option4,
	}
}

// StoredOptions is Options with unset options as nil, so they are kept
// as null in an answer sheet.
func (q *Question) StoredOptions() map[string]*string {
	stored := make(map[string]*string, 4)
	for key, text := range q.Options() {
		if text == "" {
			stored[key] = nil
			continue
		}
		t := text
		stored[key] = &t
	}
	return stored
}

type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	GetQuizByID(ctx context.Context, id int64) (*Quiz, error)
	ListQuizzesByChapter(ctx context.Context, chapterID int64) ([]Quiz, error)
	ListQuizzesByCourse(ctx context.Context, courseID int64) ([]Quiz, error)
	UpdateQuiz(ctx context.Context, quiz *Quiz) error
	DeleteQuiz(ctx context.Context, id int64) error
	DeleteQuizzesByChapter(ctx context.Context, chapterID int64) error
	DeleteQuizzesByCourse(ctx context.Context, courseID int64) error
}

type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question *Question) error
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)
	ListQuestionsByQuiz(ctx context.Context, quizID int64) ([]Question, error)
	UpdateQuestion(ctx context.Context, question *Question) error
	DeleteQuestion(ctx context.Context, id int64) error
	DeleteQuestionsByQuiz(ctx context.Context, quizID int64) error
	DeleteQuestionsByChapter(ctx context.Context, chapterID int64) error
	DeleteQuestionsByCourse(ctx context.Context, courseID int64) error
}
