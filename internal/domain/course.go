package domain

import "context"

// Course groups chapters and quizzes. Category is free text that is expected
// to match one of the qualification labels.
type Course struct {
	ID       int64
	Name     string
	Category string
}

type Chapter struct {
	ID       int64
	Name     string
	CourseID int64
}

// CourseFilter narrows ListCourses. Empty fields are ignored.
type CourseFilter struct {
	NameContains string
	Category     string
}

type CourseRepository interface {
	CreateCourse(ctx context.Context, course *Course) error
	GetCourseByID(ctx context.Context, id int64) (*Course, error)
	ListCourses(ctx context.Context, filter CourseFilter) ([]Course, error)
	UpdateCourse(ctx context.Context, course *Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

type ChapterRepository interface {
	CreateChapter(ctx context.Context, chapter *Chapter) error
	GetChapterByID(ctx context.Context, id int64) (*Chapter, error)
	ListChaptersByCourse(ctx context.Context, courseID int64) ([]Chapter, error)
	UpdateChapter(ctx context.Context, chapter *Chapter) error
	DeleteChapter(ctx context.Context, id int64) error
	DeleteChaptersByCourse(ctx context.Context, courseID int64) error
}

// TransactionManager runs fn inside a single database transaction. The
// context passed to fn carries the transaction; repositories pick it up.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
