package dto

// CourseRequest represents the add course form.
// @Description Request body for creating a course
type CourseRequest struct {
	Name     string `json:"course_name" form:"course_name" validate:"required,max=255"`
	Category string `json:"category" form:"category" validate:"max=80"`
}

// EditCourseRequest only renames a course.
type EditCourseRequest struct {
	Name string `json:"course_name" form:"course_name" validate:"required,max=255"`
}

// ChapterRequest represents the add chapter form.
// @Description Request body for creating a chapter
type ChapterRequest struct {
	Name     string `json:"chapter_name" form:"chapter_name" validate:"required,max=255"`
	CourseID int64  `json:"course_id" form:"course_id" validate:"required"`
}

type EditChapterRequest struct {
	Name string `json:"chapter_name" form:"chapter_name" validate:"required,max=255"`
}

// QuizRequest represents the add and edit quiz forms. DateOfQuiz is
// required when adding and optional when editing.
// @Description Request body for creating or editing a quiz
type QuizRequest struct {
	Name         string `json:"quiz_name" form:"quiz_name" validate:"required,max=255"`
	DateOfQuiz   string `json:"date_of_quiz" form:"date_of_quiz"`
	TimeDuration string `json:"time_duration" form:"time_duration" validate:"max=10"`
	Remarks      string `json:"remarks" form:"remarks" validate:"max=255"`
}

// QuestionRequest represents the add question form.
// @Description Request body for creating a question
type QuestionRequest struct {
	QuestionStatement string `json:"question_statement" form:"question_statement" validate:"required"`
	QuizID            int64  `json:"quiz_id" form:"quiz_id" validate:"required"`
	ChapterID         int64  `json:"chapter_id" form:"chapter_id" validate:"required"`
	Option1           string `json:"option1" form:"option1" validate:"required,max=255"`
	Option2           string `json:"option2" form:"option2" validate:"required,max=255"`
	Option3           string `json:"option3" form:"option3" validate:"max=255"`
	Option4           string `json:"option4" form:"option4" validate:"max=255"`
	CorrectAnswer     string `json:"correct_answer" form:"correct_answer" validate:"required,max=255"`
}

// EditQuestionRequest carries the same fields as QuestionRequest without
// the owning quiz and chapter.
type EditQuestionRequest struct {
	QuestionStatement string `json:"question_statement" form:"question_statement" validate:"required"`
	Option1           string `json:"option1" form:"option1" validate:"required,max=255"`
	Option2           string `json:"option2" form:"option2" validate:"required,max=255"`
	Option3           string `json:"option3" form:"option3" validate:"max=255"`
	Option4           string `json:"option4" form:"option4" validate:"max=255"`
	CorrectAnswer     string `json:"correct_answer" form:"correct_answer" validate:"required,max=255"`
}

// CreatedResponse reports the id of a newly created entity.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
