package dto

import "time"

type CourseResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type ChapterResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CourseID int64  `json:"course_id"`
}

// QuizResponse represents a quiz in the API response
// @Description Quiz information
type QuizResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CourseID     int64     `json:"course_id"`
	ChapterID    int64     `json:"chapter_id"`
	DateOfQuiz   time.Time `json:"date_of_quiz"`
	TimeDuration string    `json:"time_duration,omitempty"`
	Remarks      string    `json:"remarks,omitempty"`
}

// QuestionResponse is the administrator's view of a question, including
// the correct answer.
type QuestionResponse struct {
	ID                int64  `json:"id"`
	QuestionStatement string `json:"question_statement"`
	QuizID            int64  `json:"quiz_id"`
	ChapterID         int64  `json:"chapter_id"`
	Option1           string `json:"option1"`
	Option2           string `json:"option2"`
	Option3           string `json:"option3,omitempty"`
	Option4           string `json:"option4,omitempty"`
	CorrectAnswer     string `json:"correct_answer"`
}

// CourseListResponse wraps a filtered course listing.
type CourseListResponse struct {
	Query   string           `json:"query,omitempty"`
	Courses []CourseResponse `json:"courses"`
}

// CategoryGroup is one category section of the admin dashboard.
type CategoryGroup struct {
	Category string           `json:"category"`
	Courses  []CourseResponse `json:"courses"`
}

// DashboardResponse represents the admin dashboard
// @Description Courses grouped by category
type DashboardResponse struct {
	Search     string          `json:"search,omitempty"`
	Categories []CategoryGroup `json:"categories"`
}

// ChapterView pairs a chapter with the quizzes that survived filtering.
type ChapterView struct {
	Chapter ChapterResponse `json:"chapter"`
	Quizzes []QuizResponse  `json:"quizzes"`
}

// CourseChaptersResponse is the admin chapter listing of a course.
type CourseChaptersResponse struct {
	Course   CourseResponse `json:"course"`
	Search   string         `json:"search,omitempty"`
	Chapters []ChapterView  `json:"chapters"`
}

type ChapterDetailResponse struct {
	Chapter ChapterResponse `json:"chapter"`
	Quizzes []QuizResponse  `json:"quizzes"`
}

type QuizQuestionsResponse struct {
	Quiz      QuizResponse       `json:"quiz"`
	Questions []QuestionResponse `json:"questions"`
}

// ContactResponse is the static contact page with the caller's profile.
type ContactResponse struct {
	Email   string               `json:"email"`
	Phone   string               `json:"phone"`
	Address string               `json:"address"`
	User    *UserProfileResponse `json:"user,omitempty"`
}
