package models

import (
	"database/sql"
	"time"
)

type Course struct {
	ID       int64          `db:"id"`
	Name     string         `db:"name"`
	Category sql.NullString `db:"category"`
}

type Chapter struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	CourseID int64  `db:"course_id"`
}

type Quiz struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	CourseID     int64          `db:"course_id"`
	ChapterID    int64          `db:"chapter_id"`
	DateOfQuiz   time.Time      `db:"date_of_quiz"`
	TimeDuration sql.NullString `db:"time_duration"`
	Remarks      sql.NullString `db:"remarks"`
}

type Question struct {
	ID                int64          `db:"id"`
	QuestionStatement string         `db:"question_statement"`
	QuizID            int64          `db:"quiz_id"`
	ChapterID         int64          `db:"chapter_id"`
	Option1           string         `db:"option1"`
	Option2           string         `db:"option2"`
	Option3           sql.NullString `db:"option3"`
	Option4           sql.NullString `db:"option4"`
	CorrectAnswer     string         `db:"correct_answer"`
}
