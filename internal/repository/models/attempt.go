package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quizmaster/internal/domain"
)

// AnswerSheet stores domain.AnswerSheet in a JSONB column.
type AnswerSheet domain.AnswerSheet

// Value implements the driver.Valuer interface
func (s AnswerSheet) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *AnswerSheet) Scan(value interface{}) error {
	if value == nil {
		*s = AnswerSheet{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("AnswerSheet Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = AnswerSheet{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// StudentQuizAttempt represents a row of student_quiz_attempts.
type StudentQuizAttempt struct {
	ID             int64       `db:"id"`
	StudentID      int64       `db:"student_id"`
	QuizID         int64       `db:"quiz_id"`
	Score          int         `db:"score"`
	TotalQuestions int         `db:"total_questions"`
	AttemptDate    time.Time   `db:"attempt_date"`
	StudentAnswers AnswerSheet `db:"student_answers"`
}

// QualificationAverage is one row of the per-qualification score average.
type QualificationAverage struct {
	Qualification string  `db:"qualification"`
	AvgScore      float64 `db:"avg_score"`
}
