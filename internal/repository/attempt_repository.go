package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizmaster/internal/domain"
	"quizmaster/internal/repository/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const attemptColumns = `id, student_id, quiz_id, score, total_questions, attempt_date, student_answers`

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx.
type sqlxAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXAttemptRepository creates a new instance of sqlxAttemptRepository.
func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toDomainAttempt(m *models.StudentQuizAttempt) domain.StudentQuizAttempt {
	return domain.StudentQuizAttempt{
		ID:             m.ID,
		StudentID:      m.StudentID,
		QuizID:         m.QuizID,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		AttemptDate:    m.AttemptDate,
		StudentAnswers: domain.AnswerSheet(m.StudentAnswers),
	}
}

// CreateAttempt stores a scored submission and sets attempt.ID.
func (r *sqlxAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.StudentQuizAttempt) error {
	query := `INSERT INTO student_quiz_attempts (student_id, quiz_id, score, total_questions, attempt_date, student_answers)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var id int64
	err := GetExecutor(ctx, r.db).GetContext(ctx, &id, query,
		attempt.StudentID, attempt.QuizID, attempt.Score, attempt.TotalQuestions,
		attempt.AttemptDate, models.AnswerSheet(attempt.StudentAnswers))
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	attempt.ID = id
	return nil
}

func (r *sqlxAttemptRepository) GetAttemptByID(ctx context.Context, id int64) (*domain.StudentQuizAttempt, error) {
	var m models.StudentQuizAttempt
	query := `SELECT ` + attemptColumns + ` FROM student_quiz_attempts WHERE id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attempt by id: %w", err)
	}
	attempt := toDomainAttempt(&m)
	return &attempt, nil
}

func (r *sqlxAttemptRepository) ListAttemptsByStudent(ctx context.Context, studentID int64) ([]domain.StudentQuizAttempt, error) {
	var rows []models.StudentQuizAttempt
	query := `SELECT ` + attemptColumns + ` FROM student_quiz_attempts WHERE student_id = $1 ORDER BY id`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, studentID); err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	attempts := make([]domain.StudentQuizAttempt, len(rows))
	for i := range rows {
		attempts[i] = toDomainAttempt(&rows[i])
	}
	return attempts, nil
}

// AverageScoreByQualification averages attempt scores grouped by the
// qualification of the student who made them. Labels without attempts
// report 0.
func (r *sqlxAttemptRepository) AverageScoreByQualification(ctx context.Context, qualifications []string) (map[string]float64, error) {
	query := `SELECT u.qualification, AVG(a.score)::float8 AS avg_score
	          FROM student_quiz_attempts a
	          JOIN users u ON u.id = a.student_id
	          WHERE u.qualification = ANY($1)
	          GROUP BY u.qualification`

	var rows []models.QualificationAverage
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, pq.Array(qualifications)); err != nil {
		return nil, fmt.Errorf("failed to average scores by qualification: %w", err)
	}

	averages := make(map[string]float64, len(qualifications))
	for _, q := range qualifications {
		averages[q] = 0
	}
	for _, row := range rows {
		averages[row.Qualification] = row.AvgScore
	}
	return averages, nil
}

func (r *sqlxAttemptRepository) DeleteAttemptsByQuiz(ctx context.Context, quizID int64) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM student_quiz_attempts WHERE quiz_id = $1`, quizID); err != nil {
		return fmt.Errorf("failed to delete attempts of quiz: %w", err)
	}
	return nil
}

func (r *sqlxAttemptRepository) DeleteAttemptsByChapter(ctx context.Context, chapterID int64) error {
	query := `DELETE FROM student_quiz_attempts
	          WHERE quiz_id IN (SELECT id FROM quizzes WHERE chapter_id = $1)`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, chapterID); err != nil {
		return fmt.Errorf("failed to delete attempts of chapter: %w", err)
	}
	return nil
}

func (r *sqlxAttemptRepository) DeleteAttemptsByCourse(ctx context.Context, courseID int64) error {
	query := `DELETE FROM student_quiz_attempts
	          WHERE quiz_id IN (SELECT id FROM quizzes WHERE course_id = $1
	                            OR chapter_id IN (SELECT id FROM chapters WHERE course_id = $1))`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, courseID); err != nil {
		return fmt.Errorf("failed to delete attempts of course: %w", err)
	}
	return nil
}
