package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizmaster/internal/domain"
	"quizmaster/internal/repository/models"
	"quizmaster/internal/util"

	"github.com/jmoiron/sqlx"
)

const quizColumns = `id, name, course_id, chapter_id, date_of_quiz, time_duration, remarks`

type sqlxQuizRepository struct {
	db *sqlx.DB
}

func NewSQLXQuizRepository(db *sqlx.DB) domain.QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func toDomainQuiz(m *models.Quiz) domain.Quiz {
	return domain.Quiz{
		ID:           m.ID,
		Name:         m.Name,
		CourseID:     m.CourseID,
		ChapterID:    m.ChapterID,
		DateOfQuiz:   m.DateOfQuiz,
		TimeDuration: m.TimeDuration.String,
		Remarks:      m.Remarks.String,
	}
}

func fromDomainQuiz(q *domain.Quiz) models.Quiz {
	return models.Quiz{
		ID:           q.ID,
		Name:         q.Name,
		CourseID:     q.CourseID,
		ChapterID:    q.ChapterID,
		DateOfQuiz:   q.DateOfQuiz,
		TimeDuration: util.StringToNullString(q.TimeDuration),
		Remarks:      util.StringToNullString(q.Remarks),
	}
}

func toDomainQuizzes(rows []models.Quiz) []domain.Quiz {
	quizzes := make([]domain.Quiz, len(rows))
	for i := range rows {
		quizzes[i] = toDomainQuiz(&rows[i])
	}
	return quizzes
}

func (r *sqlxQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	m := fromDomainQuiz(quiz)
	query := `INSERT INTO quizzes (name, course_id, chapter_id, date_of_quiz, time_duration, remarks)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var id int64
	err := GetExecutor(ctx, r.db).GetContext(ctx, &id, query,
		m.Name, m.CourseID, m.ChapterID, m.DateOfQuiz, m.TimeDuration, m.Remarks)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	quiz.ID = id
	return nil
}

func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, id int64) (*domain.Quiz, error) {
	var m models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}
	quiz := toDomainQuiz(&m)
	return &quiz, nil
}

func (r *sqlxQuizRepository) ListQuizzesByChapter(ctx context.Context, chapterID int64) ([]domain.Quiz, error) {
	var rows []models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE chapter_id = $1 ORDER BY id`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, chapterID); err != nil {
		return nil, fmt.Errorf("failed to list quizzes by chapter: %w", err)
	}
	return toDomainQuizzes(rows), nil
}

// ListQuizzesByCourse returns the quizzes of every chapter in the course.
func (r *sqlxQuizRepository) ListQuizzesByCourse(ctx context.Context, courseID int64) ([]domain.Quiz, error) {
	var rows []models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes
	          WHERE chapter_id IN (SELECT id FROM chapters WHERE course_id = $1)
	          ORDER BY id`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, courseID); err != nil {
		return nil, fmt.Errorf("failed to list quizzes by course: %w", err)
	}
	return toDomainQuizzes(rows), nil
}

// UpdateQuiz rewrites the editable fields. Course and chapter never change.
func (r *sqlxQuizRepository) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	m := fromDomainQuiz(quiz)
	query := `UPDATE quizzes SET name = $1, date_of_quiz = $2, time_duration = $3, remarks = $4 WHERE id = $5`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.Name, m.DateOfQuiz, m.TimeDuration, m.Remarks, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	return expectOneRow(result)
}

func (r *sqlxQuizRepository) DeleteQuiz(ctx context.Context, id int64) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	return expectOneRow(result)
}

func (r *sqlxQuizRepository) DeleteQuizzesByChapter(ctx context.Context, chapterID int64) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM quizzes WHERE chapter_id = $1`, chapterID); err != nil {
		return fmt.Errorf("failed to delete quizzes of chapter: %w", err)
	}
	return nil
}

// DeleteQuizzesByCourse removes quizzes owned by the course directly or
// through one of its chapters.
func (r *sqlxQuizRepository) DeleteQuizzesByCourse(ctx context.Context, courseID int64) error {
	query := `DELETE FROM quizzes
	          WHERE course_id = $1 OR chapter_id IN (SELECT id FROM chapters WHERE course_id = $1)`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, courseID); err != nil {
		return fmt.Errorf("failed to delete quizzes of course: %w", err)
	}
	return nil
}
