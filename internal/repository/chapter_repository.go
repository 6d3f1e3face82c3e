package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizmaster/internal/domain"
	"quizmaster/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type sqlxChapterRepository struct {
	db *sqlx.DB
}

func NewSQLXChapterRepository(db *sqlx.DB) domain.ChapterRepository {
	return &sqlxChapterRepository{db: db}
}

func toDomainChapter(m *models.Chapter) domain.Chapter {
	return domain.Chapter{ID: m.ID, Name: m.Name, CourseID: m.CourseID}
}

func (r *sqlxChapterRepository) CreateChapter(ctx context.Context, chapter *domain.Chapter) error {
	query := `INSERT INTO chapters (name, course_id) VALUES ($1, $2) RETURNING id`
	var id int64
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &id, query, chapter.Name, chapter.CourseID); err != nil {
		return fmt.Errorf("failed to create chapter: %w", err)
	}
	chapter.ID = id
	return nil
}

func (r *sqlxChapterRepository) GetChapterByID(ctx context.Context, id int64) (*domain.Chapter, error) {
	var m models.Chapter
	query := `SELECT id, name, course_id FROM chapters WHERE id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chapter by id: %w", err)
	}
	chapter := toDomainChapter(&m)
	return &chapter, nil
}

func (r *sqlxChapterRepository) ListChaptersByCourse(ctx context.Context, courseID int64) ([]domain.Chapter, error) {
	var rows []models.Chapter
	query := `SELECT id, name, course_id FROM chapters WHERE course_id = $1 ORDER BY id`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, courseID); err != nil {
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}
	chapters := make([]domain.Chapter, len(rows))
	for i := range rows {
		chapters[i] = toDomainChapter(&rows[i])
	}
	return chapters, nil
}

func (r *sqlxChapterRepository) UpdateChapter(ctx context.Context, chapter *domain.Chapter) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, `UPDATE chapters SET name = $1 WHERE id = $2`, chapter.Name, chapter.ID)
	if err != nil {
		return fmt.Errorf("failed to update chapter: %w", err)
	}
	return expectOneRow(result)
}

func (r *sqlxChapterRepository) DeleteChapter(ctx context.Context, id int64) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM chapters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete chapter: %w", err)
	}
	return expectOneRow(result)
}

func (r *sqlxChapterRepository) DeleteChaptersByCourse(ctx context.Context, courseID int64) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM chapters WHERE course_id = $1`, courseID); err != nil {
		return fmt.Errorf("failed to delete chapters of course: %w", err)
	}
	return nil
}
