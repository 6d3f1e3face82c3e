package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"quizmaster/internal/domain"
	"quizmaster/internal/repository/models"
	"quizmaster/internal/util"

	"github.com/jmoiron/sqlx"
)

type sqlxCourseRepository struct {
	db *sqlx.DB
}

func NewSQLXCourseRepository(db *sqlx.DB) domain.CourseRepository {
	return &sqlxCourseRepository{db: db}
}

func toDomainCourse(m *models.Course) domain.Course {
	return domain.Course{ID: m.ID, Name: m.Name, Category: m.Category.String}
}

func (r *sqlxCourseRepository) CreateCourse(ctx context.Context, course *domain.Course) error {
	query := `INSERT INTO courses (name, category) VALUES ($1, $2) RETURNING id`
	var id int64
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &id, query, course.Name, util.StringToNullString(course.Category)); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	course.ID = id
	return nil
}

func (r *sqlxCourseRepository) GetCourseByID(ctx context.Context, id int64) (*domain.Course, error) {
	var m models.Course
	query := `SELECT id, name, category FROM courses WHERE id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}
	course := toDomainCourse(&m)
	return &course, nil
}

// ListCourses returns courses in insertion order. NameContains matches
// case-insensitively anywhere in the name; Category must match exactly.
func (r *sqlxCourseRepository) ListCourses(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error) {
	var (
		clauses []string
		args    []interface{}
	)
	if filter.NameContains != "" {
		args = append(args, containsPattern(filter.NameContains))
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}

	query := `SELECT id, name, category FROM courses`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"

	var rows []models.Course
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	courses := make([]domain.Course, len(rows))
	for i := range rows {
		courses[i] = toDomainCourse(&rows[i])
	}
	return courses, nil
}

// UpdateCourse updates the course name. It returns sql.ErrNoRows when the
// course does not exist.
func (r *sqlxCourseRepository) UpdateCourse(ctx context.Context, course *domain.Course) error {
	query := `UPDATE courses SET name = $1 WHERE id = $2`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, course.Name, course.ID)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return expectOneRow(result)
}

func (r *sqlxCourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return expectOneRow(result)
}
