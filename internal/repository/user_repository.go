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

const uniqueViolation = "23505"

const userColumns = `id, username, password_hash, full_name, qualification, dob, is_admin`

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:            m.ID,
		Username:      m.Username,
		PasswordHash:  m.PasswordHash,
		FullName:      m.FullName,
		Qualification: m.Qualification,
		DOB:           m.DOB,
		IsAdmin:       m.IsAdmin,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:            u.ID,
		Username:      u.Username,
		PasswordHash:  u.PasswordHash,
		FullName:      u.FullName,
		Qualification: u.Qualification,
		DOB:           u.DOB,
		IsAdmin:       u.IsAdmin,
	}
}

// CreateUser inserts a new user and sets user.ID.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	m := fromDomainUser(user)
	query := `INSERT INTO users (username, password_hash, full_name, qualification, dob, is_admin)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var id int64
	err := GetExecutor(ctx, r.db).GetContext(ctx, &id, query,
		m.Username, m.PasswordHash, m.FullName, m.Qualification, m.DOB, m.IsAdmin)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id
	return nil
}

// GetUserByID retrieves a user by id, or (nil, nil) when absent.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var m models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&m), nil
}

// GetUserByUsername retrieves a user by username, or (nil, nil) when absent.
func (r *sqlxUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return toDomainUser(&m), nil
}

// CountUsersByQualification returns a count for every requested label,
// including zero counts.
func (r *sqlxUserRepository) CountUsersByQualification(ctx context.Context, qualifications []string) (map[string]int, error) {
	query := `SELECT qualification, COUNT(*) AS count FROM users
	          WHERE qualification = ANY($1) GROUP BY qualification`

	var rows []models.QualificationCount
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, pq.Array(qualifications)); err != nil {
		return nil, fmt.Errorf("failed to count users by qualification: %w", err)
	}

	counts := make(map[string]int, len(qualifications))
	for _, q := range qualifications {
		counts[q] = 0
	}
	for _, row := range rows {
		counts[row.Qualification] = row.Count
	}
	return counts, nil
}
