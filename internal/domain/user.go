package domain

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Qualification labels. Students register with one of the first three;
// the bootstrap administrator carries QualificationAdmin.
const (
	QualificationFoundation = "Foundation"
	QualificationDiploma    = "Diploma"
	QualificationDegree     = "Degree"
	QualificationAdmin      = "Admin"
)

// StudentQualifications lists the labels used for course filtering and stats.
var StudentQualifications = []string{
	QualificationFoundation,
	QualificationDiploma,
	QualificationDegree,
}

// User represents a student or an administrator.
type User struct {
	ID            int64
	Username      string
	PasswordHash  string
	FullName      string
	Qualification string
	DOB           time.Time
	IsAdmin       bool
}

// SetPassword stores a salted bcrypt hash of plaintext.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}

// Identity is the authenticated caller of a request. The zero value is an
// anonymous caller.
type Identity struct {
	UserID  int64
	IsAdmin bool
}

func (i Identity) Authenticated() bool {
	return i.UserID != 0
}

// ErrDuplicateUsername is returned by CreateUser when the username is taken.
var ErrDuplicateUsername = errors.New("username already exists")

// UserRepository defines the interface for user data persistence.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CountUsersByQualification(ctx context.Context, qualifications []string) (map[string]int, error)
}
