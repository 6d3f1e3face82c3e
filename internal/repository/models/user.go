package models

import (
	"time"
)

// User represents a row of the users table.
type User struct {
	ID            int64     `db:"id"`
	Username      string    `db:"username"`
	PasswordHash  string    `db:"password_hash"`
	FullName      string    `db:"full_name"`
	Qualification string    `db:"qualification"`
	DOB           time.Time `db:"dob"`
	IsAdmin       bool      `db:"is_admin"`
}

// QualificationCount is one row of a GROUP BY qualification count.
type QualificationCount struct {
	Qualification string `db:"qualification"`
	Count         int    `db:"count"`
}
