package models

import "time"

// Class represents a school class or section ("turma"). It is the parent of
// students (1:N) and of at most one teacher (1:1).
type Class struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Stage     string    `db:"stage" json:"stage"`
	Year      string    `db:"year" json:"year"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
