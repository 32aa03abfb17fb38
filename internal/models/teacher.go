package models

import "time"

// Teacher represents the instructor ("professor") responsible for a class.
// A class has at most one teacher.
type Teacher struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	ClassID   int64     `db:"class_id" json:"classId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
