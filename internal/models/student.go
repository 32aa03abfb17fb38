package models

import "time"

// Student represents an enrolled student ("aluno"), reachable through a
// guardian contact. Every student belongs to exactly one class.
type Student struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	GuardianEmail string    `db:"guardian_email" json:"guardianEmail"`
	GuardianPhone string    `db:"guardian_phone" json:"guardianPhone"`
	ClassID       int64     `db:"class_id" json:"classId"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
