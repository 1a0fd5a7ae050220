package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string       // bcrypt encoded
	QuizAnswers  *QuizAnswers // nil until the first quiz is saved
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
