package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
	"github.com/aussiebroadwan/carbon/internal/carbon/store"
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	quiz, err := encodeQuiz(u.QuizAnswers)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, quiz_answers, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.Email, u.PasswordHash, quiz, now, now,
	)
	return mapUniqueViolation(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getOne(ctx,
		`SELECT id, username, email, password_hash, quiz_answers, created_at, updated_at
		 FROM users WHERE id = $1`, id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx,
		`SELECT id, username, email, password_hash, quiz_answers, created_at, updated_at
		 FROM users WHERE email = $1`, email)
}

func (r *usersRepo) UpdateQuizAnswers(ctx context.Context, userID string, answers domain.QuizAnswers) error {
	quiz, err := encodeQuiz(&answers)
	if err != nil {
		return err
	}

	return r.execOne(ctx,
		`UPDATE users SET quiz_answers = $1, updated_at = $2 WHERE id = $3`,
		quiz, time.Now().UTC(), userID,
	)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	return r.execOne(ctx,
		`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash, time.Now().UTC(), userID,
	)
}

// execOne runs an UPDATE that must match exactly one user.
func (r *usersRepo) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) getOne(ctx context.Context, query string, arg any) (domain.User, error) {
	var (
		u    domain.User
		quiz []byte
	)
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &quiz, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	if u.QuizAnswers, err = decodeQuiz(quiz); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
