package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
	"github.com/aussiebroadwan/carbon/internal/carbon/store"
)

const userColumns = `id, username, email, password_hash, quiz_answers, created_at, updated_at`

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	quiz, err := encodeQuiz(u.QuizAnswers)
	if err != nil {
		return err
	}

	ts := now()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, quiz, ts, ts,
	)
	return mapUniqueViolation(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) UpdateQuizAnswers(ctx context.Context, userID string, answers domain.QuizAnswers) error {
	quiz, err := encodeQuiz(&answers)
	if err != nil {
		return err
	}

	return r.execOne(ctx,
		`UPDATE users SET quiz_answers = ?, updated_at = ? WHERE id = ?`,
		quiz, now(), userID,
	)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	return r.execOne(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		passwordHash, now(), userID,
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

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u    domain.User
		quiz sql.NullString
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &quiz, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	if u.QuizAnswers, err = decodeQuiz(quiz); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
