package repository

import (
	"database/sql"
	"fmt"

	"github.com/ljacquet/patrimoine-backend/internal/apperrors"
	"github.com/ljacquet/patrimoine-backend/internal/model"
)

// UserRepository provides data access methods for the user table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserOnID retrieves a user by primary key.
func (r *UserRepository) GetUserOnID(userID string) (model.User, error) {
	query := `
          SELECT id, username, language, created_at
          FROM user
          WHERE id = ?
      `
	return r.scanUser(r.db.QueryRow(query, userID))
}

// GetUserByUsername retrieves a user by unique username.
func (r *UserRepository) GetUserByUsername(username string) (model.User, error) {
	query := `
          SELECT id, username, language, created_at
          FROM user
          WHERE username = ?
      `
	return r.scanUser(r.db.QueryRow(query, username))
}

// GetAllUsers retrieves every user. Used by the daily snapshot job.
func (r *UserRepository) GetAllUsers() ([]model.User, error) {
	query := `
          SELECT id, username, language, created_at
          FROM user
          ORDER BY created_at
      `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user table: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		var createdAt string

		if err := rows.Scan(&u.ID, &u.Username, &u.Language, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan user table results: %w", err)
		}
		if u.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user table: %w", err)
	}

	return users, nil
}

// InsertUser creates a new user row.
func (r *UserRepository) InsertUser(user model.User) error {
	query := `
          INSERT INTO user (id, username, language, created_at)
          VALUES (?, ?, ?, ?)
      `
	_, err := r.db.Exec(query, user.ID, user.Username, user.Language, user.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
	if isUniqueViolation(err) {
		return apperrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// UpdateLanguage sets a user's preferred language.
func (r *UserRepository) UpdateLanguage(userID, language string) error {
	result, err := r.db.Exec(`UPDATE user SET language = ? WHERE id = ?`, language, userID)
	if err != nil {
		return fmt.Errorf("failed to update user language: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var createdAt string

	err := row.Scan(&u.ID, &u.Username, &u.Language, &createdAt)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	if u.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.User{}, err
	}

	return u, nil
}
