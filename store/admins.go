package store

import (
	"database/sql"
	"errors"
	"fmt"

	"postit-board/models"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username does not exist, so a
// login attempt costs one bcrypt comparison either way.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type AdminStore struct {
	db *sqlx.DB
}

func NewAdminStore(db *sqlx.DB) *AdminStore {
	return &AdminStore{db: db}
}

// Create inserts a new admin with an already-hashed password. Plaintext
// passwords never reach the store.
func (s *AdminStore) Create(username, passwordHash string) (*models.Admin, error) {
	if username == "" || passwordHash == "" {
		return nil, validationf("username and password hash are required")
	}

	res, err := s.db.Exec("INSERT INTO admins (username, password_hash) VALUES (?, ?)", username, passwordHash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, fmt.Errorf("admin %q: %w", username, ErrConflict)
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert admin: %w", err)
	}

	return &models.Admin{ID: int(id), Username: username, PasswordHash: passwordHash}, nil
}

// FindByUsername looks up an admin by exact, case-sensitive username.
func (s *AdminStore) FindByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.Get(&admin, "SELECT id, username, password_hash FROM admins WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find admin %q: %w", username, err)
	}
	return &admin, nil
}

// VerifyCredentials returns the admin whose stored hash matches password, or
// nil on any mismatch. An unknown username and a wrong password produce the
// same (nil, nil) result.
func (s *AdminStore) VerifyCredentials(username, password string) (*models.Admin, error) {
	admin, err := s.FindByUsername(username)
	if errors.Is(err, ErrNotFound) {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return admin, nil
}
