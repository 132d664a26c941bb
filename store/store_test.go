package store

import (
	"path/filepath"
	"testing"

	"postit-board/db"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	database, err := db.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func createTestAdmin(t *testing.T, admins *AdminStore, username, password string) int {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	admin, err := admins.Create(username, string(hash))
	if err != nil {
		t.Fatalf("Failed to create admin %s: %v", username, err)
	}
	return admin.ID
}
