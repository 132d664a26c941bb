package store

import (
	"errors"
	"testing"
)

func TestCreateAdmin(t *testing.T) {
	database := newTestDB(t)
	admins := NewAdminStore(database)

	t.Run("Successful creation", func(t *testing.T) {
		admin, err := admins.Create("alice", "somehash")
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if admin.ID == 0 {
			t.Error("Expected a non-zero admin id")
		}
		if admin.Username != "alice" {
			t.Errorf("Expected username alice, got %s", admin.Username)
		}
	})

	t.Run("Duplicate username", func(t *testing.T) {
		_, err := admins.Create("alice", "otherhash")
		if !errors.Is(err, ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("Empty username", func(t *testing.T) {
		_, err := admins.Create("", "somehash")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Expected ValidationError, got %v", err)
		}
	})

	t.Run("Empty hash", func(t *testing.T) {
		_, err := admins.Create("bob", "")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Expected ValidationError, got %v", err)
		}
	})
}

func TestFindByUsername(t *testing.T) {
	database := newTestDB(t)
	admins := NewAdminStore(database)
	createTestAdmin(t, admins, "alice", "pw1")

	t.Run("Exact match", func(t *testing.T) {
		admin, err := admins.FindByUsername("alice")
		if err != nil {
			t.Fatalf("FindByUsername returned error: %v", err)
		}
		if admin.Username != "alice" {
			t.Errorf("Expected username alice, got %s", admin.Username)
		}
	})

	t.Run("Case sensitive", func(t *testing.T) {
		_, err := admins.FindByUsername("Alice")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound for differently-cased username, got %v", err)
		}
	})

	t.Run("Unknown username", func(t *testing.T) {
		_, err := admins.FindByUsername("nobody")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestVerifyCredentials(t *testing.T) {
	database := newTestDB(t)
	admins := NewAdminStore(database)
	aliceID := createTestAdmin(t, admins, "alice", "pw1")

	t.Run("Correct credentials", func(t *testing.T) {
		admin, err := admins.VerifyCredentials("alice", "pw1")
		if err != nil {
			t.Fatalf("VerifyCredentials returned error: %v", err)
		}
		if admin == nil || admin.ID != aliceID {
			t.Errorf("Expected admin %d, got %+v", aliceID, admin)
		}
	})

	// a wrong password and an unknown username must be indistinguishable
	t.Run("Wrong password", func(t *testing.T) {
		admin, err := admins.VerifyCredentials("alice", "wrong")
		if admin != nil || err != nil {
			t.Errorf("Expected (nil, nil), got (%+v, %v)", admin, err)
		}
	})

	t.Run("Unknown username", func(t *testing.T) {
		admin, err := admins.VerifyCredentials("nobody", "pw1")
		if admin != nil || err != nil {
			t.Errorf("Expected (nil, nil), got (%+v, %v)", admin, err)
		}
	})
}
