package service

import (
	"context"
	"testing"

	"github.com/fzscripts/fzscripts/database"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	s := UserService{}
	ctx := context.Background()

	user, err := s.Register(ctx, "alice", "hunter2", "")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Id == 0 {
		t.Error("Register() did not assign an id")
	}
	if user.IsAdmin || user.Verified {
		t.Error("regular registration must not grant admin or verified flags")
	}
	if user.CreatedAt.IsZero() {
		t.Error("Register() did not set CreatedAt")
	}

	got, err := s.CheckUser(ctx, "alice", "hunter2")
	if err != nil {
		t.Fatalf("CheckUser() error = %v", err)
	}
	if got.Id != user.Id {
		t.Errorf("CheckUser() id = %d, expected %d", got.Id, user.Id)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setupTestDB(t)
	s := UserService{}
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "hunter2", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := s.Register(ctx, "alice", "other", ""); err != ErrUsernameTaken {
		t.Errorf("second Register() error = %v, expected ErrUsernameTaken", err)
	}

	available, err := s.IsUsernameAvailable(ctx, "alice")
	if err != nil {
		t.Fatalf("IsUsernameAvailable() error = %v", err)
	}
	if available {
		t.Error("IsUsernameAvailable() = true for a taken username")
	}
}

func TestCheckUserInvalidCredentials(t *testing.T) {
	setupTestDB(t)
	s := UserService{}
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "hunter2", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown username", username: "nobody", password: "hunter2"},
		{name: "wrong password", username: "alice", password: "wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// both failure modes must be indistinguishable
			if _, err := s.CheckUser(ctx, tt.username, tt.password); err != ErrInvalidCredentials {
				t.Errorf("CheckUser() error = %v, expected ErrInvalidCredentials", err)
			}
		})
	}
}

func TestBootstrapAdminLogin(t *testing.T) {
	setupTestDB(t)
	s := UserService{}

	user, err := s.CheckUser(context.Background(), database.BootstrapUsername, "fzx")
	if err != nil {
		t.Fatalf("CheckUser() error = %v", err)
	}
	if !user.IsAdmin || !user.Verified {
		t.Errorf("bootstrap admin flags = admin:%v verified:%v, expected both true", user.IsAdmin, user.Verified)
	}
}

func TestSetVerified(t *testing.T) {
	setupTestDB(t)
	s := UserService{}
	ctx := context.Background()

	admin, err := s.CheckUser(ctx, database.BootstrapUsername, "fzx")
	if err != nil {
		t.Fatalf("CheckUser() error = %v", err)
	}
	target, err := s.Register(ctx, "alice", "hunter2", "")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := s.SetVerified(ctx, target, admin.Id, true); err != ErrForbidden {
		t.Errorf("SetVerified() by non-admin error = %v, expected ErrForbidden", err)
	}

	updated, err := s.SetVerified(ctx, admin, target.Id, true)
	if err != nil {
		t.Fatalf("SetVerified() error = %v", err)
	}
	if !updated.Verified {
		t.Error("SetVerified(true) did not flip the verified flag")
	}

	updated, err = s.SetVerified(ctx, admin, target.Id, false)
	if err != nil {
		t.Fatalf("SetVerified() error = %v", err)
	}
	if updated.Verified {
		t.Error("SetVerified(false) did not clear the verified flag")
	}

	if _, err := s.SetVerified(ctx, admin, 9999, true); err != ErrNotFound {
		t.Errorf("SetVerified() on missing user error = %v, expected ErrNotFound", err)
	}
}

func TestUpdateProfilePicture(t *testing.T) {
	setupTestDB(t)
	s := UserService{}
	ctx := context.Background()

	user, err := s.Register(ctx, "alice", "hunter2", "")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	updated, err := s.UpdateProfilePicture(ctx, user.Id, "https://example.com/alice.png")
	if err != nil {
		t.Fatalf("UpdateProfilePicture() error = %v", err)
	}
	if updated.ProfilePicture != "https://example.com/alice.png" {
		t.Errorf("ProfilePicture = %q, expected updated URL", updated.ProfilePicture)
	}

	if _, err := s.UpdateProfilePicture(ctx, 9999, "x"); err != ErrNotFound {
		t.Errorf("UpdateProfilePicture() on missing user error = %v, expected ErrNotFound", err)
	}
}

func TestGetUserById(t *testing.T) {
	setupTestDB(t)
	s := UserService{}
	ctx := context.Background()

	user, err := s.Register(ctx, "alice", "hunter2", "")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, err := s.GetUserById(ctx, user.Id)
	if err != nil {
		t.Fatalf("GetUserById() error = %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("Username = %q, expected %q", got.Username, "alice")
	}

	if _, err := s.GetUserById(ctx, 9999); err != ErrNotFound {
		t.Errorf("GetUserById() on missing user error = %v, expected ErrNotFound", err)
	}
}
