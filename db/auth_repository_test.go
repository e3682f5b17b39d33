package db

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"dormwatch/models"
)

func TestCreateAndFindUser(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))

	user := &models.User{Username: "alice", HashedPassword: "hash"}
	created, err := repo.CreateUser(user)
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an auto-assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	found, err := repo.FindUserByUsername("alice")
	if err != nil {
		t.Fatalf("FindUserByUsername returned error: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("found id %d, want %d", found.ID, created.ID)
	}

	byID, err := repo.FindUserByID(created.ID)
	if err != nil {
		t.Fatalf("FindUserByID returned error: %v", err)
	}
	if byID.Username != "alice" {
		t.Fatalf("unexpected username %q", byID.Username)
	}
}

func TestFindUserIsCaseSensitive(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))

	if _, err := repo.CreateUser(&models.User{Username: "Alice", HashedPassword: "hash"}); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	if _, err := repo.FindUserByUsername("alice"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found for different case, got %v", err)
	}
}

func TestIsUsernameExist(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))

	exists, err := repo.IsUsernameExist("bob")
	if err != nil {
		t.Fatalf("IsUsernameExist returned error: %v", err)
	}
	if exists {
		t.Fatal("bob should not exist yet")
	}

	if _, err := repo.CreateUser(&models.User{Username: "bob", HashedPassword: "hash"}); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	exists, err = repo.IsUsernameExist("bob")
	if err != nil {
		t.Fatalf("IsUsernameExist returned error: %v", err)
	}
	if !exists {
		t.Fatal("bob should exist after creation")
	}
}

func TestDuplicateUsernameRejected(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))

	if _, err := repo.CreateUser(&models.User{Username: "carol", HashedPassword: "hash"}); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if _, err := repo.CreateUser(&models.User{Username: "carol", HashedPassword: "other"}); err == nil {
		t.Fatal("expected unique index to reject duplicate username")
	}
}
