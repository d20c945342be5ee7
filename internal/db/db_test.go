package db

import (
	"context"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by TEST_DATABASE_URL, applies
// migrations and truncates both tables. Tests that need a live database are
// skipped when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := conn.Exec("DELETE FROM battles").Error; err != nil {
		t.Fatalf("failed to clear battles: %v", err)
	}
	if err := conn.Exec("DELETE FROM monsters").Error; err != nil {
		t.Fatalf("failed to clear monsters: %v", err)
	}
	return conn
}

func mustCreateMonster(t *testing.T, store *MonsterStore, id, name string) *Monster {
	t.Helper()
	m := Monster{
		ID:       id,
		Name:     name,
		ImageURL: "https://example.com/" + id + ".png",
		Attack:   10,
		Defense:  5,
		HP:       100,
		Speed:    7,
	}
	if err := store.Create(context.Background(), &m); err != nil {
		t.Fatalf("failed to create monster %s: %v", id, err)
	}
	return &m
}
