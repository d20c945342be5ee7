package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monsters.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}
	return path
}

func TestReadMonsters(t *testing.T) {
	path := writeCSV(t, "name,attack,defense,hp,speed,image_url\n"+
		"insect rabbit,82,45,66,42,https://loremflickr.com/640/480\n"+
		"dead unicorn,30, 7,200,12,https://loremflickr.com/640/481\n")

	records, err := readMonsters(path)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	first := records[0]
	if first.Name != "insect rabbit" || first.Attack != 82 || first.Defense != 45 ||
		first.HP != 66 || first.Speed != 42 || first.ImageURL != "https://loremflickr.com/640/480" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if records[1].Defense != 7 {
		t.Fatalf("expected padded stat to parse, got %+v", records[1])
	}
}

func TestReadMonstersRejectsShortRow(t *testing.T) {
	path := writeCSV(t, "name,attack,defense,hp,speed,image_url\n"+
		"insect rabbit,82,45,66,https://loremflickr.com/640/480\n")

	if _, err := readMonsters(path); err == nil {
		t.Fatal("expected error for row with a missing column")
	}
}

func TestReadMonstersRejectsBadStat(t *testing.T) {
	path := writeCSV(t, "name,attack,defense,hp,speed,image_url\n"+
		"insect rabbit,many,45,66,42,https://loremflickr.com/640/480\n")

	if _, err := readMonsters(path); err == nil {
		t.Fatal("expected error for non-integer attack")
	}
}

func TestReadMonstersRejectsMissingName(t *testing.T) {
	path := writeCSV(t, "name,attack,defense,hp,speed,image_url\n"+
		",82,45,66,42,https://loremflickr.com/640/480\n")

	if _, err := readMonsters(path); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestReadMonstersEmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	records, err := readMonsters(path)
	if err != nil {
		t.Fatalf("expected empty file to parse, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestImportMonsters(t *testing.T) {
	conn := openTestDB(t)
	store := NewMonsterStore(conn)

	path := writeCSV(t, "name,attack,defense,hp,speed,image_url\n"+
		"insect rabbit,82,45,66,42,https://loremflickr.com/640/480\n"+
		"dead unicorn,30,7,200,12,https://loremflickr.com/640/481\n")

	inserted, err := ImportMonsters(context.Background(), store, path)
	if err != nil {
		t.Fatalf("expected import to succeed, got %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 inserted, got %d", inserted)
	}

	monsters, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("expected list to succeed, got %v", err)
	}
	if len(monsters) != 2 {
		t.Fatalf("expected 2 monsters, got %d", len(monsters))
	}
	for _, m := range monsters {
		if m.ID == "" {
			t.Fatalf("expected minted id for %q", m.Name)
		}
	}
}
