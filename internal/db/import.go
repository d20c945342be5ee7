package db

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type monsterRecord struct {
	Name     string
	ImageURL string
	Attack   int
	Defense  int
	HP       int
	Speed    int
}

// ImportMonsters reads monsters from a headed CSV
// (name,attack,defense,hp,speed,image_url) and inserts them through the
// store, minting a fresh UUID per row. A malformed row aborts the import
// before anything is inserted. Returns the number of monsters created.
func ImportMonsters(ctx context.Context, store *MonsterStore, path string) (int, error) {
	if store == nil {
		return 0, nil
	}
	records, err := readMonsters(path)
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, record := range records {
		monster := Monster{
			ID:       uuid.NewString(),
			Name:     record.Name,
			ImageURL: record.ImageURL,
			Attack:   record.Attack,
			Defense:  record.Defense,
			HP:       record.HP,
			Speed:    record.Speed,
		}
		if err := store.Create(ctx, &monster); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func readMonsters(path string) ([]monsterRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []monsterRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 6 {
			return nil, fmt.Errorf("row %d: expected 6 columns, got %d", i+1, len(row))
		}
		record := monsterRecord{
			Name:     strings.TrimSpace(row[0]),
			ImageURL: strings.TrimSpace(row[5]),
		}
		if record.Name == "" || record.ImageURL == "" {
			return nil, fmt.Errorf("row %d: name and image_url are required", i+1)
		}
		stats := []struct {
			column string
			value  string
			dest   *int
		}{
			{"attack", row[1], &record.Attack},
			{"defense", row[2], &record.Defense},
			{"hp", row[3], &record.HP},
			{"speed", row[4], &record.Speed},
		}
		for _, stat := range stats {
			n, err := strconv.Atoi(strings.TrimSpace(stat.value))
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid %s: %q", i+1, stat.column, stat.value)
			}
			*stat.dest = n
		}
		records = append(records, record)
	}
	return records, nil
}
