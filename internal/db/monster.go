package db

import (
	"context"

	"gorm.io/gorm"
)

// MonsterStore provides CRUD over the monsters table.
type MonsterStore struct {
	db *gorm.DB
}

// NewMonsterStore creates a monster store from a gorm DB.
func NewMonsterStore(conn *gorm.DB) *MonsterStore {
	if conn == nil {
		return nil
	}
	return &MonsterStore{db: conn}
}

// Create inserts a new monster. The id must not already exist; both
// timestamps are set by the engine at insert time.
func (s *MonsterStore) Create(ctx context.Context, m *Monster) error {
	return translateErr(s.db.WithContext(ctx).Create(m).Error)
}

// Get fetches a monster by id.
func (s *MonsterStore) Get(ctx context.Context, id string) (*Monster, error) {
	var m Monster
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &m, nil
}

// List returns all monsters ordered by name.
func (s *MonsterStore) List(ctx context.Context) ([]Monster, error) {
	var monsters []Monster
	if err := s.db.WithContext(ctx).Order("name").Find(&monsters).Error; err != nil {
		return nil, translateErr(err)
	}
	return monsters, nil
}

// MonsterUpdate represents a partial update to a monster row. Nil fields are
// left untouched.
type MonsterUpdate struct {
	Name     *string
	ImageURL *string
	Attack   *int
	Defense  *int
	HP       *int
	Speed    *int
}

func (u MonsterUpdate) changes() map[string]any {
	updates := make(map[string]any)
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.ImageURL != nil {
		updates["image_url"] = *u.ImageURL
	}
	if u.Attack != nil {
		updates["attack"] = *u.Attack
	}
	if u.Defense != nil {
		updates["defense"] = *u.Defense
	}
	if u.HP != nil {
		updates["hp"] = *u.HP
	}
	if u.Speed != nil {
		updates["speed"] = *u.Speed
	}
	return updates
}

// Update applies a partial update to the monster row. updated_at is refreshed
// on success; created_at is never touched. An update with no fields is a
// no-op.
func (s *MonsterStore) Update(ctx context.Context, id string, upd MonsterUpdate) error {
	updates := upd.changes()
	if len(updates) == 0 {
		return nil
	}
	result := s.db.WithContext(ctx).Model(&Monster{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a monster by id. The engine cascade removes every battle
// whose winner references it; battles that only name it as a participant
// survive with a dangling identifier.
func (s *MonsterStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&Monster{}, "id = ?", id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
