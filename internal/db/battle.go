package db

import (
	"context"

	"gorm.io/gorm"
)

// BattleStore provides CRUD over the battles table.
type BattleStore struct {
	db *gorm.DB
}

// NewBattleStore creates a battle store from a gorm DB.
func NewBattleStore(conn *gorm.DB) *BattleStore {
	if conn == nil {
		return nil
	}
	return &BattleStore{db: conn}
}

// Create inserts a new battle. The winner must resolve to an existing
// monster; monster_a and monster_b are accepted unchecked. A failed insert
// leaves the table untouched.
func (s *BattleStore) Create(ctx context.Context, b *Battle) error {
	return translateErr(s.db.WithContext(ctx).Omit("WinnerRef").Create(b).Error)
}

// Get fetches a battle by id.
func (s *BattleStore) Get(ctx context.Context, id string) (*Battle, error) {
	var b Battle
	if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &b, nil
}

// List returns all battles, newest first.
func (s *BattleStore) List(ctx context.Context) ([]Battle, error) {
	var battles []Battle
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&battles).Error; err != nil {
		return nil, translateErr(err)
	}
	return battles, nil
}

// BattleUpdate represents a partial update to a battle row. Nil fields are
// left untouched.
type BattleUpdate struct {
	MonsterA *string
	MonsterB *string
	Winner   *string
}

func (u BattleUpdate) changes() map[string]any {
	updates := make(map[string]any)
	if u.MonsterA != nil {
		updates["monster_a"] = *u.MonsterA
	}
	if u.MonsterB != nil {
		updates["monster_b"] = *u.MonsterB
	}
	if u.Winner != nil {
		updates["winner"] = *u.Winner
	}
	return updates
}

// Update applies a partial update to the battle row. Changing the winner to
// a monster that does not exist fails with ErrInvalidWinner and leaves the
// row unchanged.
func (s *BattleStore) Update(ctx context.Context, id string, upd BattleUpdate) error {
	updates := upd.changes()
	if len(updates) == 0 {
		return nil
	}
	result := s.db.WithContext(ctx).Model(&Battle{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a battle by id. Nothing references battles, so no cascades.
func (s *BattleStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&Battle{}, "id = ?", id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
