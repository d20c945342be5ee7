package db

import "time"

// Monster holds the combat attributes of a single creature. Identifiers are
// assigned by the caller; the store only enforces their uniqueness.
type Monster struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"not null"`
	ImageURL  string    `gorm:"not null"`
	Attack    int       `gorm:"not null"`
	Defense   int       `gorm:"not null"`
	HP        int       `gorm:"column:hp;not null"`
	Speed     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Battle records a contest between two monster identifiers. Only the winner
// column carries a foreign key; monster_a and monster_b are plain strings and
// may dangle once the monster they name is deleted.
type Battle struct {
	ID        string    `gorm:"primaryKey;size:36"`
	MonsterA  string    `gorm:"size:36;not null"`
	MonsterB  string    `gorm:"size:36;not null"`
	Winner    string    `gorm:"size:36;not null;index"`
	WinnerRef Monster   `gorm:"foreignKey:Winner;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
