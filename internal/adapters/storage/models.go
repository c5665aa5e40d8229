package storage

import "time"

// KVEntryModel is the GORM model for the local key-value slots.
type KVEntryModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey;column:key"`
	UpdatedAt time.Time
	Value     []byte `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KVEntryModel) TableName() string { return "kv_entries" }
