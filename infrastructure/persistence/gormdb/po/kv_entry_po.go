package po

import "time"

// KVEntryPO is one key-value pair. Keys are owner-namespaced cart, wishlist
// and preference keys.
type KVEntryPO struct {
	Key       string    `gorm:"primaryKey;size:191"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KVEntryPO) TableName() string {
	return "kv_entries"
}
