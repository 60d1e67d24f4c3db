package gormdb

import (
	"context"
	"errors"

	"storefront/domain/shared"
	"storefront/infrastructure/persistence"
	"storefront/infrastructure/persistence/gormdb/po"
	"storefront/infrastructure/persistence/retry"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore keeps key-value pairs in the kv_entries table. Writes are upserts
// retried on deadlocks and busy errors.
type KVStore struct {
	db    *gorm.DB
	retry retry.Config
}

var _ shared.KVStore = (*KVStore)(nil)

func NewKVStore(db *gorm.DB, retryCfg retry.Config) *KVStore {
	return &KVStore{db: db, retry: retryCfg}
}

// getDB uses the transaction in ctx when there is one
func (s *KVStore) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry po.KVEntryPO
	err := s.getDB(ctx).Where("`key` = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if entry.Value == nil {
		entry.Value = []byte{}
	}
	return entry.Value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	entry := po.KVEntryPO{Key: key, Value: value}
	return retry.ExecuteWithRetry(ctx, s.retry, func(ctx context.Context) error {
		return s.getDB(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&entry).Error
	})
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	return retry.ExecuteWithRetry(ctx, s.retry, func(ctx context.Context) error {
		return s.getDB(ctx).Where("`key` = ?", key).Delete(&po.KVEntryPO{}).Error
	})
}
