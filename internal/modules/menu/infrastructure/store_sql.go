package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
)

// documentRecord is one stored document row.
type documentRecord struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (documentRecord) TableName() string { return "documents" }

// SQLStore keeps documents in a PostgreSQL table through GORM.
type SQLStore struct {
	db     *gorm.DB
	prefix string
}

func NewPostgresStore(dsn, prefix string) (*SQLStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return newSQLStore(db, prefix)
}

func newSQLStore(db *gorm.DB, prefix string) (*SQLStore, error) {
	if err := db.AutoMigrate(&documentRecord{}); err != nil {
		return nil, fmt.Errorf("migrate documents: %w", err)
	}
	slog.Info("sql store ready", slog.String("dialect", db.Dialector.Name()))
	return &SQLStore{db: db, prefix: prefix}, nil
}

func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	var record documentRecord
	err := s.db.WithContext(ctx).Where("key = ?", s.prefix+key).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sql load %s: %w", key, err)
	}
	return []byte(record.Value), nil
}

func (s *SQLStore) Save(ctx context.Context, key string, value []byte) error {
	record := documentRecord{Key: s.prefix + key, Value: string(value), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("sql save %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", s.prefix+key).Delete(&documentRecord{}).Error; err != nil {
		return fmt.Errorf("sql remove %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ port.DocumentStore = (*SQLStore)(nil)
