// internal/storage/store.go
package storage

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NinjaRecord — сохранённая прогрессия персонажа. Запись одна.
type NinjaRecord struct {
	ID         uint `gorm:"primaryKey"`
	Level      int
	Experience int
	Gold       int
	Gems       int
}

// ProgressRecord — сохранённый прогресс по зонам, по записи на зону.
type ProgressRecord struct {
	ZoneID string `gorm:"primaryKey"`
	Level  int
	Kills  int
}

// Store пишет и читает сохранения через sqlite. Ядро боя о нём не знает:
// источник данных для записи — снапшоты.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open открывает (или создаёт) файл сохранения и прогоняет миграции.
// Путь ":memory:" даёт чистую базу в памяти — удобно в тестах.
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if path == ":memory:" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open save database: %w", err)
	}

	if err := db.AutoMigrate(&NinjaRecord{}, &ProgressRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate save schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("save database ready")
	return &Store{db: db, log: log}, nil
}

// SaveNinja перезаписывает единственную запись персонажа.
func (s *Store) SaveNinja(rec NinjaRecord) error {
	rec.ID = 1
	if err := s.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("failed to save ninja: %w", err)
	}
	return nil
}

// LoadNinja читает запись персонажа. ok=false, если сохранения ещё нет.
func (s *Store) LoadNinja() (NinjaRecord, bool, error) {
	var rec NinjaRecord
	err := s.db.First(&rec, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NinjaRecord{}, false, nil
	}
	if err != nil {
		return NinjaRecord{}, false, fmt.Errorf("failed to load ninja: %w", err)
	}
	return rec, true, nil
}

// SaveProgress перезаписывает прогресс зоны.
func (s *Store) SaveProgress(rec ProgressRecord) error {
	if err := s.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("failed to save zone progress: %w", err)
	}
	return nil
}

// LoadProgress читает прогресс зоны. ok=false, если зона ещё не начата.
func (s *Store) LoadProgress(zoneID string) (ProgressRecord, bool, error) {
	var rec ProgressRecord
	err := s.db.First(&rec, "zone_id = ?", zoneID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ProgressRecord{}, false, nil
	}
	if err != nil {
		return ProgressRecord{}, false, fmt.Errorf("failed to load zone progress: %w", err)
	}
	return rec, true, nil
}
