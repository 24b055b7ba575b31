// Package history persists submitted prompts across sessions in a local
// sqlite database.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/gemcode-cli/gemcode/internal/core"
)

// schemaVersion is bumped whenever PromptEntry changes shape. A marker file
// next to the data lets startup skip AutoMigrate when nothing changed.
const schemaVersion = 1

type HistoryManager struct {
	db *gorm.DB
}

type PromptEntry struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time `gorm:"index"`

	Prompt    string
	Directory string
}

func NewHistoryManager(dbFilePath string) (*HistoryManager, error) {
	_, statErr := os.Stat(dbFilePath)
	freshDB := errors.Is(statErr, os.ErrNotExist)
	if statErr != nil && !freshDB {
		return nil, fmt.Errorf("checking history db: %w", statErr)
	}

	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if err := migrate(db, freshDB); err != nil {
		return nil, err
	}

	return &HistoryManager{db: db}, nil
}

// migrate runs AutoMigrate unless the database already matches the current
// schema version and still has its table.
func migrate(db *gorm.DB, freshDB bool) error {
	if !freshDB && storedSchemaVersion() == schemaVersion && db.Migrator().HasTable(&PromptEntry{}) {
		return nil
	}

	if err := db.AutoMigrate(&PromptEntry{}); err != nil {
		return fmt.Errorf("migrating history schema: %w", err)
	}
	version := strconv.Itoa(schemaVersion)
	if err := os.WriteFile(schemaMarkerPath(), []byte(version), 0644); err != nil {
		return fmt.Errorf("recording history schema version: %w", err)
	}
	return nil
}

// storedSchemaVersion reads the marker file, returning 0 when it is missing
// or unreadable so the caller falls through to migration.
func storedSchemaVersion() int {
	data, err := os.ReadFile(schemaMarkerPath())
	if err != nil {
		return 0
	}
	version, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return version
}

func schemaMarkerPath() string {
	return filepath.Join(core.DataDir(), "history_schema_version")
}

// RecordPrompt stores one submitted prompt together with the directory it
// was submitted from.
func (m *HistoryManager) RecordPrompt(prompt string, directory string) (*PromptEntry, error) {
	entry := PromptEntry{
		Prompt:    prompt,
		Directory: directory,
	}
	if result := m.db.Create(&entry); result.Error != nil {
		return nil, result.Error
	}
	return &entry, nil
}

// GetRecentEntries returns up to limit entries in chronological order,
// optionally filtered to one directory.
func (m *HistoryManager) GetRecentEntries(directory string, limit int) ([]PromptEntry, error) {
	query := m.db
	if directory != "" {
		query = query.Where("directory = ?", directory)
	}

	var entries []PromptEntry
	if result := query.Order("created_at desc").Limit(limit).Find(&entries); result.Error != nil {
		return nil, result.Error
	}

	slices.Reverse(entries)
	return entries, nil
}

// GetRecentEntriesByPrefix returns up to limit entries whose prompt starts
// with prefix, most recent first. Used for input history navigation.
func (m *HistoryManager) GetRecentEntriesByPrefix(prefix string, limit int) ([]PromptEntry, error) {
	var entries []PromptEntry
	result := m.db.Where("prompt LIKE ?", prefix+"%").
		Order("created_at desc").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

// SearchHistory searches for entries containing the given substring.
// Returns entries in reverse chronological order (most recent first).
func (m *HistoryManager) SearchHistory(query string, limit int) ([]PromptEntry, error) {
	var entries []PromptEntry
	result := m.db.Where("prompt LIKE ?", "%"+query+"%").
		Order("created_at desc").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

func (m *HistoryManager) DeleteEntry(id uint) error {
	result := m.db.Delete(&PromptEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no history entry found with id %d", id)
	}
	return nil
}

func (m *HistoryManager) ResetHistory() error {
	if result := m.db.Exec("DELETE FROM prompt_entries"); result.Error != nil {
		return result.Error
	}
	return nil
}
