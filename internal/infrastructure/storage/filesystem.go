// Package storage persists saved games as JSON files in the darkstar home
// directory.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"

	"github.com/projectdarkstar/darkstar/internal/domain"
	"github.com/projectdarkstar/darkstar/internal/domain/chrono"
)

const SavesDir = "saves"

// FilesystemRepository stores snapshots under <home>/saves/<id>.json.
type FilesystemRepository struct {
	home        string
	retryConfig retry.Config
}

// NewFilesystemRepository roots the store at the darkstar home directory.
func NewFilesystemRepository(home string) *FilesystemRepository {
	return &FilesystemRepository{
		home: home,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// resolveSavePath keeps save files inside <home>/saves and rejects
// traversal in the ID.
func (r *FilesystemRepository) resolveSavePath(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("save id cannot be empty")
	}
	baseDir := filepath.Join(r.home, SavesDir)
	fullPath := filepath.Join(baseDir, id+".json")
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid save id: %s", id)
	}
	return cleanPath, nil
}

// Initialize creates the home and saves directories.
func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.home, SavesDir)
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create saves directory: %w", err)
	}
	return nil
}

// IsInitialized reports whether the saves directory exists.
func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.home, SavesDir))
	return err == nil
}

// SaveGame writes a snapshot.
func (r *FilesystemRepository) SaveGame(snapshot *domain.SaveSnapshot) error {
	path, err := r.resolveSavePath(snapshot.ID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadGame reads a snapshot back, retrying transient read failures.
func (r *FilesystemRepository) LoadGame(id string) (*domain.SaveSnapshot, error) {
	retryer := retry.New[*domain.SaveSnapshot](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*domain.SaveSnapshot, error) {
		path, err := r.resolveSavePath(id)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via resolveSavePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read save file: %w", err)
		}

		var snap domain.SaveSnapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal save: %w", err)
		}
		return &snap, nil
	})
}

// ListSaves returns the saved games, most recent first.
func (r *FilesystemRepository) ListSaves() ([]domain.SaveInfo, error) {
	dir := filepath.Join(r.home, SavesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read saves directory: %w", err)
	}

	var infos []domain.SaveInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		snap, err := r.LoadGame(id)
		if err != nil {
			continue // unreadable saves are skipped, not fatal
		}
		infos = append(infos, domain.SaveInfo{
			ID:         snap.ID,
			PlayerName: snap.PlayerName,
			ShipName:   snap.ShipName,
			ShipTime:   chrono.FromMinutes(snap.ChronometerMinutes).Format(),
			SavedAt:    snap.SavedAt,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].SavedAt.After(infos[j].SavedAt)
	})
	return infos, nil
}

// DeleteSave removes a saved game.
func (r *FilesystemRepository) DeleteSave(id string) error {
	path, err := r.resolveSavePath(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete save %s: %w", id, err)
	}
	return nil
}
