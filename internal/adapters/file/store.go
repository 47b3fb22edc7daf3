package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devbush/cueline/internal/domain"
	"github.com/devbush/cueline/internal/ports"
)

// Store persists projects as indented JSON files on disk.
type Store struct{}

// NewStore creates a file-backed project store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and decodes a project file.
func (s *Store) Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	var p domain.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project file: %w", err)
	}

	return &p, nil
}

// Save writes the project atomically: temp file in the same directory,
// then rename over the target.
func (s *Store) Save(path string, p *domain.Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cueline-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}

var _ ports.ProjectStore = (*Store)(nil)
