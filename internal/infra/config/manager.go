package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/issue-butler/internal/domain"
)

// Ensure Manager implements domain.ConfigWriter.
var _ domain.ConfigWriter = (*Manager)(nil)

// Manager writes starter configuration files.
type Manager struct{}

// NewManager creates a new Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Init writes the starter report config to path.
// An existing file is only replaced when force is set.
func (m *Manager) Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(domain.ConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
