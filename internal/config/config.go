package config

import (
	"fmt"

	"github.com/google/uuid"
)

type Driver interface {
	Exists() (bool, error)
	Write(config Config) error
	Read() (Config, error)
}

func NewStore(driver Driver) (Store, error) {
	exists, err := driver.Exists()
	if err != nil {
		return Store{}, err
	}
	if !exists {
		if err := driver.Write(Default()); err != nil {
			return Store{}, err
		}
	}

	return Store{
		driver: driver,
	}, nil
}

type Store struct {
	driver Driver
}

func (p *Store) GetConfig() (Config, error) {
	return p.driver.Read()
}

func (p *Store) UpdateConfig(fn func(cfg Config) (Config, error)) error {
	cfg, err := p.driver.Read()
	if err != nil {
		return err
	}

	cfg, err = fn(cfg)
	if err != nil {
		return err
	}

	return p.driver.Write(cfg)
}

// Normalize gives every project an id and fills unset desktop values with
// their defaults.
func Normalize(store *Store) error {
	return store.UpdateConfig(func(cfg Config) (Config, error) {
		seen := make(map[string]bool, len(cfg.Projects))
		for i := range cfg.Projects {
			if cfg.Projects[i].ID == "" {
				cfg.Projects[i].ID = uuid.NewString()
			}
			if seen[cfg.Projects[i].ID] {
				return cfg, fmt.Errorf("Projects[%d].ID=%s: %w", i, cfg.Projects[i].ID, ErrDuplicateProject)
			}
			seen[cfg.Projects[i].ID] = true
		}

		if cfg.Desktop.Breakpoint <= 0 {
			cfg.Desktop.Breakpoint = defaultConfig.Desktop.Breakpoint
		}
		if cfg.Desktop.Window.W <= 0 || cfg.Desktop.Window.H <= 0 {
			cfg.Desktop.Window = defaultConfig.Desktop.Window
		}
		if cfg.Desktop.Cascade.Step.X == 0 && cfg.Desktop.Cascade.Step.Y == 0 {
			cfg.Desktop.Cascade = defaultConfig.Desktop.Cascade
		}

		return cfg, nil
	})
}
