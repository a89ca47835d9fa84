package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ItsNotGoodName/webdesk/internal/core"
	"gopkg.in/yaml.v3"
)

var ErrDuplicateProject = errors.New("duplicate project")

func NewYAML(filePath string) YAML {
	return YAML{
		filePath: filePath,
	}
}

type YAML struct {
	filePath string
}

// Exists implements Driver.
func (y YAML) Exists() (bool, error) {
	return core.FileExists(y.filePath)
}

func (y YAML) Read() (Config, error) {
	file, err := os.Open(y.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	defer file.Close()

	var cfg Config
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (y YAML) Write(cfg Config) error {
	filePathTmp := y.filePath + ".tmp"
	file, err := os.OpenFile(filePathTmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if err := yaml.NewEncoder(file).Encode(cfg); err != nil {
		file.Close()
		return err
	}
	file.Close()

	return os.Rename(filePathTmp, y.filePath)
}

func NewJSON(filePath string) JSON {
	return JSON{
		filePath: filePath,
	}
}

type JSON struct {
	filePath string
}

// Exists implements Driver.
func (j JSON) Exists() (bool, error) {
	return core.FileExists(j.filePath)
}

func (j JSON) Read() (Config, error) {
	file, err := os.Open(j.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (j JSON) Write(cfg Config) error {
	filePathTmp := j.filePath + ".tmp"
	file, err := os.OpenFile(filePathTmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		file.Close()
		return err
	}
	file.Close()

	return os.Rename(filePathTmp, j.filePath)
}

// NewDriver picks a driver from the file extension.
func NewDriver(filePath string) Driver {
	switch filepath.Ext(filePath) {
	case ".json":
		return NewJSON(filePath)
	default:
		return NewYAML(filePath)
	}
}

func NewMemory() *Memory {
	return &Memory{}
}

// Memory keeps the config in process, mostly for tests.
type Memory struct {
	mu      sync.RWMutex
	cfg     Config
	written bool
}

// Exists implements Driver.
func (m *Memory) Exists() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.written, nil
}

func (m *Memory) Read() (Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.written {
		return Default(), nil
	}
	return m.cfg, nil
}

func (m *Memory) Write(cfg Config) error {
	m.mu.Lock()
	m.cfg = cfg
	m.written = true
	m.mu.Unlock()
	return nil
}
