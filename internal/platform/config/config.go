package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "readlog.yaml"

type Config struct {
	LibraryDir string
	CSVPath    string
	CoversDir  string
	PluginsDir string
	DBPath     string
	Reader     string
	Year       int // 0 means resolve to the current year
}

// fileConfig is the optional readlog.yaml inside the library directory.
type fileConfig struct {
	CSV        string `yaml:"csv"`
	CoversDir  string `yaml:"covers_dir"`
	PluginsDir string `yaml:"plugins_dir"`
	Reader     string `yaml:"reader"`
	Year       int    `yaml:"year"`
}

func New(libraryDir string) (Config, error) {
	return NewFromFile(libraryDir, "")
}

// NewFromFile loads configuration with an explicit config file path. An
// empty path falls back to readlog.yaml inside the library directory, which
// may be absent.
func NewFromFile(libraryDir, configPath string) (Config, error) {
	if libraryDir == "" {
		return Config{}, fmt.Errorf("library path is required")
	}

	cfg := Config{
		LibraryDir: libraryDir,
		CSVPath:    filepath.Join(libraryDir, "goodreads_library_export.csv"),
		CoversDir:  filepath.Join(libraryDir, "book_covers"),
		PluginsDir: filepath.Join(libraryDir, ".readlog", "plugins"),
		DBPath:     filepath.Join(libraryDir, ".readlog", "readlog.db"),
	}

	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(libraryDir, fileName)
	}
	raw, err := os.ReadFile(configPath)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", configPath, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", configPath, err)
	}
	if file.CSV != "" {
		cfg.CSVPath = resolve(libraryDir, file.CSV)
	}
	if file.CoversDir != "" {
		cfg.CoversDir = resolve(libraryDir, file.CoversDir)
	}
	if file.PluginsDir != "" {
		cfg.PluginsDir = resolve(libraryDir, file.PluginsDir)
	}
	cfg.Reader = file.Reader
	if file.Year < 0 {
		return Config{}, fmt.Errorf("parse %s: year must be positive", configPath)
	}
	cfg.Year = file.Year
	return cfg, nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
