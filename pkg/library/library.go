package library

import (
	"fmt"
	"os"
	"path/filepath"
)

// Library is the managed storage directory for mx items
type Library struct {
	RootPath   string
	ItemsPath  string
	LogsPath   string
	ConfigPath string
}

// New creates a new Library with XDG-compliant paths
func New() (*Library, error) {
	rootPath, rootErr := getLibraryRoot()
	configPath, configErr := getConfigPath()
	if rootErr != nil {
		return nil, fmt.Errorf("failed to determine library root: %w", rootErr)
	}
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return newAt(rootPath, configPath), nil
}

// NewAt creates a Library rooted at an explicit directory, as set by library_path
func NewAt(rootPath string) (*Library, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", err)
	}
	abs, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve library path: %w", err)
	}
	return newAt(abs, configPath), nil
}

func newAt(rootPath, configPath string) *Library {
	return &Library{
		RootPath:   rootPath,
		ItemsPath:  filepath.Join(rootPath, "items"),
		LogsPath:   filepath.Join(rootPath, "logs"),
		ConfigPath: configPath,
	}
}

// getLibraryRoot returns the library root directory path
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func getLibraryRoot() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "mx"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "mx"), nil
	}

	return filepath.Join(homeDir, ".local", "share", "mx"), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "mx", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "mx-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", "mx", "config.yaml"), nil
}

// Initialize creates the library directory structure if it doesn't exist
func (l *Library) Initialize() error {
	for _, dir := range []string{l.RootPath, l.ItemsPath, l.LogsPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Exists checks if the library has been initialized
func (l *Library) Exists() bool {
	info, err := os.Stat(l.ItemsPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Folder resolves a folder argument. Relative folders live under ItemsPath;
// an empty folder is ItemsPath itself.
func (l *Library) Folder(folder string) string {
	if folder == "" {
		return l.ItemsPath
	}
	if filepath.IsAbs(folder) {
		return filepath.Clean(folder)
	}
	return filepath.Join(l.ItemsPath, folder)
}

// LogPath returns the default log file location
func (l *Library) LogPath() string {
	return filepath.Join(l.LogsPath, "mx.log")
}
