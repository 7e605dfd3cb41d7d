package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		WikiDirs:    []string{"/path/to/wiki"},
		Extension:   ".wiki",
		LogFile:     "/tmp/test.log",
		MaxFileSize: 1024,
		Workers:     2,
		Debounce:    100 * time.Millisecond,
	}
}

// useConfigPath points ConfigPath at path for the duration of the test
func useConfigPath(t *testing.T, path string) {
	t.Helper()
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return path
	}
	t.Cleanup(func() {
		ConfigPath = originalConfigPath
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.WikiDirs) != 1 {
		t.Errorf("Expected one default wiki dir, got %d", len(cfg.WikiDirs))
	}
	if cfg.Extension != ".wiki" {
		t.Errorf("Expected extension .wiki, got %s", cfg.Extension)
	}
	if cfg.LogFile == "" {
		t.Error("Expected LogFile to be set")
	}
	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("Expected MaxFileSize %d, got %d", DefaultMaxFileSize, cfg.MaxFileSize)
	}
	if cfg.Debounce != 250*time.Millisecond {
		t.Errorf("Expected Debounce to be 250ms, got %v", cfg.Debounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid config", modify: func(*Config) {}, wantErr: false},
		{name: "no wiki dirs", modify: func(c *Config) { c.WikiDirs = nil }, wantErr: true},
		{name: "empty wiki dir", modify: func(c *Config) { c.WikiDirs = []string{""} }, wantErr: true},
		{name: "extension without dot", modify: func(c *Config) { c.Extension = "wiki" }, wantErr: true},
		{name: "extension only dot", modify: func(c *Config) { c.Extension = "." }, wantErr: true},
		{name: "empty log file", modify: func(c *Config) { c.LogFile = "" }, wantErr: true},
		{name: "zero max file size", modify: func(c *Config) { c.MaxFileSize = 0 }, wantErr: true},
		{name: "zero workers", modify: func(c *Config) { c.Workers = 0 }, wantErr: true},
		{name: "negative debounce", modify: func(c *Config) { c.Debounce = -time.Second }, wantErr: true},
		{name: "zero debounce", modify: func(c *Config) { c.Debounce = 0 }, wantErr: false},
		{name: "bad exclude pattern", modify: func(c *Config) { c.ExcludePatterns = []string{"[a-"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")
	useConfigPath(t, testConfigPath)

	testCfg := validConfig()
	testCfg.Debounce = 45 * time.Millisecond
	testCfg.ExcludePatterns = []string{"diary/"}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.Debounce != testCfg.Debounce {
		t.Errorf("Debounce mismatch: got %v, want %v", loadedCfg.Debounce, testCfg.Debounce)
	}
	if loadedCfg.Workers != 2 {
		t.Errorf("Workers mismatch: got %d, want 2", loadedCfg.Workers)
	}
	if len(loadedCfg.ExcludePatterns) != 1 || loadedCfg.ExcludePatterns[0] != "diary/" {
		t.Errorf("ExcludePatterns mismatch: got %v", loadedCfg.ExcludePatterns)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")
	useConfigPath(t, testConfigPath)

	data := []byte(`{"wiki_dirs": ["/tmp/wiki"], "log_file": "/tmp/vimwiki.log"}`)
	if err := os.WriteFile(testConfigPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Extension != ".wiki" {
		t.Errorf("Expected default extension, got %s", cfg.Extension)
	}
	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("Expected default max file size, got %d", cfg.MaxFileSize)
	}
	if cfg.Workers != 4 {
		t.Errorf("Expected default workers, got %d", cfg.Workers)
	}
	if cfg.ExcludePatterns == nil {
		t.Error("ExcludePatterns should not be nil")
	}
}

func TestLoadInvalidDebounce(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")
	useConfigPath(t, testConfigPath)

	data := []byte(`{"wiki_dirs": ["/tmp/wiki"], "log_file": "/tmp/x.log", "debounce": "soon"}`)
	if err := os.WriteFile(testConfigPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on an invalid debounce")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	useConfigPath(t, filepath.Join(tmpDir, "nonexistent.json"))

	// Load should return default config when file doesn't exist
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}

	if cfg.Debounce != 250*time.Millisecond {
		t.Errorf("Expected default debounce 250ms, got %v", cfg.Debounce)
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		contains string // The output should contain this
	}{
		{
			name:     "tilde expansion",
			input:    "~/test",
			contains: homeDir,
		},
		{
			name:     "tilde only",
			input:    "~",
			contains: homeDir,
		},
		{
			name:     "absolute path",
			input:    "/tmp/test",
			contains: "/tmp/test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if result == "" {
				t.Error("expandPath() returned empty string")
			}
			// Just verify it's not the original unexpanded path
			if tt.input[0] == '~' && result == tt.input {
				t.Errorf("Path was not expanded: %s", result)
			}
		})
	}
}

func TestConfigPathsExpanded(t *testing.T) {
	tmpDir := t.TempDir()
	useConfigPath(t, filepath.Join(tmpDir, "config.json"))

	testCfg := validConfig()
	testCfg.WikiDirs = []string{"~/vimwiki", "relative/wiki"}
	testCfg.LogFile = "~/vimwiki.log"

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	for _, dir := range loadedCfg.WikiDirs {
		if !filepath.IsAbs(dir) {
			t.Errorf("Wiki dir was not expanded: %s", dir)
		}
	}
	if loadedCfg.LogFile[0] == '~' {
		t.Error("LogFile was not expanded")
	}
}

func TestIsExcluded(t *testing.T) {
	cfg := validConfig()
	cfg.ExcludePatterns = []string{"*.tmp.wiki", "diary/", "drafts/*.wiki"}
	root := "/wiki"

	tests := []struct {
		path string
		want bool
	}{
		{path: "/wiki/index.wiki", want: false},
		{path: "/wiki/scratch.tmp.wiki", want: true},
		{path: "/wiki/diary/2024-01-01.wiki", want: true},
		{path: "/wiki/drafts/idea.wiki", want: true},
		{path: "/wiki/notes/drafts.wiki", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := cfg.IsExcluded(root, tt.path); got != tt.want {
				t.Errorf("IsExcluded(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
