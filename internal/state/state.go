package state

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Status of the last parse of a file
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// FileState represents the state of a single wiki page
type FileState struct {
	ID       string    `json:"id"`
	MTime    int64     `json:"mtime"`
	Size     int64     `json:"size"`
	Hash     string    `json:"hash"`
	Status   string    `json:"status"`
	Blocks   int       `json:"blocks,omitempty"`
	Error    string    `json:"error,omitempty"`
	Line     int       `json:"line,omitempty"`
	Column   int       `json:"column,omitempty"`
	ParsedAt time.Time `json:"parsed_at"`
}

// Failed reports whether the last parse of the file failed
func (f *FileState) Failed() bool {
	return f.Status == StatusFailed
}

// Outcome is the result of parsing a file, recorded by Update
type Outcome struct {
	Blocks int
	Err    string
	Line   int
	Column int
}

// State tracks every page the tool has parsed
type State struct {
	Files map[string]*FileState `json:"files"`
	IDMap map[string]string     `json:"id_map"` // page id -> path
}

// NewState creates a new empty state
func NewState() *State {
	return &State{
		Files: make(map[string]*FileState),
		IDMap: make(map[string]string),
	}
}

// Load reads state from the state file
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	if state.Files == nil {
		state.Files = make(map[string]*FileState)
	}
	if state.IDMap == nil {
		state.IDMap = make(map[string]string)
	}

	return &state, nil
}

// Save writes state to the state file
func (s *State) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// ComputeHash computes SHA256 hash of a file
func ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// HasChanged checks if a file has changed since it was last parsed
// Uses hybrid mtime + hash approach
func (s *State) HasChanged(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	mtime := info.ModTime().Unix()

	fileState, exists := s.Files[path]
	if !exists {
		// New file
		return true, nil
	}

	// Fast path: check mtime first
	if mtime == fileState.MTime {
		return false, nil
	}

	// mtime changed, compute hash to check for actual content changes
	hash, err := ComputeHash(path)
	if err != nil {
		return false, err
	}

	return hash != fileState.Hash, nil
}

// Update records the outcome of parsing a file. A file keeps its id across
// updates; new files get a fresh one
func (s *State) Update(path string, outcome Outcome) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	hash, err := ComputeHash(path)
	if err != nil {
		return err
	}

	id := uuid.New().String()
	if existing, ok := s.Files[path]; ok && existing.ID != "" {
		id = existing.ID
	}

	status := StatusOK
	if outcome.Err != "" {
		status = StatusFailed
	}

	s.Files[path] = &FileState{
		ID:       id,
		MTime:    info.ModTime().Unix(),
		Size:     info.Size(),
		Hash:     hash,
		Status:   status,
		Blocks:   outcome.Blocks,
		Error:    outcome.Err,
		Line:     outcome.Line,
		Column:   outcome.Column,
		ParsedAt: time.Now(),
	}
	s.IDMap[id] = path

	return nil
}

// Remove forgets a file
func (s *State) Remove(path string) {
	if fileState, ok := s.Files[path]; ok {
		delete(s.IDMap, fileState.ID)
		delete(s.Files, path)
	}
}

// PathForID returns the path of the page with the given id
func (s *State) PathForID(id string) (string, bool) {
	path, ok := s.IDMap[id]
	return path, ok
}

// Paths returns every tracked path in sorted order
func (s *State) Paths() []string {
	paths := make([]string, 0, len(s.Files))
	for path := range s.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// FailedPaths returns the sorted paths whose last parse failed
func (s *State) FailedPaths() []string {
	var paths []string
	for _, path := range s.Paths() {
		if s.Files[path].Failed() {
			paths = append(paths, path)
		}
	}
	return paths
}

// GetMTime returns the modification time for a file
func (s *State) GetMTime(path string) time.Time {
	if fileState, exists := s.Files[path]; exists {
		return time.Unix(fileState.MTime, 0)
	}
	return time.Time{}
}
