package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileKV keeps the whole key space in a single JSON document on disk,
// mirroring the browser-local storage the record layout originally targeted.
// The file is re-read on every operation and rewritten atomically on every
// write; an unreadable or unparsable file reads as empty rather than failing.
type FileKV struct {
	mu   sync.Mutex
	path string
}

// NewFileKV creates a file-backed KV at path, creating parent directories as
// needed.
func NewFileKV(path string) (*FileKV, error) {
	if path == "" {
		return nil, fmt.Errorf("file store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileKV{path: path}, nil
}

// Get implements KV.
func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := f.load()
	value, ok := entries[key]
	return value, ok, nil
}

// Set implements KV.
func (f *FileKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := f.load()
	entries[key] = value
	return f.flush(entries)
}

// Delete implements KV.
func (f *FileKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := f.load()
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return f.flush(entries)
}

// Keys implements KV.
func (f *FileKV) Keys(_ context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := f.load()
	keys := make([]string, 0)
	for key := range entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (f *FileKV) load() map[string]string {
	entries := make(map[string]string)
	data, err := os.ReadFile(f.path)
	if err != nil {
		return entries
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return map[string]string{}
	}
	return entries
}

func (f *FileKV) flush(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store file: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
