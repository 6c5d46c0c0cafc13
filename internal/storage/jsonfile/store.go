// Package jsonfile implements storage over flat JSON files.
//
// Every read loads an entire file and every mutation rewrites it whole, which
// is the persistence contract this application inherits: users.json,
// emissions.json, and data.json in a single data directory.
//
// Defaulting policy: a missing or malformed file is treated as an empty
// collection and never surfaces an error.
//
// Known limitation: rewrites are last-writer-wins. A process-local mutex
// serializes this process's own read-modify-write cycles, but nothing guards
// against a second process writing the same files.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	usersFilename     = "users.json"
	emissionsFilename = "emissions.json"
	marketFilename    = "data.json"
)

// Store persists application state in flat JSON files under one directory.
type Store struct {
	mu            sync.Mutex
	usersPath     string
	emissionsPath string
	marketPath    string
}

// Open validates the data directory and returns a store rooted there. The
// directory must exist; the files themselves are created on first write.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	cleanDir := filepath.Clean(dir)
	info, err := os.Stat(cleanDir)
	if err != nil {
		return nil, fmt.Errorf("stat data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data path %q is not a directory", cleanDir)
	}
	return &Store{
		usersPath:     filepath.Join(cleanDir, usersFilename),
		emissionsPath: filepath.Join(cleanDir, emissionsFilename),
		marketPath:    filepath.Join(cleanDir, marketFilename),
	}, nil
}

// writeFile rewrites the file at path with the indented JSON encoding of
// value.
func writeFile(path string, value any) error {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
