package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/mashrafi141/my-judge-webapp2/api"
)

const cacheFileName = "problems.json.zst"

// Cache persists the last good catalog, zstd-compressed, so a fresh
// process still has a stale catalog to show while the judge is down.
type Cache struct {
	path string
}

// NewCache creates a cache rooted at dir, creating the directory if
// needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir %s: %w", dir, err)
	}
	return &Cache{path: filepath.Join(dir, cacheFileName)}, nil
}

// Store writes the catalog atomically via a temp file rename.
func (c *Cache) Store(problems []api.Problem) error {
	data, err := json.Marshal(problems)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), cacheFileName+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc, err := zstd.NewWriter(tmp)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		tmp.Close()
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := enc.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}

// Restore reads the cached catalog, if present.
func (c *Cache) Restore() ([]api.Problem, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer dec.Close()

	var problems []api.Problem
	if err := json.NewDecoder(dec).Decode(&problems); err != nil {
		return nil, fmt.Errorf("failed to decode cached catalog: %w", err)
	}
	return problems, nil
}
