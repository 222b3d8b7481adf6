// Package store loads and saves the whole ledger as one JSON document.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/ledger/pkg/ledger"
)

// Persistence is read once when a session starts and written once when it
// ends.
type Persistence interface {
	// Load returns the stored ledger, or ledger.Default when nothing has
	// been saved yet.
	Load() (*ledger.Ledger, error)
	Save(l *ledger.Ledger) error
	Exists() bool
	Path() string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	path := cfg.Path()
	if path == "" {
		return nil, errors.New("store: ledger path required")
	}
	dir, key := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          dir,
		AdvancedTransform: flatTransform,
		InverseTransform:  flatInverse,
		TempDir:           filepath.Join(dir, ".ledger-tmp"),
		CacheSizeMax:      1024 * 1024, // 1MB
	}), key: key, path: path}, nil
}

type persistence struct {
	d    *diskv.Diskv
	key  string
	path string
}

func (p *persistence) Path() string {
	return p.path
}

func (p *persistence) Exists() bool {
	return p.d.Has(p.key)
}

func (p *persistence) Load() (*ledger.Ledger, error) {
	if !p.Exists() {
		return ledger.Default(), nil
	}
	val, err := p.d.Read(p.key)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", p.path, err)
	}
	l := ledger.New()
	if err := json.Unmarshal(val, l); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", p.path, err)
	}
	l.Normalize()
	if len(l.Currencies) == 0 {
		l.Currencies = ledger.Default().Currencies
	}
	return l, nil
}

func (p *persistence) Save(l *ledger.Ledger) error {
	if l == nil {
		return errors.New("store: nil ledger")
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.path, err)
	}
	return nil
}

// The ledger is a single file directly under BasePath.

func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func flatInverse(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
