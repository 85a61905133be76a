package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/storefront/internal/model"
)

// cartFile persists the cart as a single JSON blob at a well-known
// path, mirroring a browser localStorage entry. An empty path keeps the
// cart in memory only.
type cartFile struct {
	path string
	mem  []model.CartItem
}

func newCartFile(path string) *cartFile {
	return &cartFile{path: path}
}

// Load reads the persisted cart. A missing or undecodable blob yields
// the empty cart rather than an error.
func (f *cartFile) Load() []model.CartItem {
	if f.path == "" {
		return append([]model.CartItem(nil), f.mem...)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return []model.CartItem{}
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []model.CartItem{}
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items
}

// Save rewrites the whole cart blob
func (f *cartFile) Save(items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	if f.path == "" {
		f.mem = append([]model.CartItem(nil), items...)
		return nil
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace cart: %w", err)
	}
	return nil
}

// Clear removes the persisted blob entirely
func (f *cartFile) Clear() error {
	if f.path == "" {
		f.mem = nil
		return nil
	}
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
