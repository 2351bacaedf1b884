package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

// Store reads the five record collections from a JSON snapshot file
// maintained by the surrounding application. The file is re-read on
// every load so successive report runs always see current data.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Collections loads and decodes the snapshot.
func (s *Store) Collections(ctx context.Context) (domain.Collections, error) {
	if err := ctx.Err(); err != nil {
		return domain.Collections{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Collections{}, fmt.Errorf("failed to read snapshot %s: %w", s.path, err)
	}

	var c domain.Collections
	if err := json.Unmarshal(data, &c); err != nil {
		return domain.Collections{}, fmt.Errorf("failed to decode snapshot %s: %w", s.path, err)
	}
	return c, nil
}
