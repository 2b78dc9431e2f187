package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// LoadAll decodes the collection kind into a slice of T.
// Missing or empty collections yield an empty slice. A collection that does not decode is
// logged and treated as empty so a corrupt file never blocks the board.
func LoadAll[T any](ctx context.Context, b Backend, kind string) ([]T, error) {
	data, err := b.Load(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	out := []T{}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		slog.Warn("malformed collection, treating as empty", "kind", kind, "err", err)
		return []T{}, nil
	}
	return out, nil
}

// SaveAll replaces the collection kind with records.
func SaveAll[T any](ctx context.Context, b Backend, kind string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	if err := b.Save(ctx, kind, data); err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}
