package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// RecordVersion is the version written by Encode.
const RecordVersion = 1

type record struct {
	Version int        `json:"version"`
	Items   []LineItem `json:"items"`
	SavedAt time.Time  `json:"saved_at"`
}

// Encode serializes the line items of snap. Totals are not stored; they are
// derived again on decode.
func Encode(snap Snapshot) ([]byte, error) {
	items := snap.Items
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(record{
		Version: RecordVersion,
		Items:   items,
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode cart snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a record written by Encode and checks the line item
// invariants. Any violation is reported as ErrCorruptSnapshot.
func Decode(data []byte) (Snapshot, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Snapshot{}, errors.Join(ErrCorruptSnapshot, err)
	}
	if rec.Version != RecordVersion {
		return Snapshot{}, fmt.Errorf("%w: got %d", ErrUnsupportedVersion, rec.Version)
	}

	seen := make(map[ProductID]struct{}, len(rec.Items))
	for i, item := range rec.Items {
		switch {
		case item.Quantity < 1:
			return Snapshot{}, fmt.Errorf("%w: item %d has quantity %d", ErrCorruptSnapshot, i, item.Quantity)
		case item.UnitPrice < 0:
			return Snapshot{}, fmt.Errorf("%w: item %d has negative price", ErrCorruptSnapshot, i)
		}
		if _, dup := seen[item.ProductID]; dup {
			return Snapshot{}, fmt.Errorf("%w: duplicate product id %d", ErrCorruptSnapshot, item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
	}

	return NewSnapshot(rec.Items), nil
}
