package queries

import (
	"encoding/base64"
	"fmt"
	"strings"

	"salon-reserve/internal/domain/slot"

	"github.com/google/uuid"
)

const (
	MaxListLimit    = 200
	CursorVersionV1 = "v1"
)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeOccurrenceCursor points past the row at (date, time, id) in the
// date DESC, time DESC, id DESC ordering used by the history listing.
func EncodeOccurrenceCursor(o slot.Occurrence, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%s|%s|%s", CursorVersionV1, o.Date, o.Time, id)
	return base64.RawURLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeOccurrenceCursor(cursor string) (slot.Occurrence, uuid.UUID, error) {
	if cursor == "" {
		return slot.Occurrence{}, uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return slot.Occurrence{}, uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return slot.Occurrence{}, uuid.Nil, fmt.Errorf("unsupported cursor version")
	}

	parts := strings.Split(payload, "|")
	if len(parts) != 3 {
		return slot.Occurrence{}, uuid.Nil, fmt.Errorf("invalid cursor format: expected '<date>|<time>|<uuid>'")
	}

	date, err := slot.ParseDate(parts[0])
	if err != nil {
		return slot.Occurrence{}, uuid.Nil, fmt.Errorf("invalid date: %w", err)
	}
	tm, err := slot.ParseTimeOfDay(parts[1])
	if err != nil {
		return slot.Occurrence{}, uuid.Nil, fmt.Errorf("invalid time: %w", err)
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return slot.Occurrence{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return slot.Occurrence{Date: date, Time: tm}, id, nil
}

// ClampLimit caps limit at MaxListLimit; non-positive values fall back to def.
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
