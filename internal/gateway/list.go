package gateway

import (
	"bytes"
	"encoding/json"
)

// List decodes a collection payload that arrives either as a bare JSON array
// or as a paginated {"items": [...]} object.
type List[T any] struct {
	items []T
}

func (l *List[T]) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		return json.Unmarshal(raw, &l.items)
	}
	var wrap struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrap); err != nil {
		return err
	}
	l.items = wrap.Items
	return nil
}

func (l *List[T]) Items() []T { return l.items }
