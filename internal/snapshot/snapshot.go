package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Makepad-fr/menu/internal/model"
)

// A snapshot is the menu serialised as a JSON array of dishes, passed from
// one screen or command to the next. Decoding does not validate; that is
// Registry.Replace's job.

// Encode serialises dishes. A nil slice encodes as an empty array.
func Encode(dishes []model.Dish) ([]byte, error) {
	if dishes == nil {
		dishes = []model.Dish{}
	}
	b, err := json.MarshalIndent(dishes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decode parses a snapshot. An empty payload is an empty menu.
func Decode(b []byte) ([]model.Dish, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return []model.Dish{}, nil
	}
	var dishes []model.Dish
	if err := json.Unmarshal(b, &dishes); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if dishes == nil {
		dishes = []model.Dish{}
	}
	return dishes, nil
}

func Read(r io.Reader) ([]model.Dish, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Decode(b)
}

func Write(w io.Writer, dishes []model.Dish) error {
	b, err := Encode(dishes)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
