package state

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a snapshot names an object type this
// package does not know.
var ErrUnknownKind = errors.New("unknown object kind")

type envelope struct {
	Type Kind            `json:"type"`
	Data json.RawMessage `json:"data"`
}

type document struct {
	Background Color      `json:"background"`
	Objects    []envelope `json:"objects"`
	// GridAt is the number of objects drawn below the grid overlay.
	GridAt int `json:"gridAt,omitempty"`
}

// Snapshot serializes the background and every object except the grid
// overlay. The overlay's place in the render order is kept as GridAt. The
// result is never modified afterwards by this package.
func (s *Scene) Snapshot() ([]byte, error) {
	doc := document{
		Background: s.background,
		Objects:    make([]envelope, 0, len(s.objects)),
	}
	gridSeen := false
	for _, o := range s.objects {
		if IsGrid(o) {
			gridSeen = true
			continue
		}
		if !gridSeen {
			doc.GridAt++
		}
		data, err := json.Marshal(o)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", o.Kind(), o.Base().ID, err)
		}
		doc.Objects = append(doc.Objects, envelope{Type: o.Kind(), Data: data})
	}
	if !gridSeen {
		doc.GridAt = 0
	}
	return json.Marshal(doc)
}

// Restore replaces the scene content with a snapshot taken by Snapshot.
// Grid lines currently attached go back to the recorded place in the render
// order; the selection is dropped. On error the scene is left untouched.
func (s *Scene) Restore(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	decoded := make([]Object, 0, len(doc.Objects))
	for i, env := range doc.Objects {
		o, err := decodeObject(env)
		if err != nil {
			return fmt.Errorf("decode object %d: %w", i, err)
		}
		decoded = append(decoded, o)
	}

	var grid []Object
	for _, o := range s.objects {
		if IsGrid(o) {
			grid = append(grid, o)
		}
	}
	at := max(0, min(doc.GridAt, len(decoded)))
	objects := make([]Object, 0, len(decoded)+len(grid))
	objects = append(objects, decoded[:at]...)
	objects = append(objects, grid...)
	objects = append(objects, decoded[at:]...)

	s.objects = objects
	s.background = doc.Background
	s.active = nil
	return nil
}

func decodeObject(env envelope) (Object, error) {
	var o Object
	switch env.Type {
	case KindStroke:
		o = &Stroke{}
	case KindRect:
		o = &Rect{}
	case KindEllipse:
		o = &Ellipse{}
	case KindText:
		o = &TextBox{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, env.Type)
	}
	if err := json.Unmarshal(env.Data, o); err != nil {
		return nil, err
	}
	return o, nil
}

// DeepCopy returns an independent scene holding copies of every object,
// grid lines included, with the same IDs. Selection is not copied.
func (s *Scene) DeepCopy() *Scene {
	c := &Scene{
		objects:    make([]Object, 0, len(s.objects)),
		background: s.background,
		Viewport:   s.Viewport,
	}
	for _, o := range s.objects {
		dup := o.Clone()
		dup.Base().ID = o.Base().ID
		c.objects = append(c.objects, dup)
	}
	return c
}
