package state

import (
	"slices"

	"SketchBoard/internal/logging"
)

// Logical size of the drawing surface in scene units.
const (
	CanvasWidth  = 1100
	CanvasHeight = 600
)

// Scene is the ordered collection of objects a board renders and edits.
// Order is z-order: index 0 is drawn first, the last object is the front.
// A Scene belongs to a single board and is not safe for concurrent use.
type Scene struct {
	objects    []Object
	active     []Object
	background Color
	Viewport   Viewport
}

// NewScene returns an empty scene with the given background.
func NewScene(background Color) *Scene {
	return &Scene{
		objects:    make([]Object, 0),
		background: background,
		Viewport:   NewViewport(),
	}
}

// Objects returns the objects in render order. The slice is a copy; the
// objects are not.
func (s *Scene) Objects() []Object {
	return slices.Clone(s.objects)
}

func (s *Scene) Len() int { return len(s.objects) }

// At returns the object at index i.
func (s *Scene) At(i int) Object { return s.objects[i] }

// IndexOf returns the render position of o, or -1.
func (s *Scene) IndexOf(o Object) int {
	return slices.Index(s.objects, o)
}

// Add appends o at the front of the render order.
func (s *Scene) Add(o Object) {
	s.objects = append(s.objects, o)
	logging.Logger().Debug("object added", "kind", o.Kind(), "id", o.Base().ID)
}

// Insert places o at render position i, clamped to the valid range.
func (s *Scene) Insert(i int, o Object) {
	i = max(0, min(i, len(s.objects)))
	s.objects = slices.Insert(s.objects, i, o)
}

// Remove detaches o from the scene and from the selection. It reports
// whether o was present.
func (s *Scene) Remove(o Object) bool {
	if !s.detach(o) {
		return false
	}
	s.active = slices.DeleteFunc(s.active, func(a Object) bool { return a == o })
	logging.Logger().Debug("object removed", "kind", o.Kind(), "id", o.Base().ID)
	return true
}

func (s *Scene) detach(o Object) bool {
	i := s.IndexOf(o)
	if i < 0 {
		return false
	}
	s.objects = slices.Delete(s.objects, i, i+1)
	return true
}

// Clear removes every object and the selection.
func (s *Scene) Clear() {
	s.objects = make([]Object, 0)
	s.active = nil
}

// BringToFront moves o to the end of the render order. The selection is kept.
func (s *Scene) BringToFront(o Object) bool {
	if !s.detach(o) {
		return false
	}
	s.objects = append(s.objects, o)
	return true
}

// SendToBack moves o to index 0 of the render order. The selection is kept.
func (s *Scene) SendToBack(o Object) bool {
	if !s.detach(o) {
		return false
	}
	s.Insert(0, o)
	return true
}

// Active returns the selected object when exactly one is selected.
func (s *Scene) Active() Object {
	if len(s.active) != 1 {
		return nil
	}
	return s.active[0]
}

// Selection returns every selected object in render order.
func (s *Scene) Selection() []Object {
	out := make([]Object, 0, len(s.active))
	for _, o := range s.objects {
		if slices.Contains(s.active, o) {
			out = append(out, o)
		}
	}
	return out
}

// IsAggregate reports whether more than one object is selected.
func (s *Scene) IsAggregate() bool { return len(s.active) > 1 }

// IsSelected reports whether o is part of the selection.
func (s *Scene) IsSelected(o Object) bool { return slices.Contains(s.active, o) }

// SetActive replaces the selection. Objects that are not selectable or not
// in the scene are ignored.
func (s *Scene) SetActive(objs ...Object) {
	s.active = nil
	for _, o := range objs {
		if o == nil || !o.Base().Selectable || s.IndexOf(o) < 0 || slices.Contains(s.active, o) {
			continue
		}
		s.active = append(s.active, o)
	}
}

// ToggleActive adds o to the selection, or removes it when already selected.
func (s *Scene) ToggleActive(o Object) {
	if s.IsSelected(o) {
		s.active = slices.DeleteFunc(s.active, func(a Object) bool { return a == o })
		return
	}
	s.SetActive(append(slices.Clone(s.active), o)...)
}

// DiscardActive clears the selection.
func (s *Scene) DiscardActive() {
	s.active = nil
}

// HitTest returns the front-most selectable object whose bounds contain p.
func (s *Scene) HitTest(p Point) Object {
	for i := len(s.objects) - 1; i >= 0; i-- {
		o := s.objects[i]
		if o.Base().Selectable && o.Bounds().Contains(p) {
			return o
		}
	}
	return nil
}

// ObjectsIn returns the selectable objects lying entirely inside b.
func (s *Scene) ObjectsIn(b Bounds) []Object {
	var out []Object
	for _, o := range s.objects {
		if o.Base().Selectable && b.Encloses(o.Bounds()) {
			out = append(out, o)
		}
	}
	return out
}

func (s *Scene) Background() Color { return s.background }

func (s *Scene) SetBackground(c Color) { s.background = c }
