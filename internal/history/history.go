// Package history implements linear, snapshot based undo/redo.
package history

import (
	"fmt"

	"SketchBoard/internal/logging"
)

// Snapshotter produces and restores complete serialized states.
type Snapshotter interface {
	Snapshot() ([]byte, error)
	Restore(data []byte) error
}

// Manager keeps an undo stack whose top is the current state and a redo
// stack of states undone since the last recorded mutation.
type Manager struct {
	target    Snapshotter
	undo      [][]byte
	redo      [][]byte
	limit     int
	restoring bool
}

// New returns a manager for target. A limit > 0 caps the undo stack depth;
// the oldest entries are dropped first. Nothing is recorded until Record
// is called.
func New(target Snapshotter, limit int) *Manager {
	return &Manager{target: target, limit: limit}
}

// Record pushes the current state and clears the redo stack. Calls made
// while a snapshot is being restored are ignored.
func (m *Manager) Record() error {
	if m.restoring {
		return nil
	}
	snap, err := m.target.Snapshot()
	if err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	m.undo = append(m.undo, snap)
	m.redo = nil
	if m.limit > 0 && len(m.undo) > m.limit {
		m.undo = m.undo[len(m.undo)-m.limit:]
	}
	logging.Logger().Debug("history recorded", "depth", len(m.undo), "bytes", len(snap))
	return nil
}

// Undo restores the previous state. It reports false without doing
// anything when fewer than two states are recorded.
func (m *Manager) Undo() (bool, error) {
	if len(m.undo) < 2 {
		return false, nil
	}
	n := len(m.undo)
	if err := m.restore(m.undo[n-2]); err != nil {
		return false, fmt.Errorf("undo: %w", err)
	}
	m.redo = append(m.redo, m.undo[n-1])
	m.undo = m.undo[:n-1]
	return true, nil
}

// Redo re-applies the most recently undone state. It reports false when
// there is nothing to redo.
func (m *Manager) Redo() (bool, error) {
	if len(m.redo) == 0 {
		return false, nil
	}
	n := len(m.redo)
	snap := m.redo[n-1]
	if err := m.restore(snap); err != nil {
		return false, fmt.Errorf("redo: %w", err)
	}
	m.redo = m.redo[:n-1]
	m.undo = append(m.undo, snap)
	return true, nil
}

func (m *Manager) restore(snap []byte) error {
	m.restoring = true
	defer func() { m.restoring = false }()
	return m.target.Restore(snap)
}

// Reset drops every entry, e.g. when the owning board is unmounted.
func (m *Manager) Reset() {
	m.undo = nil
	m.redo = nil
}

// SetLimit changes the depth cap and trims the undo stack if needed.
func (m *Manager) SetLimit(limit int) {
	m.limit = limit
	if limit > 0 && len(m.undo) > limit {
		m.undo = m.undo[len(m.undo)-limit:]
	}
}

func (m *Manager) CanUndo() bool { return len(m.undo) >= 2 }

func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// Restoring reports whether a snapshot is being applied right now.
func (m *Manager) Restoring() bool { return m.restoring }

// Depth returns the sizes of the undo and redo stacks.
func (m *Manager) Depth() (undo, redo int) { return len(m.undo), len(m.redo) }
