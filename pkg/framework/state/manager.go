// Package state persists parameter values for a patch processor.
package state

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rnbogo/rnbogo/pkg/framework/param"
)

const magic = "RNBOGO"

// Manager handles saving and loading a processor's parameter state. The
// format is a magic header, a version, and id/value pairs; unknown IDs on
// load are ignored for forward compatibility.
type Manager struct {
	version  uint32
	registry *param.Registry
}

// NewManager creates a state manager over a parameter registry.
func NewManager(registry *param.Registry) *Manager {
	return &Manager{
		version:  1,
		registry: registry,
	}
}

// Save writes the current parameter values.
func (m *Manager) Save(w io.Writer) error {
	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, m.version); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, m.registry.Count()); err != nil {
		return err
	}
	for _, p := range m.registry.All() {
		if err := binary.Write(w, binary.LittleEndian, p.ID); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, p.GetValue()); err != nil {
			return err
		}
	}
	return nil
}

// Load reads parameter values saved by Save.
func (m *Manager) Load(r io.Reader) error {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return err
	}
	if string(header) != magic {
		return fmt.Errorf("invalid state format")
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return err
	}
	if version > m.version {
		return fmt.Errorf("state version %d is newer than supported version %d", version, m.version)
	}

	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return err
	}
	for i := int32(0); i < count; i++ {
		var id uint32
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return err
		}
		var value float64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		if p := m.registry.Get(id); p != nil {
			p.SetValue(value)
		}
	}
	return nil
}
