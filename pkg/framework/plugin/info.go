package plugin

import (
	"github.com/google/uuid"
)

// Info contains plugin metadata.
type Info struct {
	ID       string // unique plugin identifier (e.g. "com.example.mypatch")
	Name     string // display name
	Version  string // semantic version
	Vendor   string // company/developer name
	Category string // plugin category (e.g. "Fx", "Instrument")
}

// rnbogoNamespace scopes UID generation so the same ID string always maps to
// the same UID without colliding with other vendors' UUID spaces.
var rnbogoNamespace = uuid.MustParse("7b0c5a34-9f1d-4a6e-8b2f-3d9e61c0a5f2")

// UID derives the 16-byte plugin class ID deterministically from the string
// ID using a name-based UUID.
func (i Info) UID() [16]byte {
	return [16]byte(uuid.NewSHA1(rnbogoNamespace, []byte(i.ID)))
}
