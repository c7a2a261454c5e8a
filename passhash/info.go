package passhash

import (
	"fmt"

	"github.com/hasbyte1/go-password-utils/phc"
)

// HashInfo carries the parameters extracted from an encoded digest.
// Useful for auditing, migration tooling, or logging — none of the fields
// are secret.
type HashInfo struct {
	Variant     Variant
	Version     uint32
	Memory      uint32
	Time        uint32
	Parallelism uint32
	HashLength  uint32

	// HasData reports whether the digest carries an associated-data field.
	HasData bool
}

// Info extracts metadata from an encoded digest without verifying it.
//
// Unlike [Hasher.Verify], an unrecognised algorithm identifier is an
// error here ([ErrUnknownVariant]): Info is a diagnostic surface, and a
// foreign digest has no parameters this package can name.
func Info(digest string) (HashInfo, error) {
	d, err := phc.Decode(digest)
	if err != nil {
		return HashInfo{}, err
	}
	variant, ok := LookupVariant(d.ID)
	if !ok {
		return HashInfo{}, fmt.Errorf("%w: %q", ErrUnknownVariant, d.ID)
	}
	return HashInfo{
		Variant:     variant,
		Version:     d.Version,
		Memory:      d.Memory,
		Time:        d.Time,
		Parallelism: d.Parallelism,
		HashLength:  uint32(len(d.Hash)),
		HasData:     d.Data != nil,
	}, nil
}
