package passhash

import (
	"crypto/subtle"
	"fmt"

	"github.com/hasbyte1/go-password-utils/phc"
)

// Verify reports whether password matches the given encoded digest.
//
// Every parameter of the recomputation comes from the digest itself —
// memory, time, parallelism, version, and the hash length (taken from the
// decoded hash's actual byte length) — never from the Hasher's options.
// A credential therefore verifies under exactly the parameters it was
// created with, regardless of how the current policy has moved since. The
// one exception is associated data, which the format may omit: when the
// digest carries no data field, the Hasher's own AssociatedData option is
// supplied to the engine in its place.
//
// Outcomes:
//   - (false, err wrapping [ErrInvalidDigest]) — the string is not a
//     structurally valid digest: "cannot verify", distinct from a wrong
//     password.
//   - (false, nil) — a well-formed digest from an unrecognised scheme, or
//     a recognised digest whose hash does not match. The two are
//     deliberately indistinguishable so the result cannot be used as a
//     format-vs-password oracle.
//   - (false, err wrapping [ErrEngine]) — the engine could not recompute
//     (allocation failure, or parameters outside the engine's envelope).
//   - (true, nil) — exact match, established with a fixed-time byte
//     comparison.
func (h *Hasher) Verify(digest string, password []byte) (bool, error) {
	d, err := phc.Decode(digest)
	if err != nil {
		return false, err
	}

	variant, ok := LookupVariant(d.ID)
	if !ok {
		return false, nil
	}

	data := d.Data
	if data == nil {
		data = h.opts.AssociatedData
	}

	key, err := h.engine.Compute(password, d.Salt, Params{
		Variant:        variant,
		Version:        d.Version,
		Memory:         d.Memory,
		Time:           d.Time,
		Parallelism:    d.Parallelism,
		HashLength:     uint32(len(d.Hash)),
		AssociatedData: data,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrEngine, err)
	}

	// Lengths are compared once up front; beyond that single check the
	// comparison runs in constant time.
	if len(key) != len(d.Hash) {
		return false, nil
	}
	return subtle.ConstantTimeCompare(key, d.Hash) == 1, nil
}
