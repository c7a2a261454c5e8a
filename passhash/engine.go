package passhash

import (
	"fmt"
	"math"

	"golang.org/x/crypto/argon2"
)

// Params is the full parameter set handed to an [Engine] for a single
// derivation. On the hashing path it is a validated copy of the Hasher's
// options; on the verification path it is rebuilt from the decoded digest.
type Params struct {
	Variant        Variant
	Version        uint32
	Memory         uint32
	Time           uint32
	Parallelism    uint32
	HashLength     uint32
	AssociatedData []byte
}

// Engine is the key-derivation primitive behind a [Hasher].
//
// Compute must be pure and deterministic: the same password, salt, and
// parameters always yield the same bytes, with no side effects and no
// shared state, so implementations are trivially safe for concurrent use.
// It is the one long-running, memory-bound call in this package; callers
// that need cancellation or timeouts wrap the calling goroutine, since an
// in-flight derivation cannot be interrupted midway.
//
// An Engine reports a plain error for anything it cannot compute — an
// unsatisfiable allocation, an unsupported parameter combination. The
// Hasher surfaces it wrapped in [ErrEngine], uninterpreted.
type Engine interface {
	Compute(password, salt []byte, p Params) ([]byte, error)
}

// argon2Engine is the bundled [Engine], backed by golang.org/x/crypto/argon2.
//
// The upstream package implements Argon2i and Argon2id at version 19 with
// a uint8 lane count and no associated-data input. Those are limits of the
// primitive, not of the digest format: digests outside this envelope still
// parse, verify against a capable engine, and feed the rehash advisor.
type argon2Engine struct{}

func (argon2Engine) Compute(password, salt []byte, p Params) ([]byte, error) {
	if p.Version != argon2.Version {
		return nil, fmt.Errorf("argon2: version %d not supported (engine implements %d)",
			p.Version, argon2.Version)
	}
	if p.Parallelism > math.MaxUint8 {
		return nil, fmt.Errorf("argon2: parallelism %d not supported (engine limit %d)",
			p.Parallelism, math.MaxUint8)
	}
	if p.AssociatedData != nil {
		return nil, fmt.Errorf("argon2: associated data not supported by this engine")
	}
	// The upstream implementation panics on these; digests arrive here
	// unvalidated, so turn them into errors instead.
	if p.Time < 1 || p.Parallelism < 1 {
		return nil, fmt.Errorf("argon2: time cost and parallelism must be at least 1")
	}

	switch p.Variant {
	case VariantI:
		return argon2.Key(password, salt, p.Time, p.Memory, uint8(p.Parallelism), p.HashLength), nil
	case VariantID:
		return argon2.IDKey(password, salt, p.Time, p.Memory, uint8(p.Parallelism), p.HashLength), nil
	default:
		return nil, fmt.Errorf("argon2: variant %q not supported by this engine", p.Variant)
	}
}
