package passhash

import (
	"fmt"
	"math"

	"golang.org/x/crypto/argon2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Defaults
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultVariant is Argon2id, the RFC 9106 recommendation.
	DefaultVariant = VariantID

	// DefaultVersion is the current Argon2 format version (0x13 = 19).
	DefaultVersion uint32 = argon2.Version

	// DefaultMemory is the default memory cost in KiB (64 MiB).
	// OWASP ASVS Level 2 requires ≥ 19 MiB; 64 MiB is the standard
	// production recommendation for Argon2id.
	DefaultMemory uint32 = 64 * 1024

	// DefaultTime is the default number of passes over memory.
	DefaultTime uint32 = 3

	// DefaultParallelism is the default number of lanes.
	DefaultParallelism uint32 = 4

	// DefaultHashLength is the default derived hash length in bytes.
	DefaultHashLength uint32 = 32

	// DefaultSaltLength is the default random salt length in bytes.
	DefaultSaltLength uint32 = 16
)

// Parameter bounds enforced by [NewHasher]. These match the limits table
// published by the Argon2 reference implementation.
const (
	minHashLength  uint32 = 4
	minMemory      uint32 = 1 << 10
	minTime        uint32 = 2
	minParallelism uint32 = 1
	maxParallelism uint32 = 1<<24 - 1
)

// Options configures a [Hasher].
//
// The zero value of every field means "use the default", so callers only
// name the parameters they want to change:
//
//	h, err := passhash.NewHasher(passhash.Options{Memory: 19 * 1024, Time: 2})
//
// All cost parameters are encoded into the output digest, so changing them
// only affects newly produced digests; existing digests remain verifiable
// because verification reads its parameters back out of the digest itself.
type Options struct {
	// Variant selects the Argon2 flavour. Default: [DefaultVariant].
	Variant Variant

	// Version is the Argon2 format version to request from the engine.
	// Default: [DefaultVersion] (19). Older versions round-trip through
	// digests but the bundled engine only computes the current one.
	Version uint32

	// Memory is the memory cost in KiB.
	// Minimum: 1024. Default: [DefaultMemory] (64 MiB).
	Memory uint32

	// Time is the number of passes over memory.
	// Minimum: 2. Default: [DefaultTime] (3).
	Time uint32

	// Parallelism is the number of independent lanes.
	// Range: 1 to 2²⁴−1. Default: [DefaultParallelism] (4).
	Parallelism uint32

	// HashLength is the length of the derived hash in bytes.
	// Minimum: 4. Default: [DefaultHashLength] (32).
	HashLength uint32

	// SaltLength is the length of the generated random salt in bytes.
	// Ignored by the ...WithSalt methods. Default: [DefaultSaltLength] (16).
	SaltLength uint32

	// AssociatedData is optional context mixed into the computation and
	// carried (base64-encoded, not secret) inside the digest. nil means
	// none; the digest then omits the data field entirely.
	AssociatedData []byte
}

// withDefaults returns o with every zero-valued field replaced by the
// package default. The merged result is what a Hasher actually runs with.
func (o Options) withDefaults() Options {
	if o.Variant == "" {
		o.Variant = DefaultVariant
	}
	if o.Version == 0 {
		o.Version = DefaultVersion
	}
	if o.Memory == 0 {
		o.Memory = DefaultMemory
	}
	if o.Time == 0 {
		o.Time = DefaultTime
	}
	if o.Parallelism == 0 {
		o.Parallelism = DefaultParallelism
	}
	if o.HashLength == 0 {
		o.HashLength = DefaultHashLength
	}
	if o.SaltLength == 0 {
		o.SaltLength = DefaultSaltLength
	}
	return o
}

// validate checks every merged parameter against its legal bound,
// reporting the first violation. It runs once, at [NewHasher] time; a
// Hasher is immutable afterwards, so every hash it computes uses a
// validated parameter set. Stored digests are never re-validated on
// verification — they are trusted to reflect parameters that were legal
// when the digest was created.
func (o Options) validate() error {
	if _, ok := LookupVariant(string(o.Variant)); !ok {
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidOption, o.Variant)
	}
	if err := checkBound("hashLength", o.HashLength, minHashLength, math.MaxUint32); err != nil {
		return err
	}
	if err := checkBound("memoryCost", o.Memory, minMemory, math.MaxUint32); err != nil {
		return err
	}
	if err := checkBound("timeCost", o.Time, minTime, math.MaxUint32); err != nil {
		return err
	}
	return checkBound("parallelism", o.Parallelism, minParallelism, maxParallelism)
}

func checkBound(field string, v, min, max uint32) error {
	if v < min || v > max {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d",
			ErrInvalidOption, field, min, max, v)
	}
	return nil
}
