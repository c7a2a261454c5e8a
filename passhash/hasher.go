package passhash

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/hasbyte1/go-password-utils/phc"
)

// Hasher derives password digests with a fixed, validated parameter set.
//
// A Hasher is immutable after construction and safe for concurrent use;
// each call is an independent unit of work sharing nothing but the frozen
// options. To run several derivations without blocking a caller, hash in
// separate goroutines — the engine call is CPU- and memory-bound and is
// the only operation here that takes meaningful time.
type Hasher struct {
	opts   Options
	engine Engine
}

// NewHasher constructs a Hasher backed by the bundled Argon2 engine.
// Zero-valued fields of opts take the package defaults; the merged
// parameter set is then validated, so an out-of-range value fails here,
// before any password is ever hashed:
//
//	h, err := passhash.NewHasher(passhash.Options{})        // all defaults
//	h, err := passhash.NewHasher(passhash.Options{Time: 4}) // one override
func NewHasher(opts Options) (*Hasher, error) {
	return NewHasherWithEngine(opts, argon2Engine{})
}

// NewHasherWithEngine constructs a Hasher backed by a caller-supplied
// [Engine]. Use this to plug in a primitive with capabilities the bundled
// engine lacks (Argon2d, associated data, legacy versions), or a fake for
// deterministic tests.
func NewHasherWithEngine(opts Options, e Engine) (*Hasher, error) {
	if e == nil {
		return nil, ErrNilEngine
	}
	merged := opts.withDefaults()
	if err := merged.validate(); err != nil {
		return nil, err
	}
	return &Hasher{opts: merged, engine: e}, nil
}

// Options returns the merged parameter set this Hasher runs with.
func (h *Hasher) Options() Options { return h.opts }

// Hash derives a digest for password and returns it in encoded form:
//
//	$argon2id$v=19$m=65536,t=3,p=4$<base64-salt>$<base64-hash>
//
// A fresh random salt of the configured length is generated for each
// call, so hashing the same password twice produces different digests.
func (h *Hasher) Hash(password []byte) (string, error) {
	salt, err := randomSalt(h.opts.SaltLength)
	if err != nil {
		return "", err
	}
	return h.HashWithSalt(password, salt)
}

// HashWithSalt is [Hasher.Hash] with a caller-supplied salt, bypassing
// salt generation entirely. The salt is used as given — its length is not
// checked against the configured SaltLength. Intended for deterministic
// tests and for interoperating with externally sourced salts; everything
// else should use Hash.
func (h *Hasher) HashWithSalt(password, salt []byte) (string, error) {
	key, err := h.compute(password, salt)
	if err != nil {
		return "", err
	}
	d := &phc.Digest{
		ID:          string(h.opts.Variant),
		Version:     h.opts.Version,
		Memory:      h.opts.Memory,
		Time:        h.opts.Time,
		Parallelism: h.opts.Parallelism,
		Data:        h.opts.AssociatedData,
		Salt:        salt,
		Hash:        key,
	}
	return phc.Encode(d), nil
}

// HashRaw derives a hash for password and returns the engine output
// directly, skipping digest encoding. The caller becomes responsible for
// retaining the salt and parameters; [Hasher.Verify] cannot check a raw
// hash. A fresh random salt is generated and discarded with the other
// parameters, so HashRaw is only useful where the caller fixes the salt
// out of band — see [Hasher.HashRawWithSalt].
func (h *Hasher) HashRaw(password []byte) ([]byte, error) {
	salt, err := randomSalt(h.opts.SaltLength)
	if err != nil {
		return nil, err
	}
	return h.compute(password, salt)
}

// HashRawWithSalt is [Hasher.HashRaw] with a caller-supplied salt.
func (h *Hasher) HashRawWithSalt(password, salt []byte) ([]byte, error) {
	return h.compute(password, salt)
}

// compute invokes the engine with the Hasher's own parameter set.
func (h *Hasher) compute(password, salt []byte) ([]byte, error) {
	key, err := h.engine.Compute(password, salt, Params{
		Variant:        h.opts.Variant,
		Version:        h.opts.Version,
		Memory:         h.opts.Memory,
		Time:           h.opts.Time,
		Parallelism:    h.opts.Parallelism,
		HashLength:     h.opts.HashLength,
		AssociatedData: h.opts.AssociatedData,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngine, err)
	}
	return key, nil
}

// randomSalt returns n cryptographically random bytes. It may block
// briefly while the entropy source warms up; that is a suspension, not a
// failure mode.
func randomSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("passhash: failed to generate salt: %w", err)
	}
	return b, nil
}
