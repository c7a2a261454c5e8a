package passhash

import (
	"errors"

	"github.com/hasbyte1/go-password-utils/phc"
)

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := passhash.Hash(password)
//	if errors.Is(err, passhash.ErrInvalidOption) {
//	    // a hashing parameter is outside its legal bound
//	}
var (
	// ErrInvalidOption is returned when a hashing parameter falls outside
	// the allowed range listed in the package documentation (e.g., a memory
	// cost below 1024 KiB). It is raised before any hash is computed.
	ErrInvalidOption = errors.New("passhash: invalid hashing parameter")

	// ErrInvalidDigest is returned when a digest string cannot be parsed.
	// It is the same error value as [phc.ErrMalformed], so errors.Is
	// matches whichever sentinel the caller imports.
	//
	// A parse failure means "cannot verify", which is distinct from a
	// wrong password: [Hasher.Verify] reports the latter as (false, nil).
	ErrInvalidDigest = phc.ErrMalformed

	// ErrEngine wraps a failure reported by the underlying [Engine], such
	// as an unsatisfiable memory allocation or a parameter combination the
	// engine does not implement. The engine's message is carried verbatim;
	// no retry is attempted.
	ErrEngine = errors.New("passhash: hash engine failure")

	// ErrUnknownVariant is returned by [Info] when a digest is well formed
	// but names an algorithm this package does not recognise. Verify never
	// returns it; see [Hasher.Verify] for why.
	ErrUnknownVariant = errors.New("passhash: unrecognised algorithm variant")

	// ErrNilEngine is returned by [NewHasherWithEngine] when the supplied
	// engine is nil.
	ErrNilEngine = errors.New("passhash: engine must not be nil")
)
