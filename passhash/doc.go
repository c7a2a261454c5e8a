// Package passhash provides Argon2 password-credential hashing and
// verification over the self-describing PHC digest format.
//
// # Architecture
//
// The package is a thin orchestration layer over a key-derivation
// primitive. A [Hasher] merges caller options over frozen defaults,
// validates them once, and then for every call generates a salt, invokes
// its [Engine], and encodes the result through the
// [github.com/hasbyte1/go-password-utils/phc] codec. Verification runs
// the pipeline in reverse: parse the digest, recompute with the
// parameters embedded in it, and compare in constant time.
//
// The memory-hard computation itself is delegated entirely to the
// [Engine]. The bundled engine is golang.org/x/crypto/argon2; anything it
// cannot compute (Argon2d, associated data, pre-19 versions) can be
// served by plugging a different engine into [NewHasherWithEngine].
//
// # Quick start
//
//	digest, err := passhash.Hash([]byte("my-secret-password"))
//	if err != nil { log.Fatal(err) }
//
//	ok, err := passhash.Verify(digest, []byte("my-secret-password"))
//	// ok == true
//
// # Parameter upgrades
//
// Call [NeedsRehash] (or [Hasher.NeedsRehash]) on every successful login.
// It returns true when the stored digest's version, memory cost, or time
// cost differ from current policy; re-hash and persist immediately:
//
//	ok, _ := h.Verify(stored, password)
//	if ok {
//	    if stale, _ := h.NeedsRehash(stored); stale {
//	        fresh, _ := h.Hash(password)
//	        persist(userID, fresh)
//	    }
//	}
//
// # Security defaults
//
// Argon2id with m=64 MiB, t=3, p=4 and a 32-byte hash — at or above the
// RFC 9106 and OWASP recommendations. All parameters are self-contained
// in the digest string, so no external configuration is needed to verify
// a previously produced digest.
//
// # Error policy
//
// A structurally malformed digest is an error ([ErrInvalidDigest]): it
// means "cannot verify", which callers must not conflate with a wrong
// password. A well-formed digest from an unknown scheme and a wrong
// password both verify to plain false, deliberately indistinguishable.
// Parameter bounds are enforced when a Hasher is built
// ([ErrInvalidOption]); engine failures surface wrapped in [ErrEngine].
package passhash
