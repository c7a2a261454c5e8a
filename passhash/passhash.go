package passhash

// std is the package-level Hasher behind [Hash], [Verify], and
// [NeedsRehash]: default options, bundled engine. Construction cannot
// fail — the default tables validate by definition.
var std = func() *Hasher {
	h, err := NewHasher(Options{})
	if err != nil {
		panic(err)
	}
	return h
}()

// Hash derives a digest for password using the package defaults
// (Argon2id, m=65536 KiB, t=3, p=4, 32-byte hash, 16-byte salt).
// For non-default parameters, construct a [Hasher].
func Hash(password []byte) (string, error) {
	return std.Hash(password)
}

// Verify reports whether password matches digest, using the package
// defaults for everything the digest does not dictate. Since a digest
// dictates all of its own parameters, Verify here is equivalent to
// [Hasher.Verify] on any Hasher without associated data configured.
func Verify(digest string, password []byte) (bool, error) {
	return std.Verify(digest, password)
}

// NeedsRehash reports whether digest is stale relative to the package
// default cost policy. See [Hasher.NeedsRehash].
func NeedsRehash(digest string) (bool, error) {
	return std.NeedsRehash(digest)
}
