package passhash_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-password-utils/passhash"
)

// TestPackageLevel_RoundTrip exercises the convenience functions at the
// real production defaults (64 MiB, t=3), so it is the slowest test in
// the package.
func TestPackageLevel_RoundTrip(t *testing.T) {
	digest, err := passhash.Hash([]byte("my-secret-password"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(digest, "$argon2id$v=19$m=65536,t=3,p=4$") {
		t.Errorf("default digest shape: %q", digest)
	}

	ok, err := passhash.Verify(digest, []byte("my-secret-password"))
	if err != nil || !ok {
		t.Fatalf("Verify: ok=%v err=%v", ok, err)
	}
	ok, err = passhash.Verify(digest, []byte("not-the-password"))
	if err != nil || ok {
		t.Fatalf("wrong password: ok=%v err=%v", ok, err)
	}

	stale, err := passhash.NeedsRehash(digest)
	if err != nil || stale {
		t.Fatalf("fresh default digest flagged stale: stale=%v err=%v", stale, err)
	}
}

// TestPackageLevel_AgreesWithDefaultHasher pins the convenience functions
// to a default-constructed Hasher.
func TestPackageLevel_AgreesWithDefaultHasher(t *testing.T) {
	h, err := passhash.NewHasher(passhash.Options{})
	if err != nil {
		t.Fatal(err)
	}
	digest, err := passhash.Hash([]byte("pw"))
	if err != nil {
		t.Fatal(err)
	}
	ok, err := h.Verify(digest, []byte("pw"))
	if err != nil || !ok {
		t.Fatalf("explicit default hasher must verify package-level digests: ok=%v err=%v", ok, err)
	}
}
