package passhash_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-password-utils/passhash"
)

func TestNeedsRehash_SamePolicy(t *testing.T) {
	h := newTestHasher(t)
	digest, _ := h.Hash([]byte("pw"))
	stale, err := h.NeedsRehash(digest)
	if err != nil || stale {
		t.Errorf("same policy: stale=%v err=%v", stale, err)
	}
}

func TestNeedsRehash_CostParameters(t *testing.T) {
	h := newTestHasher(t)
	digest, _ := h.Hash([]byte("pw"))

	tests := []struct {
		name   string
		mutate func(*passhash.Options)
		want   bool
	}{
		{"memory raised", func(o *passhash.Options) { o.Memory *= 2 }, true},
		{"time raised", func(o *passhash.Options) { o.Time++ }, true},
		{"parallelism changed", func(o *passhash.Options) { o.Parallelism = 2 }, false},
		{"hash length changed", func(o *passhash.Options) { o.HashLength = 32 }, false},
		{"salt length changed", func(o *passhash.Options) { o.SaltLength = 32 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := fastOpts()
			tt.mutate(&opts)
			policy, err := passhash.NewHasher(opts)
			if err != nil {
				t.Fatal(err)
			}
			stale, err := policy.NeedsRehash(digest)
			if err != nil {
				t.Fatal(err)
			}
			if stale != tt.want {
				t.Errorf("stale = %v, want %v", stale, tt.want)
			}
		})
	}
}

func TestNeedsRehash_VersionDrift(t *testing.T) {
	h := newTestHasher(t)

	// Explicit old version.
	stale, err := h.NeedsRehash("$argon2id$v=16$m=1024,t=2,p=1$c29tZXNhbHQ$AQIDBA")
	if err != nil {
		t.Fatal(err)
	}
	if !stale {
		t.Error("a v=16 digest must flag as stale against a v=19 policy")
	}

	// Pre-versioned digest: decodes with the legacy sentinel, same outcome.
	stale, err = h.NeedsRehash("$argon2id$m=1024,t=2,p=1$c29tZXNhbHQ$AQIDBA")
	if err != nil {
		t.Fatal(err)
	}
	if !stale {
		t.Error("a pre-versioned digest must flag as stale against a v=19 policy")
	}
}

func TestNeedsRehash_MalformedDigest(t *testing.T) {
	h := newTestHasher(t)
	_, err := h.NeedsRehash("garbage")
	if !errors.Is(err, passhash.ErrInvalidDigest) {
		t.Errorf("expected ErrInvalidDigest, got %v", err)
	}
}
