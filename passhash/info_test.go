package passhash_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-password-utils/passhash"
)

func TestInfo(t *testing.T) {
	info, err := passhash.Info("$argon2id$v=19$m=65536,t=3,p=4$c29tZXNhbHQ$AQIDBA")
	if err != nil {
		t.Fatal(err)
	}
	want := passhash.HashInfo{
		Variant:     passhash.VariantID,
		Version:     19,
		Memory:      65536,
		Time:        3,
		Parallelism: 4,
		HashLength:  4,
	}
	if info != want {
		t.Errorf("Info = %+v, want %+v", info, want)
	}
}

func TestInfo_WithData(t *testing.T) {
	info, err := passhash.Info("$argon2id$v=19$m=65536,t=3,p=4,data=Y3R4$c29tZXNhbHQ$AQIDBA")
	if err != nil {
		t.Fatal(err)
	}
	if !info.HasData {
		t.Error("HasData must report the data field")
	}
}

func TestInfo_LegacyVersion(t *testing.T) {
	info, err := passhash.Info("$argon2i$m=4096,t=3,p=1$c29tZXNhbHQ$AQIDBA")
	if err != nil {
		t.Fatal(err)
	}
	if info.Version != 0x10 {
		t.Errorf("Version = %d, want legacy 16", info.Version)
	}
	if info.Variant != passhash.VariantI {
		t.Errorf("Variant = %q, want argon2i", info.Variant)
	}
}

func TestInfo_UnknownVariant(t *testing.T) {
	_, err := passhash.Info("$scrypt$v=19$m=16,t=2,p=1$c29tZXNhbHQ$AQIDBA")
	if !errors.Is(err, passhash.ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestInfo_Malformed(t *testing.T) {
	_, err := passhash.Info("nope")
	if !errors.Is(err, passhash.ErrInvalidDigest) {
		t.Errorf("expected ErrInvalidDigest, got %v", err)
	}
}
