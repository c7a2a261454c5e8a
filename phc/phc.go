package phc

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// LegacyVersion is the version reported by [Decode] for digests that
// predate the versioned format and carry no "v=" segment.
const LegacyVersion uint32 = 0x10

// b64 is the encoding used for every byte field in a digest: standard
// alphabet, no padding.
var b64 = base64.RawStdEncoding

// Digest is the structured form of a PHC digest string.
//
// Salt and Hash are opaque byte sequences carried losslessly through the
// text encoding. Data is the optional associated-data field; nil means the
// field was absent from the parameter block, which is structurally distinct
// from present-but-empty. ID is the algorithm identifier exactly as it
// appeared in the string — [Decode] does not restrict it to known
// algorithms.
//
// A Digest is a plain value; it is created once and never mutated.
type Digest struct {
	ID          string
	Version     uint32
	Memory      uint32
	Time        uint32
	Parallelism uint32
	Data        []byte
	Salt        []byte
	Hash        []byte
}

// String returns the canonical encoded form of d. Equivalent to [Encode].
func (d *Digest) String() string { return Encode(d) }

// ──────────────────────────────────────────────────────────────────────────────
// Encoding
// ──────────────────────────────────────────────────────────────────────────────

// Encode serialises d into its canonical string form:
//
//	$<id>$v=<version>$m=<memory>,t=<time>,p=<parallelism>[,data=<base64>]$<salt>$<hash>
//
// The data field is emitted only when d.Data is non-nil. Encode is
// deterministic: the same Digest always yields the same string, so
// Decode(Encode(d)) followed by Encode round-trips byte-for-byte.
func Encode(d *Digest) string {
	var sb strings.Builder
	sb.WriteByte('$')
	sb.WriteString(d.ID)
	sb.WriteString("$v=")
	sb.WriteString(strconv.FormatUint(uint64(d.Version), 10))
	sb.WriteString("$m=")
	sb.WriteString(strconv.FormatUint(uint64(d.Memory), 10))
	sb.WriteString(",t=")
	sb.WriteString(strconv.FormatUint(uint64(d.Time), 10))
	sb.WriteString(",p=")
	sb.WriteString(strconv.FormatUint(uint64(d.Parallelism), 10))
	if d.Data != nil {
		sb.WriteString(",data=")
		sb.WriteString(b64.EncodeToString(d.Data))
	}
	sb.WriteByte('$')
	sb.WriteString(b64.EncodeToString(d.Salt))
	sb.WriteByte('$')
	sb.WriteString(b64.EncodeToString(d.Hash))
	return sb.String()
}

// ──────────────────────────────────────────────────────────────────────────────
// Decoding
// ──────────────────────────────────────────────────────────────────────────────

// Decode parses a PHC digest string into its structured form.
//
// Two shapes are accepted (the leading "$" produces an empty first
// element when splitting):
//
//	$<id>$v=<version>$m=..,t=..,p=..[,data=..]$<salt>$<hash>   (modern, 6 segments)
//	$<id>$m=..,t=..,p=..[,data=..]$<salt>$<hash>               (legacy, 5 segments)
//
// Legacy digests decode with Version set to [LegacyVersion]. Anything
// else — wrong segment count, empty identifier, missing or out-of-order
// parameters, invalid base64 — fails with an error wrapping [ErrMalformed].
func Decode(s string) (*Digest, error) {
	parts := strings.Split(s, "$")
	if len(parts) < 2 || parts[0] != "" {
		return nil, fmt.Errorf("%w: missing leading %q", ErrMalformed, "$")
	}
	if parts[1] == "" {
		return nil, fmt.Errorf("%w: empty algorithm identifier", ErrMalformed)
	}

	d := &Digest{ID: parts[1]}

	var params, saltSeg, hashSeg string
	switch len(parts) {
	case 6:
		v, err := parseKV(parts[2], "v")
		if err != nil {
			return nil, fmt.Errorf("%w: version segment: %v", ErrMalformed, err)
		}
		d.Version = v
		params, saltSeg, hashSeg = parts[3], parts[4], parts[5]
	case 5:
		// Pre-versioned digest: no "v=" segment.
		d.Version = LegacyVersion
		params, saltSeg, hashSeg = parts[2], parts[3], parts[4]
	default:
		return nil, fmt.Errorf("%w: expected 4 or 5 segments, got %d", ErrMalformed, len(parts)-1)
	}

	if err := parseParamBlock(d, params); err != nil {
		return nil, err
	}

	var err error
	if d.Salt, err = b64.DecodeString(saltSeg); err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64: %v", ErrMalformed, err)
	}
	if d.Hash, err = b64.DecodeString(hashSeg); err != nil {
		return nil, fmt.Errorf("%w: invalid hash base64: %v", ErrMalformed, err)
	}
	return d, nil
}

// parseParamBlock fills d.Memory, d.Time, d.Parallelism and optionally
// d.Data from a "m=..,t=..,p=..[,data=..]" segment. The fields are
// positional: the canonical order is the only order accepted.
func parseParamBlock(d *Digest, s string) error {
	kvs := strings.Split(s, ",")
	if len(kvs) != 3 && len(kvs) != 4 {
		return fmt.Errorf("%w: parameter block %q: expected m,t,p with optional data", ErrMalformed, s)
	}

	var err error
	if d.Memory, err = parseKV(kvs[0], "m"); err != nil {
		return fmt.Errorf("%w: parameter block: %v", ErrMalformed, err)
	}
	if d.Time, err = parseKV(kvs[1], "t"); err != nil {
		return fmt.Errorf("%w: parameter block: %v", ErrMalformed, err)
	}
	if d.Parallelism, err = parseKV(kvs[2], "p"); err != nil {
		return fmt.Errorf("%w: parameter block: %v", ErrMalformed, err)
	}

	if len(kvs) == 4 {
		raw, ok := strings.CutPrefix(kvs[3], "data=")
		if !ok {
			return fmt.Errorf("%w: parameter block: expected %q prefix in %q", ErrMalformed, "data=", kvs[3])
		}
		if d.Data, err = b64.DecodeString(raw); err != nil {
			return fmt.Errorf("%w: invalid data base64: %v", ErrMalformed, err)
		}
	}
	return nil
}

// parseKV parses a "key=value" pair with a required key and a uint32 value.
func parseKV(s, key string) (uint32, error) {
	raw, ok := strings.CutPrefix(s, key+"=")
	if !ok {
		return 0, fmt.Errorf("expected %q prefix in %q", key+"=", s)
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("non-numeric value in %q: %v", s, err)
	}
	return uint32(v), nil
}
