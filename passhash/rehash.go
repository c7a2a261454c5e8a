package passhash

import "github.com/hasbyte1/go-password-utils/phc"

// NeedsRehash reports whether digest was produced with cost parameters
// that differ from the Hasher's current policy. Callers should re-hash
// the password on the next successful login when this returns true.
//
// Only the version, memory cost, and time cost participate in the
// decision: those are what make a stored credential cheaper to attack
// than current policy intends. Parallelism and hash length are tuning
// and storage choices, and a difference there is not a reason to churn
// every credential in the database.
//
// Digests that predate the versioned format decode with the legacy
// version sentinel and so always flag as stale against a current-version
// policy. NeedsRehash never invokes the engine; it is a pure comparison
// and costs only a parse.
func (h *Hasher) NeedsRehash(digest string) (bool, error) {
	d, err := phc.Decode(digest)
	if err != nil {
		return false, err
	}
	return d.Version != h.opts.Version ||
		d.Memory != h.opts.Memory ||
		d.Time != h.opts.Time, nil
}
