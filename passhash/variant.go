package passhash

// Variant identifies one of the three Argon2 algorithm flavours.
// Using a named string type prevents accidental confusion with plain
// strings; the value doubles as the algorithm identifier written into
// digest strings.
type Variant string

const (
	// VariantD selects Argon2d: data-dependent memory access. Strongest
	// against time-memory trade-off attacks, but its access pattern leaks
	// through side channels, so it is unsuitable for interactive password
	// hashing on shared hardware.
	VariantD Variant = "argon2d"

	// VariantI selects Argon2i: data-independent memory access, resistant
	// to side-channel attacks.
	VariantI Variant = "argon2i"

	// VariantID selects Argon2id, the hybrid of the other two and the
	// recommended choice for password hashing per RFC 9106.
	VariantID Variant = "argon2id"
)

// LookupVariant maps an algorithm identifier from a digest string to its
// [Variant]. The second return value is false when the identifier does not
// name an Argon2 variant — a well-formed digest from a foreign scheme, not
// an error.
func LookupVariant(id string) (Variant, bool) {
	switch Variant(id) {
	case VariantD, VariantI, VariantID:
		return Variant(id), true
	default:
		return "", false
	}
}
