// Package phc implements the PHC string format used to store Argon2
// password digests.
//
// # Format
//
// A digest is a dollar-delimited string carrying the algorithm identifier,
// the format version, the cost parameters, and the raw salt and hash bytes:
//
//	$argon2id$v=19$m=65536,t=3,p=4$<base64-salt>$<base64-hash>
//
// Byte fields use the standard base64 alphabet without padding (RFC 4648 §5
// without "="), the convention shared by the Argon2 reference implementation
// and its Python and Node.js bindings. An optional associated-data field may
// follow the cost parameters inside the parameter block:
//
//	$argon2id$v=19$m=65536,t=3,p=4,data=<base64>$<salt>$<hash>
//
// Digests issued before the v=19 revision of the format omit the version
// segment entirely; [Decode] accepts that five-segment form and reports
// [LegacyVersion] for it.
//
// # Strictness
//
// [Decode] is structural: segment count, parameter-block shape, and base64
// and integer encodings must all be exact or it fails with [ErrMalformed].
// The algorithm identifier is deliberately NOT checked against a list of
// known algorithms — a well-formed digest produced by an unknown scheme
// parses fine, and deciding what to do with it is the caller's concern.
// This keeps "cannot read this string" and "do not know this algorithm"
// as two distinct conditions.
package phc
