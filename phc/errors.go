package phc

import "errors"

// ErrMalformed is returned by [Decode] when a string does not conform to
// the structural shape of a PHC digest: wrong segment count, a missing or
// malformed parameter block, or invalid base64/integer encoding.
//
// Use [errors.Is] for comparisons:
//
//	_, err := phc.Decode(stored)
//	if errors.Is(err, phc.ErrMalformed) {
//	    // stored value is not a digest at all
//	}
var ErrMalformed = errors.New("phc: malformed digest string")
