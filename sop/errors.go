package sop

import "errors"

// errISOPOverflow is the underlying cause wrapped by errs.ResourceExhausted
// whenever ISOP extraction exceeds MaxCubes (Factor never raises it), matching spec
// §7's resource-exhaustion error class ("ISOP too large").
var errISOPOverflow = errors.New("sop: isop cube count exceeds limit")
