package tlsf

import "errors"

// ErrInvalidRegion is returned when Init or AddArea is given a nil or
// empty region.
var ErrInvalidRegion = errors.New("tlsf: region is nil or empty")

// ErrRegionTooSmall is returned when a region is too small to hold the
// control structure plus a minimal usable area.
var ErrRegionTooSmall = errors.New("tlsf: region too small for pool header and minimum area")

// ErrMisaligned is returned when a region's base address is not
// aligned to the block boundary.
var ErrMisaligned = errors.New("tlsf: region base address is not block-aligned")

// ErrBlockNotFound is returned when Allocate cannot find or split a
// block large enough to satisfy the request.
var ErrBlockNotFound = errors.New("tlsf: failed to allocate block")
