// File: pkg/types/errors.go
package types

import "errors"

// Sentinel errors shared by the codec packages. Callers are expected to
// branch on these with errors.Is; both short input and a missing boot
// signature are recognized outcomes, not programming errors.
var (
	// ErrDataTooShort reports a decode source with fewer bytes than the
	// fixed size of the requested structure.
	ErrDataTooShort = errors.New("data too short")

	// ErrInvalidBootSignature reports a 512-byte sector whose trailing
	// marker is not 0x55 0xAA. The sector is simply not an MBR.
	ErrInvalidBootSignature = errors.New("invalid boot signature")

	// ErrCHSOutOfRange reports an attempt to serialize a CHS address whose
	// cylinder or sector does not fit the packed 3-byte layout. Values are
	// never clamped: silent clamping would corrupt on-disk data.
	ErrCHSOutOfRange = errors.New("CHS address out of range")
)
