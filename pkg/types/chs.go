// File: pkg/types/chs.go
package types

import "fmt"

// CHSAddressSize is the on-disk size of a packed CHS address, in bytes.
const CHSAddressSize = 3

// Packed CHS layout limits. The cylinder occupies 10 bits split across two
// bytes, the sector 6 bits, the head a full byte.
const (
	MaxCylinder = 1023
	MaxSector   = 63
)

// CHSAddress is a legacy cylinder/head/sector disk address. The MBR format
// still carries these fields even though LBA addressing superseded them;
// they are informational and frequently disagree with the LBA fields on
// real disks.
type CHSAddress struct {
	Cylinder uint16 // 0..1023
	Head     uint8  // 0..255
	Sector   uint8  // 1..63
}

// ParseCHSAddress unpacks a 3-byte CHS triple: byte 0 is the head, the low
// 6 bits of byte 1 are the sector, the high 2 bits of byte 1 are cylinder
// bits 8-9, and byte 2 holds cylinder bits 0-7. Any raw packing is
// accepted; decoding performs no range validation.
func ParseCHSAddress(data []byte) (CHSAddress, error) {
	if len(data) < CHSAddressSize {
		return CHSAddress{}, fmt.Errorf("%w for CHS address: got %d bytes, want %d",
			ErrDataTooShort, len(data), CHSAddressSize)
	}
	return CHSAddress{
		Cylinder: uint16(data[2]) | uint16(data[1]>>6)<<8,
		Head:     data[0],
		Sector:   data[1] & 0x3F,
	}, nil
}

// Serialize packs the address into its 3-byte on-disk form. It fails with
// ErrCHSOutOfRange when the cylinder exceeds 1023 or the sector exceeds 63;
// the head always fits its byte by construction.
func (c CHSAddress) Serialize() ([]byte, error) {
	if c.Cylinder > MaxCylinder {
		return nil, fmt.Errorf("%w: cylinder %d exceeds %d", ErrCHSOutOfRange, c.Cylinder, MaxCylinder)
	}
	if c.Sector > MaxSector {
		return nil, fmt.Errorf("%w: sector %d exceeds %d", ErrCHSOutOfRange, c.Sector, MaxSector)
	}
	return []byte{
		c.Head,
		c.Sector | uint8(c.Cylinder>>8)<<6,
		uint8(c.Cylinder & 0xFF),
	}, nil
}

// String returns the address in c/h/s notation.
func (c CHSAddress) String() string {
	return fmt.Sprintf("%d/%d/%d", c.Cylinder, c.Head, c.Sector)
}
