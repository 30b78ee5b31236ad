// File: pkg/types/lba.go

// Package types implements the value types and constants of the legacy
// x86 Master Boot Record partitioning format: logical block addresses,
// packed cylinder/head/sector addresses, and the partition type registry.
package types

import (
	"encoding/binary"
	"fmt"
)

// SectorSize is the sector size assumed by the MBR format, in bytes.
const SectorSize = 512

// LogicalBlockAddressSize is the on-disk size of an LBA, in bytes.
const LogicalBlockAddressSize = 4

// LogicalBlockAddress is a flat, zero-based sector index.
// Stored on disk as an unsigned 32-bit little-endian integer.
type LogicalBlockAddress uint32

// ParseLogicalBlockAddress parses a 4-byte little-endian sector number.
func ParseLogicalBlockAddress(data []byte) (LogicalBlockAddress, error) {
	if len(data) < LogicalBlockAddressSize {
		return 0, fmt.Errorf("%w for logical block address: got %d bytes, want %d",
			ErrDataTooShort, len(data), LogicalBlockAddressSize)
	}
	return LogicalBlockAddress(binary.LittleEndian.Uint32(data)), nil
}

// Serialize returns the 4-byte little-endian form of the address.
func (a LogicalBlockAddress) Serialize() []byte {
	data := make([]byte, LogicalBlockAddressSize)
	binary.LittleEndian.PutUint32(data, uint32(a))
	return data
}

// ByteOffset returns the byte offset of the sector from the start of the disk.
func (a LogicalBlockAddress) ByteOffset() int64 {
	return int64(a) * SectorSize
}
