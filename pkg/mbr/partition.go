// File: pkg/mbr/partition.go

// Package mbr decodes and encodes the x86 Master Boot Record: the 512-byte
// first sector of a legacy-partitioned disk holding a disk signature, four
// 16-byte partition table entries, and the 0xAA55 boot signature. Every
// operation is a pure transform between bytes and value types; nothing here
// touches a device.
package mbr

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-mbr/pkg/types"
)

// PartitionEntrySize is the on-disk size of one partition table slot.
const PartitionEntrySize = 16

// BootableFlag is bit 7 of the attribute byte, set on the active partition.
const BootableFlag = 0x80

// Partition entry layout, offsets relative to the slot start:
//
//	| 0x00 | 1 | attributes (bit 7 = bootable)      |
//	| 0x01 | 3 | CHS address of first sector        |
//	| 0x04 | 1 | partition type byte                |
//	| 0x05 | 3 | CHS address of last sector         |
//	| 0x08 | 4 | LBA of first sector, little-endian |
//	| 0x0C | 4 | sector count, little-endian        |
const (
	entryStartCHSOffset    = 0x01
	entryTypeOffset        = 0x04
	entryEndCHSOffset      = 0x05
	entryStartLBAOffset    = 0x08
	entrySectorCountOffset = 0x0C
)

// PartitionEntry is one decoded slot of the partition table. The CHS fields
// are legacy carry-alongs: they are decoded and re-encoded faithfully but
// never validated against the LBA fields, which the format permits to
// disagree. A nil CHS field serializes as three zero bytes.
type PartitionEntry struct {
	Bootable    bool
	Type        types.PartitionType
	Start       types.LogicalBlockAddress
	SectorCount uint32
	StartCHS    *types.CHSAddress
	EndCHS      *types.CHSAddress
}

// ReadPartitionEntry decodes one 16-byte partition table slot. It fails
// with types.ErrDataTooShort when fewer than 16 bytes are available; an
// all-zero slot decodes to an empty entry, not an error.
func ReadPartitionEntry(data []byte) (*PartitionEntry, error) {
	if len(data) < PartitionEntrySize {
		return nil, fmt.Errorf("%w for partition entry: got %d bytes, want %d",
			types.ErrDataTooShort, len(data), PartitionEntrySize)
	}

	startCHS, err := types.ParseCHSAddress(data[entryStartCHSOffset : entryStartCHSOffset+types.CHSAddressSize])
	if err != nil {
		return nil, fmt.Errorf("failed to parse start CHS: %w", err)
	}
	endCHS, err := types.ParseCHSAddress(data[entryEndCHSOffset : entryEndCHSOffset+types.CHSAddressSize])
	if err != nil {
		return nil, fmt.Errorf("failed to parse end CHS: %w", err)
	}
	start, err := types.ParseLogicalBlockAddress(data[entryStartLBAOffset : entryStartLBAOffset+types.LogicalBlockAddressSize])
	if err != nil {
		return nil, fmt.Errorf("failed to parse start LBA: %w", err)
	}

	return &PartitionEntry{
		Bootable:    data[0]&BootableFlag != 0,
		Type:        types.LookupPartitionType(data[entryTypeOffset]),
		Start:       start,
		SectorCount: binary.LittleEndian.Uint32(data[entrySectorCountOffset : entrySectorCountOffset+4]),
		StartCHS:    &startCHS,
		EndCHS:      &endCHS,
	}, nil
}

// ReadPartitionEntryFrom reads exactly 16 bytes from r and decodes them. A
// stream that ends early fails with types.ErrDataTooShort.
func ReadPartitionEntryFrom(r io.Reader) (*PartitionEntry, error) {
	data := make([]byte, PartitionEntrySize)
	n, err := io.ReadFull(r, data)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w for partition entry: stream ended after %d bytes, want %d",
			types.ErrDataTooShort, n, PartitionEntrySize)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read partition entry: %w", err)
	}
	return ReadPartitionEntry(data)
}

// Serialize encodes the entry into its 16-byte on-disk form, propagating
// CHS range errors. No cross-field consistency is enforced in either
// direction.
func (e *PartitionEntry) Serialize() ([]byte, error) {
	data := make([]byte, PartitionEntrySize)
	if e.Bootable {
		data[0] = BootableFlag
	}
	if e.StartCHS != nil {
		chs, err := e.StartCHS.Serialize()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize start CHS: %w", err)
		}
		copy(data[entryStartCHSOffset:], chs)
	}
	data[entryTypeOffset] = e.Type.Code()
	if e.EndCHS != nil {
		chs, err := e.EndCHS.Serialize()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize end CHS: %w", err)
		}
		copy(data[entryEndCHSOffset:], chs)
	}
	copy(data[entryStartLBAOffset:], e.Start.Serialize())
	binary.LittleEndian.PutUint32(data[entrySectorCountOffset:], e.SectorCount)
	return data, nil
}

// EndBlockAddress returns the address of the last sector of the partition.
// A zero-length partition ends where it starts.
func (e *PartitionEntry) EndBlockAddress() types.LogicalBlockAddress {
	if e.SectorCount == 0 {
		return e.Start
	}
	return e.Start + types.LogicalBlockAddress(e.SectorCount-1)
}

// ByteCount returns the partition size in bytes.
func (e *PartitionEntry) ByteCount() int64 {
	return int64(e.SectorCount) * types.SectorSize
}

// IsEmpty reports whether the slot is unused: raw type 0x00 and no sectors.
func (e *PartitionEntry) IsEmpty() bool {
	return e.Type.Code() == types.Empty && e.SectorCount == 0
}

// IsExtended reports whether the entry addresses a DOS, Win95, or Linux
// extended partition container.
func (e *PartitionEntry) IsExtended() bool {
	switch e.Type.Code() {
	case types.ExtendedCHS, types.ExtendedLBA, types.LinuxExtended:
		return true
	}
	return false
}

// IsGPTProtective reports whether the entry is the protective placeholder a
// GPT-partitioned disk writes over its legacy MBR.
func (e *PartitionEntry) IsGPTProtective() bool {
	return e.Type.Code() == types.GPTProtective
}
