// File: pkg/mbr/record.go
package mbr

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-mbr/pkg/types"
)

// Size is the on-disk size of a Master Boot Record sector.
const Size = 512

// PartitionCount is the fixed number of partition table slots.
const PartitionCount = 4

// BootSignature is the marker a valid MBR carries at offset 0x1FE, stored
// little-endian as the byte sequence 0x55 0xAA.
const BootSignature uint16 = 0xAA55

// Sector layout:
//
//	| 0x1B8 | 4  | disk signature, little-endian        |
//	| 0x1BE | 16 | first partition table entry          |
//	| 0x1CE | 16 | second partition table entry         |
//	| 0x1DE | 16 | third partition table entry          |
//	| 0x1EE | 16 | fourth partition table entry         |
//	| 0x1FE | 2  | boot signature 0x55 0xAA             |
const (
	diskSignatureOffset = 0x1B8
	bootSignatureOffset = 0x1FE
)

var partitionOffsets = [PartitionCount]int{0x1BE, 0x1CE, 0x1DE, 0x1EE}

// MasterBootRecord is the decoded first sector of a legacy-partitioned
// disk. The boot code area is not modeled. An absent disk signature or
// partition slot is explicit (nil), never a sentinel zero, though both
// serialize to deterministic zero bytes.
type MasterBootRecord struct {
	DiskSignature *uint32
	Partitions    [PartitionCount]*PartitionEntry
}

// ReadMasterBootRecord decodes a 512-byte sector. It fails with
// types.ErrDataTooShort when fewer than 512 bytes are available and with
// types.ErrInvalidBootSignature when the trailing marker is not 0x55 0xAA;
// the latter is a recognized "not an MBR" outcome that ignoreBootSignature
// bypasses. The four slots always decode for a full sector; an all-zero
// slot decodes to an empty entry.
func ReadMasterBootRecord(data []byte, ignoreBootSignature bool) (*MasterBootRecord, error) {
	if len(data) < Size {
		return nil, fmt.Errorf("%w for master boot record: got %d bytes, want %d",
			types.ErrDataTooShort, len(data), Size)
	}

	marker := binary.LittleEndian.Uint16(data[bootSignatureOffset : bootSignatureOffset+2])
	if marker != BootSignature && !ignoreBootSignature {
		return nil, fmt.Errorf("%w: got 0x%04X, want 0x%04X", types.ErrInvalidBootSignature, marker, BootSignature)
	}

	record := &MasterBootRecord{}
	signature := binary.LittleEndian.Uint32(data[diskSignatureOffset : diskSignatureOffset+4])
	record.DiskSignature = &signature

	for i, offset := range partitionOffsets {
		entry, err := ReadPartitionEntry(data[offset : offset+PartitionEntrySize])
		if err != nil {
			return nil, fmt.Errorf("failed to parse partition entry %d: %w", i+1, err)
		}
		record.Partitions[i] = entry
	}
	return record, nil
}

// DecodeMasterBootRecord reads exactly 512 bytes from r and decodes them. A
// stream that ends early fails with types.ErrDataTooShort; blocking and
// cancellation belong to whatever supplies r.
func DecodeMasterBootRecord(r io.Reader, ignoreBootSignature bool) (*MasterBootRecord, error) {
	data := make([]byte, Size)
	n, err := io.ReadFull(r, data)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w for master boot record: stream ended after %d bytes, want %d",
			types.ErrDataTooShort, n, Size)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read master boot record: %w", err)
	}
	return ReadMasterBootRecord(data, ignoreBootSignature)
}

// Serialize encodes the record into a 512-byte sector. The boot signature
// is stamped unconditionally, so the output always decodes as a valid MBR;
// a nil disk signature writes as zero and a nil slot as 16 zero bytes.
func (m *MasterBootRecord) Serialize() ([]byte, error) {
	data := make([]byte, Size)
	if m.DiskSignature != nil {
		binary.LittleEndian.PutUint32(data[diskSignatureOffset:], *m.DiskSignature)
	}
	for i, entry := range m.Partitions {
		if entry == nil {
			continue
		}
		slot, err := entry.Serialize()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize partition entry %d: %w", i+1, err)
		}
		copy(data[partitionOffsets[i]:], slot)
	}
	binary.LittleEndian.PutUint16(data[bootSignatureOffset:], BootSignature)
	return data, nil
}

// BootableEntry returns the first slot with the bootable flag set, or nil
// when no partition is marked active.
func (m *MasterBootRecord) BootableEntry() *PartitionEntry {
	for _, entry := range m.Partitions {
		if entry != nil && entry.Bootable {
			return entry
		}
	}
	return nil
}
