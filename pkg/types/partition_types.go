// File: pkg/types/partition_types.go
package types

import "fmt"

// Well-known partition type bytes. One constant per byte; where vendors
// reused a byte (0x07 most famously) the registry below carries the
// alternate names.
// See https://en.wikipedia.org/wiki/Partition_type.
const (
	Empty            byte = 0x00
	FAT12            byte = 0x01
	XENIXRoot        byte = 0x02
	XENIXUsr         byte = 0x03
	FAT16Small       byte = 0x04
	ExtendedCHS      byte = 0x05
	FAT16            byte = 0x06
	NTFS             byte = 0x07
	OS2              byte = 0x08
	OS2BootManager   byte = 0x0A
	FAT32            byte = 0x0B
	FAT32LBA         byte = 0x0C
	FAT16LBA         byte = 0x0E
	ExtendedLBA      byte = 0x0F
	HiddenFAT12      byte = 0x11
	HiddenFAT16Small byte = 0x14
	HiddenFAT16      byte = 0x16
	HiddenNTFS       byte = 0x17
	HiddenFAT32      byte = 0x1B
	HiddenFAT32LBA   byte = 0x1C
	HiddenFAT16LBA   byte = 0x1E
	Plan9            byte = 0x39
	LinuxSwap        byte = 0x82
	Linux            byte = 0x83
	LinuxExtended    byte = 0x85
	LinuxLVM         byte = 0x8E
	HiddenLinux      byte = 0x93
	FreeBSD          byte = 0xA5
	OpenBSD          byte = 0xA6
	NetBSD           byte = 0xA9
	HFS              byte = 0xAF
	GPTProtective    byte = 0xEE
	EFISystem        byte = 0xEF
	LinuxRAID        byte = 0xFD
)

// partitionTypeNames associates each registered type byte with its names in
// fixed canonical priority: decoding always reports the first name, most
// common usage first. The association is deliberately not a bijection.
// 0x00 is unregistered on purpose so an empty slot decodes as a raw byte
// rather than a "known" type.
var partitionTypeNames = map[byte][]string{
	FAT12:            {"FAT12"},
	XENIXRoot:        {"XENIX root"},
	XENIXUsr:         {"XENIX usr"},
	FAT16Small:       {"FAT16 <32M"},
	ExtendedCHS:      {"Extended"},
	FAT16:            {"FAT16"},
	NTFS:             {"NTFS", "exFAT", "HPFS", "QNX2"},
	OS2:              {"OS/2"},
	OS2BootManager:   {"OS/2 Boot Manager"},
	FAT32:            {"W95 FAT32"},
	FAT32LBA:         {"W95 FAT32 (LBA)"},
	FAT16LBA:         {"W95 FAT16 (LBA)"},
	ExtendedLBA:      {"W95 Extended (LBA)"},
	HiddenFAT12:      {"Hidden FAT12"},
	HiddenFAT16Small: {"Hidden FAT16 <32M"},
	HiddenFAT16:      {"Hidden FAT16"},
	HiddenNTFS:       {"Hidden NTFS", "Hidden HPFS"},
	HiddenFAT32:      {"Hidden W95 FAT32"},
	HiddenFAT32LBA:   {"Hidden W95 FAT32 (LBA)"},
	HiddenFAT16LBA:   {"Hidden W95 FAT16 (LBA)"},
	Plan9:            {"Plan 9"},
	LinuxSwap:        {"Linux swap"},
	Linux:            {"Linux"},
	LinuxExtended:    {"Linux extended"},
	LinuxLVM:         {"Linux LVM"},
	HiddenLinux:      {"Hidden Linux"},
	FreeBSD:          {"FreeBSD"},
	OpenBSD:          {"OpenBSD"},
	NetBSD:           {"NetBSD"},
	HFS:              {"HFS/HFS+"},
	GPTProtective:    {"GPT protective"},
	EFISystem:        {"EFI System"},
	LinuxRAID:        {"Linux RAID"},
}

// PartitionType is the type byte of a partition entry, tagged with the
// canonical name when the byte is registered. A value is either known
// (carries a name) or raw (carries only the byte), never an ambiguous bare
// integer; serializing always reduces to the single underlying byte.
type PartitionType struct {
	code byte
	name string
}

// LookupPartitionType resolves a type byte against the registry. A
// registered byte yields a known type carrying its canonical name; anything
// else yields a raw type.
func LookupPartitionType(code byte) PartitionType {
	if names, ok := partitionTypeNames[code]; ok {
		return PartitionType{code: code, name: names[0]}
	}
	return PartitionType{code: code}
}

// RawPartitionType returns a type carrying only the raw byte, regardless of
// whether the byte is registered.
func RawPartitionType(code byte) PartitionType {
	return PartitionType{code: code}
}

// PartitionTypeNames returns every registered name for a type byte, in
// canonical priority order, or nil when the byte is unregistered.
func PartitionTypeNames(code byte) []string {
	names := partitionTypeNames[code]
	if names == nil {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Code returns the underlying type byte.
func (t PartitionType) Code() byte {
	return t.code
}

// Name returns the canonical name of a known type, or the empty string for
// a raw type.
func (t PartitionType) Name() string {
	return t.name
}

// Known reports whether the type carries a registered name.
func (t PartitionType) Known() bool {
	return t.name != ""
}

// String returns the canonical name for a known type and the hex byte for a
// raw one.
func (t PartitionType) String() string {
	if t.Known() {
		return t.name
	}
	return fmt.Sprintf("0x%02X", t.code)
}
