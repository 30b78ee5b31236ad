// File: pkg/mbr/format.go
package mbr

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Describe returns a one-line summary of the entry.
func (e *PartitionEntry) Describe() string {
	if e.IsEmpty() {
		return "empty slot"
	}
	boot := ""
	if e.Bootable {
		boot = ", bootable"
	}
	return fmt.Sprintf("%s, start sector %d, %s%s",
		e.Type, e.Start, humanize.IBytes(uint64(e.ByteCount())), boot)
}

// Table returns an fdisk-style listing of the non-empty partition slots.
func (m *MasterBootRecord) Table() string {
	lines := make([]string, 0, PartitionCount+2)
	if m.DiskSignature != nil {
		lines = append(lines, fmt.Sprintf("Disk identifier: 0x%08X", *m.DiskSignature))
	}
	lines = append(lines,
		fmt.Sprintf("%6s %4s %10s %10s %10s %10s   %s", "Number", "Boot", "Start", "End", "Sectors", "Size", "Type"))
	for i, entry := range m.Partitions {
		if entry == nil || entry.IsEmpty() {
			continue
		}
		boot := " "
		if entry.Bootable {
			boot = "*"
		}
		lines = append(lines, fmt.Sprintf("%6d %4s %10d %10d %10d %10s   %s",
			i+1, boot, entry.Start, entry.EndBlockAddress(), entry.SectorCount,
			humanize.IBytes(uint64(entry.ByteCount())), entry.Type))
	}
	return strings.Join(lines, "\n")
}
