package mbr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-mbr/pkg/types"
)

// linuxEntryBytes is a bootable Linux partition slot: start sector 2048,
// 2097152 sectors (1 GiB), with plausible legacy CHS bounds.
func linuxEntryBytes() []byte {
	return []byte{
		0x80,             // attributes: bootable
		0x20, 0x21, 0x00, // start CHS 0/32/33
		0x83,             // type: Linux
		0xFE, 0x3F, 0x82, // end CHS 130/254/63
		0x00, 0x08, 0x00, 0x00, // start LBA 2048
		0x00, 0x00, 0x20, 0x00, // 2097152 sectors
	}
}

func TestReadPartitionEntry(t *testing.T) {
	entry, err := ReadPartitionEntry(linuxEntryBytes())
	require.NoError(t, err)

	assert.True(t, entry.Bootable)
	assert.True(t, entry.Type.Known())
	assert.Equal(t, "Linux", entry.Type.Name())
	assert.Equal(t, byte(0x83), entry.Type.Code())
	assert.Equal(t, types.LogicalBlockAddress(2048), entry.Start)
	assert.Equal(t, uint32(2097152), entry.SectorCount)

	require.NotNil(t, entry.StartCHS)
	assert.Equal(t, types.CHSAddress{Cylinder: 0, Head: 32, Sector: 33}, *entry.StartCHS)
	require.NotNil(t, entry.EndCHS)
	assert.Equal(t, types.CHSAddress{Cylinder: 130, Head: 254, Sector: 63}, *entry.EndCHS)
}

func TestReadPartitionEntryShortData(t *testing.T) {
	_, err := ReadPartitionEntry(linuxEntryBytes()[:15])
	require.ErrorIs(t, err, types.ErrDataTooShort)
}

func TestPartitionEntryRoundTrip(t *testing.T) {
	original, err := ReadPartitionEntry(linuxEntryBytes())
	require.NoError(t, err)

	data, err := original.Serialize()
	require.NoError(t, err)
	assert.Equal(t, linuxEntryBytes(), data)

	decoded, err := ReadPartitionEntry(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestPartitionEntryRawTypeRoundTrip(t *testing.T) {
	data := linuxEntryBytes()
	data[4] = 0x99 // unregistered type byte

	entry, err := ReadPartitionEntry(data)
	require.NoError(t, err)
	assert.False(t, entry.Type.Known())
	assert.Equal(t, byte(0x99), entry.Type.Code())

	out, err := entry.Serialize()
	require.NoError(t, err)
	assert.Equal(t, byte(0x99), out[4], "raw type byte must survive the round trip unchanged")
}

func TestPartitionEntrySerializeNilCHS(t *testing.T) {
	entry := &PartitionEntry{
		Type:        types.LookupPartitionType(types.Linux),
		Start:       2048,
		SectorCount: 100,
	}
	data, err := entry.Serialize()
	require.NoError(t, err)

	assert.Equal(t, []byte{0x00, 0x00, 0x00}, data[1:4], "absent start CHS serializes as zero bytes")
	assert.Equal(t, []byte{0x00, 0x00, 0x00}, data[5:8], "absent end CHS serializes as zero bytes")
}

func TestPartitionEntrySerializeCHSRangeError(t *testing.T) {
	entry := &PartitionEntry{
		Type:     types.LookupPartitionType(types.Linux),
		StartCHS: &types.CHSAddress{Cylinder: 1024},
	}
	_, err := entry.Serialize()
	require.ErrorIs(t, err, types.ErrCHSOutOfRange)

	entry = &PartitionEntry{
		Type:   types.LookupPartitionType(types.Linux),
		EndCHS: &types.CHSAddress{Sector: 64},
	}
	_, err = entry.Serialize()
	require.ErrorIs(t, err, types.ErrCHSOutOfRange)
}

func TestPartitionEntryDerivedFields(t *testing.T) {
	entry := &PartitionEntry{Start: 100, SectorCount: 50}
	assert.Equal(t, types.LogicalBlockAddress(149), entry.EndBlockAddress())
	assert.Equal(t, int64(50*512), entry.ByteCount())

	empty := &PartitionEntry{Start: 100, SectorCount: 0}
	assert.Equal(t, types.LogicalBlockAddress(100), empty.EndBlockAddress(),
		"a zero-length partition ends where it starts")
	assert.Equal(t, int64(0), empty.ByteCount())
}

func TestReadPartitionEntryFrom(t *testing.T) {
	entry, err := ReadPartitionEntryFrom(bytes.NewReader(linuxEntryBytes()))
	require.NoError(t, err)
	assert.Equal(t, types.LogicalBlockAddress(2048), entry.Start)

	_, err = ReadPartitionEntryFrom(bytes.NewReader(linuxEntryBytes()[:10]))
	require.ErrorIs(t, err, types.ErrDataTooShort)

	_, err = ReadPartitionEntryFrom(bytes.NewReader(nil))
	require.ErrorIs(t, err, types.ErrDataTooShort)
}

func TestPartitionEntryClassification(t *testing.T) {
	testCases := []struct {
		name          string
		entry         *PartitionEntry
		empty         bool
		extended      bool
		gptProtective bool
	}{
		{
			name:  "Empty Slot",
			entry: &PartitionEntry{Type: types.RawPartitionType(0x00)},
			empty: true,
		},
		{
			name:     "DOS Extended",
			entry:    &PartitionEntry{Type: types.LookupPartitionType(types.ExtendedCHS), SectorCount: 100},
			extended: true,
		},
		{
			name:     "Win95 Extended LBA",
			entry:    &PartitionEntry{Type: types.LookupPartitionType(types.ExtendedLBA), SectorCount: 100},
			extended: true,
		},
		{
			name:     "Linux Extended",
			entry:    &PartitionEntry{Type: types.LookupPartitionType(types.LinuxExtended), SectorCount: 100},
			extended: true,
		},
		{
			name:          "GPT Protective",
			entry:         &PartitionEntry{Type: types.LookupPartitionType(types.GPTProtective), Start: 1, SectorCount: 100},
			gptProtective: true,
		},
		{
			name:  "Plain Linux",
			entry: &PartitionEntry{Type: types.LookupPartitionType(types.Linux), Start: 2048, SectorCount: 100},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.empty, tc.entry.IsEmpty())
			assert.Equal(t, tc.extended, tc.entry.IsExtended())
			assert.Equal(t, tc.gptProtective, tc.entry.IsGPTProtective())
		})
	}
}
