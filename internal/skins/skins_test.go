package skins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestLookup_KnownID(t *testing.T) {
	d, ok := Lookup("classic")
	require.True(t, ok)
	assert.Equal(t, "Classic", d.Name)
	assert.Equal(t, types.FrameSingleColumn, d.Frame)
}

func TestLookup_UnknownID(t *testing.T) {
	_, ok := Lookup("no-such-skin")
	assert.False(t, ok)
}

func TestIDs_MatchCatalogOrder(t *testing.T) {
	ids := IDs()
	all := All()

	require.Equal(t, len(all), len(ids))
	for i, d := range all {
		assert.Equal(t, d.ID, ids[i])
	}
}

func TestCatalog_IDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range All() {
		assert.False(t, seen[d.ID], "duplicate skin id %q", d.ID)
		seen[d.ID] = true
	}
}

func TestCatalog_DescriptorsComplete(t *testing.T) {
	for _, d := range All() {
		assert.NotEmpty(t, d.ID)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Motif)
		assert.Contains(t, []types.FrameKind{types.FrameSingleColumn, types.FrameTwoColumn}, d.Frame)
	}
}

func TestCatalog_TwoColumnSkinsNameSidebarSections(t *testing.T) {
	for _, d := range All() {
		if d.Frame == types.FrameTwoColumn {
			assert.NotEmpty(t, d.SidebarSections, "skin %q", d.ID)
		} else {
			assert.Empty(t, d.SidebarSections, "skin %q", d.ID)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "Mutated"

	d, ok := Lookup(all[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "Mutated", d.Name)
}

func TestCatalog_HeadingDefaultsAreValid(t *testing.T) {
	valid := map[types.HeadingStyle]bool{
		types.HeadingLeftUnderlineFull: true,
		types.HeadingCenterUnderline:   true,
		types.HeadingCenterPlain:       true,
		types.HeadingBox:               true,
		types.HeadingDoubleLine:        true,
		types.HeadingLeftExtended:      true,
		types.HeadingWavy:              true,
	}
	for _, d := range All() {
		if d.Defaults.HeadingStyle == nil {
			continue
		}
		assert.True(t, valid[types.HeadingStyle(*d.Defaults.HeadingStyle)],
			"skin %q heading style %q", d.ID, *d.Defaults.HeadingStyle)
	}
}
