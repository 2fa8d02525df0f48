// SPDX-License-Identifier: MIT

package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockgrid/grid"
)

func isStar(r rune) bool { return r == '*' }

// TestRegions_Isolated finds two separate dots.
func TestRegions_Isolated(t *testing.T) {
	g := grid.WithDefault(' ').Blocks(3, 5).
		SetBulkSectors('*', grid.Pt(1, 1), grid.Pt(1, 3)).
		MustBuild()

	regions := g.Regions(isStar)
	require.Len(t, regions, 2)
	require.Equal(t, []grid.Point{{X: 1, Y: 1}}, regions[0])
	require.Equal(t, []grid.Point{{X: 1, Y: 3}}, regions[1])
}

// TestRegions_ScaledBlockIsOneRegion checks a scaled block stays connected.
func TestRegions_ScaledBlockIsOneRegion(t *testing.T) {
	g := grid.WithDefault(' ').BlockSize(3).Blocks(2, 2).
		SetBlockSector(0, 0, '*').
		SetBlockSector(1, 1, '*').
		MustBuild()

	regions := g.Regions(isStar)
	// Diagonal blocks touch only at a corner: not 4-connected.
	require.Len(t, regions, 2)
	require.Len(t, regions[0], 9)
	require.Len(t, regions[1], 9)
	require.Equal(t, grid.Point{X: 0, Y: 0}, regions[0][0])
	require.Equal(t, grid.Point{X: 3, Y: 3}, regions[1][0])
}

// TestRegions_Ring treats a hollow ring as one region.
func TestRegions_Ring(t *testing.T) {
	g := grid.WithDefault(' ').Blocks(3, 3).
		SetBulkSectors('*',
			grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(2, 0),
			grid.Pt(0, 1), grid.Pt(2, 1),
			grid.Pt(0, 2), grid.Pt(1, 2), grid.Pt(2, 2)).
		MustBuild()

	require.Len(t, g.Regions(isStar), 1)
	require.Len(t, g.Regions(func(r rune) bool { return r == ' ' }), 1)
	require.Equal(t, 8, g.Count(isStar))
}

// TestRegions_None returns nil when nothing matches.
func TestRegions_None(t *testing.T) {
	g := grid.WithDefault(' ').Blocks(2, 2).MustBuild()
	require.Nil(t, g.Regions(isStar))
	require.Zero(t, g.Count(isStar))
}
