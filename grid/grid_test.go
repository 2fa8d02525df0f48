// SPDX-License-Identifier: MIT

package grid_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/blockgrid/grid"
)

type GridSuite struct {
	suite.Suite
	g *grid.Grid[rune]
}

func (s *GridSuite) SetupTest() {
	// 6×6: '*' top-left block, '^' top-right block, 'x' below the first.
	s.g = grid.WithDefault(' ').
		BlockSize(2).
		Blocks(3, 3).
		SetBlockSector(0, 0, '*').
		SetBlockSector(2, 0, '^').
		SetBlockSector(0, 1, 'x').
		MustBuild()
}

func (s *GridSuite) TestDimensions() {
	require := require.New(s.T())
	require.Equal(6, s.g.Width())
	require.Equal(6, s.g.Height())
}

func (s *GridSuite) TestGet() {
	require := require.New(s.T())

	v, ok := s.g.Get(0, 0)
	require.True(ok)
	require.Equal('*', v)

	v, ok = s.g.Get(5, 1)
	require.True(ok)
	require.Equal('^', v)

	for _, p := range []grid.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 6, Y: 0}, {X: 0, Y: 6}, {X: 100, Y: 100}} {
		_, ok = s.g.Get(p.X, p.Y)
		require.False(ok, "Get(%d,%d) must report absence", p.X, p.Y)
	}
}

func (s *GridSuite) TestRow() {
	require := require.New(s.T())

	row, ok := s.g.Row(0)
	require.True(ok)
	require.Equal([]rune("**  ^^"), row)

	row, ok = s.g.Row(2)
	require.True(ok)
	require.Equal([]rune("xx    "), row)

	// Row hands out a copy.
	row[0] = '!'
	again, _ := s.g.Row(2)
	require.Equal('x', again[0])

	_, ok = s.g.Row(6)
	require.False(ok)
	_, ok = s.g.Row(-1)
	require.False(ok)
}

func (s *GridSuite) TestRowsInOrderAndRestartable() {
	require := require.New(s.T())

	collect := func() []string {
		var out []string
		for y, row := range s.g.Rows() {
			require.Len(out, y)
			out = append(out, string(row))
		}
		return out
	}
	first := collect()
	require.Equal([]string{"**  ^^", "**  ^^", "xx    ", "xx    ", "      ", "      "}, first)
	require.Equal(first, collect())

	// Early break stops the sequence.
	n := 0
	for range s.g.Rows() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(2, n)
}

func (s *GridSuite) TestCellsDeepCopy() {
	require := require.New(s.T())
	cells := s.g.Cells()
	require.Len(cells, 6)
	cells[0][0] = '!'
	v, _ := s.g.Get(0, 0)
	require.Equal('*', v)
}

func (s *GridSuite) TestEqual() {
	require := require.New(s.T())
	eq := func(a, b rune) bool { return a == b }

	same := grid.WithDefault(' ').BlockSize(2).Blocks(3, 3).
		SetBlockSector(0, 0, '*').SetBlockSector(2, 0, '^').SetBlockSector(0, 1, 'x').
		MustBuild()
	require.True(grid.Equal(s.g, same, eq))

	other := grid.WithDefault(' ').BlockSize(2).Blocks(3, 3).MustBuild()
	require.False(grid.Equal(s.g, other, eq))

	smaller := grid.WithDefault(' ').Blocks(3, 3).MustBuild()
	require.False(grid.Equal(s.g, smaller, eq))

	require.True(grid.Equal[rune](nil, nil, eq))
	require.False(grid.Equal(s.g, nil, eq))
}

func (s *GridSuite) TestConcurrentReads() {
	var wg sync.WaitGroup
	const readers = 16
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for range s.g.Rows() {
			}
			_, _ = s.g.Get(1, 1)
			_ = s.g.String()
		}()
	}
	wg.Wait()
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

// TestString_NonRune checks %v formatting for other value types.
func TestString_NonRune(t *testing.T) {
	g := grid.WithDefault(0).Blocks(3, 2).SetBlockSector(1, 1, 9).MustBuild()
	require.Equal(t, "000\n090", g.String())

	s := grid.WithDefault("..").Blocks(2, 1).SetBlockSector(0, 0, "##").MustBuild()
	require.Equal(t, "##..", s.String())
}
