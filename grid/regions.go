// SPDX-License-Identifier: MIT

package grid

// neighbour offsets for 4-connectivity: N, E, S, W.
var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Regions finds the contiguous (4-connected) regions of cells for which
// match returns true. Regions are returned in row-major order of their
// first cell; cells inside a region are in BFS order from that cell.
//
// Glyph code uses it to check stroke structure, e.g. a separator is two
// isolated one-block regions.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid[V]) Regions(match func(V) bool) [][]Point {
	seen := make([]bool, g.width*g.height)
	var regions [][]Point

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !match(g.cells[y][x]) || seen[y*g.width+x] {
				continue
			}
			// BFS to collect the region
			seen[y*g.width+x] = true
			queue := []Point{{X: x, Y: y}}
			for qi := 0; qi < len(queue); qi++ {
				p := queue[qi]
				for _, d := range offsets4 {
					nx, ny := p.X+d[0], p.Y+d[1]
					if !g.InBounds(nx, ny) || seen[ny*g.width+nx] || !match(g.cells[ny][nx]) {
						continue
					}
					seen[ny*g.width+nx] = true
					queue = append(queue, Point{X: nx, Y: ny})
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions
}

// Count returns how many cells satisfy match.
func (g *Grid[V]) Count(match func(V) bool) int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if match(v) {
				n++
			}
		}
	}

	return n
}
