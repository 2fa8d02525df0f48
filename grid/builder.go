// SPDX-License-Identifier: MIT
// Package: blockgrid/grid
//
// builder.go - declarative block-space configuration and its rasterizer.
//
// Design:
//   • Builder is a pure description: block size, block extents, a default
//     value and an ordered list of sectors. Build never mutates it.
//   • Mutators return the receiver for chaining. The first invalid value
//     is recorded (sticky) and disables every later mutator, so a chain
//     such as WithDefault(' ').BlockSize(0).BlocksX(3) never yields a
//     usable configuration; Build reports the error.
//   • Sectors are kept in insertion order and never deduplicated. Build is
//     a left fold over them: the last sector covering a cell wins.
//
// Defaults: block size 1, 1×1 blocks (a single cell), no sectors.

package grid

const (
	defaultBlockSize = 1
	defaultBlocks    = 1
)

// Builder accumulates block-space overrides and rasterizes them into a Grid.
// A Builder is not safe for concurrent mutation; Build may be called any
// number of times and always returns a new, independent Grid.
type Builder[V any] struct {
	blockSize int
	blocksX   int
	blocksY   int
	def       V
	sectors   []Sector[V]
	err       error
}

// WithDefault returns a builder whose every cell holds def until overridden.
func WithDefault[V any](def V) *Builder[V] {
	return &Builder[V]{
		blockSize: defaultBlockSize,
		blocksX:   defaultBlocks,
		blocksY:   defaultBlocks,
		def:       def,
	}
}

// New returns a builder defaulting to the zero value of V.
func New[V any]() *Builder[V] {
	var zero V
	return WithDefault(zero)
}

// BlockSize sets the number of cells along each edge of a block.
// n < 1 records ErrZeroBlockSize; a cell size overflowing int records
// ErrGridTooLarge.
func (b *Builder[V]) BlockSize(n int) *Builder[V] {
	if b.err != nil {
		return b
	}
	if n < 1 {
		b.err = builderErrorf(methodBlockSize, ErrZeroBlockSize, "got %d", n)
		return b
	}
	if err := validateArea(methodBlockSize, n, b.blocksX, b.blocksY); err != nil {
		b.err = err
		return b
	}
	b.blockSize = n

	return b
}

// BlocksX sets how many blocks the grid spans horizontally.
// The extents are validated as a pair after the change; an axis below one
// block records ErrEmptyExtent, a cell size overflowing int records
// ErrGridTooLarge.
func (b *Builder[V]) BlocksX(n int) *Builder[V] {
	if b.err != nil {
		return b
	}
	if err := validateExtents(methodBlocksX, n, b.blocksY); err != nil {
		b.err = err
		return b
	}
	if err := validateArea(methodBlocksX, b.blockSize, n, b.blocksY); err != nil {
		b.err = err
		return b
	}
	b.blocksX = n

	return b
}

// BlocksY sets how many blocks the grid spans vertically.
// See BlocksX for validation.
func (b *Builder[V]) BlocksY(n int) *Builder[V] {
	if b.err != nil {
		return b
	}
	if err := validateExtents(methodBlocksY, b.blocksX, n); err != nil {
		b.err = err
		return b
	}
	if err := validateArea(methodBlocksY, b.blockSize, b.blocksX, n); err != nil {
		b.err = err
		return b
	}
	b.blocksY = n

	return b
}

// Blocks sets both extents at once.
func (b *Builder[V]) Blocks(x, y int) *Builder[V] {
	if b.err != nil {
		return b
	}
	if err := validateExtents(methodBlocks, x, y); err != nil {
		b.err = err
		return b
	}
	if err := validateArea(methodBlocks, b.blockSize, x, y); err != nil {
		b.err = err
		return b
	}
	b.blocksX, b.blocksY = x, y

	return b
}

// SetBlockSector appends one override: every cell of block (x,y) becomes v.
// Coordinates are checked against the extents at Build time, since the
// extents may still change.
func (b *Builder[V]) SetBlockSector(x, y int, v V) *Builder[V] {
	if b.err != nil {
		return b
	}
	b.sectors = append(b.sectors, Sector[V]{X: x, Y: y, Value: v})

	return b
}

// SetBulkSectors appends one override per coordinate, all sharing v, in the
// given order. Equivalent to repeated SetBlockSector calls.
func (b *Builder[V]) SetBulkSectors(v V, coords ...Point) *Builder[V] {
	if b.err != nil {
		return b
	}
	for _, p := range coords {
		b.sectors = append(b.sectors, Sector[V]{X: p.X, Y: p.Y, Value: v})
	}

	return b
}

// ResetSectors drops every override, keeping block size and extents.
func (b *Builder[V]) ResetSectors() *Builder[V] {
	if b.err != nil {
		return b
	}
	b.sectors = nil

	return b
}

// Err returns the first configuration error, if any.
func (b *Builder[V]) Err() error {
	return b.err
}

// Width returns the cell width Build would produce.
func (b *Builder[V]) Width() int {
	return b.blockSize * b.blocksX
}

// Height returns the cell height Build would produce.
func (b *Builder[V]) Height() int {
	return b.blockSize * b.blocksY
}

// Sectors returns a copy of the accumulated overrides in insertion order.
func (b *Builder[V]) Sectors() []Sector[V] {
	out := make([]Sector[V], len(b.sectors))
	copy(out, b.sectors)

	return out
}

// Clone returns an independent copy of b, including any recorded error.
func (b *Builder[V]) Clone() *Builder[V] {
	c := *b
	c.sectors = b.Sectors()

	return &c
}

// Build rasterizes the configuration into a new Grid.
//
// Stage 1 (Validate): surface a sticky configuration error, then check
// every sector against the block extents.
// Stage 2 (Prepare): allocate Height×Width cells filled with the default.
// Stage 3 (Execute): fill each sector's B×B cell square, in insertion order.
//
// Complexity: O(W×H + S×B²) time, O(W×H) memory.
func (b *Builder[V]) Build() (*Grid[V], error) {
	if b.err != nil {
		return nil, b.err
	}
	for i, s := range b.sectors {
		if s.X < 0 || s.X >= b.blocksX || s.Y < 0 || s.Y >= b.blocksY {
			return nil, builderErrorf(methodBuild, ErrSectorOutOfRange,
				"sector %d at block (%d,%d) outside %d×%d blocks", i, s.X, s.Y, b.blocksX, b.blocksY)
		}
	}

	width, height := b.Width(), b.Height()
	// One backing array, sliced into rows.
	backing := make([]V, width*height)
	for i := range backing {
		backing[i] = b.def
	}
	cells := make([][]V, height)
	for y := range cells {
		cells[y] = backing[y*width : (y+1)*width : (y+1)*width]
	}

	size := b.blockSize
	for _, s := range b.sectors {
		x0, y0 := s.X*size, s.Y*size
		for y := y0; y < y0+size; y++ {
			row := cells[y]
			for x := x0; x < x0+size; x++ {
				row[x] = s.Value
			}
		}
	}

	return &Grid[V]{cells: cells, width: width, height: height}, nil
}

// MustBuild is like Build but panics on error. Intended for static shape
// tables, tests and examples where a failure is a programming error.
func (b *Builder[V]) MustBuild() *Grid[V] {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	return g
}

// validateExtents checks a candidate pair of block extents.
func validateExtents(method string, x, y int) error {
	if x < 1 || y < 1 {
		return builderErrorf(method, ErrEmptyExtent, "got %d×%d", x, y)
	}

	return nil
}

// validateArea checks that width, height and width×height of a candidate
// configuration fit in an int. All inputs are already at least 1.
func validateArea(method string, size, x, y int) error {
	w, h := size*x, size*y
	if w/size != x || h/size != y || (w*h)/w != h {
		return builderErrorf(method, ErrGridTooLarge, "block size %d over %d×%d blocks", size, x, y)
	}

	return nil
}
