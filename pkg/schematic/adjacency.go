package schematic

// Box is an inclusive rectangle of cells.
type Box struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// Contains reports whether c lies inside the box.
func (b Box) Contains(c Cell) bool {
	return c.Row >= b.MinRow && c.Row <= b.MaxRow && c.Col >= b.MinCol && c.Col <= b.MaxCol
}

// Empty reports whether the box holds no cells.
func (b Box) Empty() bool {
	return b.MinRow > b.MaxRow || b.MinCol > b.MaxCol
}

// Cells lists the cells of the box in row-major order.
func (b Box) Cells() []Cell {
	if b.Empty() {
		return nil
	}

	cells := make([]Cell, 0, (b.MaxRow-b.MinRow+1)*(b.MaxCol-b.MinCol+1))

	for r := b.MinRow; r <= b.MaxRow; r++ {
		for c := b.MinCol; c <= b.MaxCol; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}

	return cells
}

// Resolver answers adjacency queries between the Numbers and Symbols of one
// grid. Entities are indexed by row so each query only visits three rows.
type Resolver struct {
	grid     *Grid
	entities Entities
	numbers  [][]Number
	symbols  [][]Symbol
}

// NewResolver indexes entities extracted from g.
func NewResolver(g *Grid, entities Entities) *Resolver {
	r := &Resolver{
		grid:     g,
		entities: entities,
		numbers:  make([][]Number, g.Height()),
		symbols:  make([][]Symbol, g.Height()),
	}

	for _, n := range entities.Numbers {
		r.numbers[n.Row] = append(r.numbers[n.Row], n)
	}

	for _, s := range entities.Symbols {
		r.symbols[s.Row] = append(r.symbols[s.Row], s)
	}

	return r
}

// Grid returns the grid the resolver was built for.
func (r *Resolver) Grid() *Grid {
	return r.grid
}

// Entities returns the indexed entities.
func (r *Resolver) Entities() Entities {
	return r.entities
}

func (r *Resolver) clip(b Box) Box {
	return Box{
		MinRow: max(b.MinRow, 0),
		MaxRow: min(b.MaxRow, r.grid.Height()-1),
		MinCol: max(b.MinCol, 0),
		MaxCol: min(b.MaxCol, r.grid.Width()-1),
	}
}

// SymbolNeighborhood is the 3x3 block centred on s, clipped to the grid.
func (r *Resolver) SymbolNeighborhood(s Symbol) Box {
	return r.clip(Box{MinRow: s.Row - 1, MaxRow: s.Row + 1, MinCol: s.Col - 1, MaxCol: s.Col + 1})
}

// NumberNeighborhood is the span of n grown by one cell in every direction,
// clipped to the grid.
func (r *Resolver) NumberNeighborhood(n Number) Box {
	return r.clip(Box{MinRow: n.Row - 1, MaxRow: n.Row + 1, MinCol: n.Start - 1, MaxCol: n.End})
}

// AdjacentFromSymbol tests adjacency by intersecting the number span with the
// symbol neighborhood.
func (r *Resolver) AdjacentFromSymbol(n Number, s Symbol) bool {
	b := r.SymbolNeighborhood(s)
	if n.Row < b.MinRow || n.Row > b.MaxRow {
		return false
	}

	return n.Start <= b.MaxCol && n.End-1 >= b.MinCol
}

// AdjacentFromNumber tests adjacency by locating the symbol inside the
// number neighborhood.
func (r *Resolver) AdjacentFromNumber(n Number, s Symbol) bool {
	return r.NumberNeighborhood(n).Contains(s.Cell())
}

// Adjacent is the canonical adjacency test.
func (r *Resolver) Adjacent(n Number, s Symbol) bool {
	return r.AdjacentFromNumber(n, s)
}

// NumbersAround returns the Numbers adjacent to s in row-major order.
func (r *Resolver) NumbersAround(s Symbol) []Number {
	var around []Number

	b := r.SymbolNeighborhood(s)
	for row := b.MinRow; row <= b.MaxRow; row++ {
		for _, n := range r.numbers[row] {
			if r.AdjacentFromSymbol(n, s) {
				around = append(around, n)
			}
		}
	}

	return around
}

// SymbolsAround returns the Symbols adjacent to n in row-major order.
func (r *Resolver) SymbolsAround(n Number) []Symbol {
	var around []Symbol

	b := r.NumberNeighborhood(n)
	for row := b.MinRow; row <= b.MaxRow; row++ {
		for _, s := range r.symbols[row] {
			if r.Adjacent(n, s) {
				around = append(around, s)
			}
		}
	}

	return around
}

// HasAdjacentSymbol reports whether any Symbol touches n.
func (r *Resolver) HasAdjacentSymbol(n Number) bool {
	b := r.NumberNeighborhood(n)
	for row := b.MinRow; row <= b.MaxRow; row++ {
		for _, s := range r.symbols[row] {
			if r.Adjacent(n, s) {
				return true
			}
		}
	}

	return false
}
