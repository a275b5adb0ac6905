package world

// Grid is a square field of Size×Size tiles.
type Grid struct {
	Size  int
	Tiles [][]Tile
}

// NewGrid creates an open grid. When withShop is set the bottom-right
// corner holds the shop.
func NewGrid(size int, withShop bool) *Grid {
	tiles := make([][]Tile, size)
	for y := range tiles {
		tiles[y] = make([]Tile, size)
		for x := range tiles[y] {
			tiles[y][x] = TileFloor
		}
	}
	if withShop && size > 0 {
		tiles[size-1][size-1] = TileShop
	}
	return &Grid{Size: size, Tiles: tiles}
}

// InBounds reports whether the position lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	return g.GetTile(x, y).IsPassable()
}

// GetTile returns the tile at the given position.
func (g *Grid) GetTile(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileVoid
	}
	return g.Tiles[y][x]
}

// IsShop reports whether the position is the shop tile.
func (g *Grid) IsShop(x, y int) bool {
	return g.GetTile(x, y) == TileShop
}
