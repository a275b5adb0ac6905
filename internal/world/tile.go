// Package world provides the bounded map the player walks on.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileVoid is returned for positions outside the grid.
	TileVoid Tile = ' '
	// TileFloor represents an open field tile.
	TileFloor Tile = '.'
	// TileShop marks the shop in the far corner.
	TileShop Tile = '$'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileShop
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
