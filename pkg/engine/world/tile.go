package world

import (
	"github.com/leonelquinteros/gotext"
)

// TileDescription is the template tiles are created from.
// Name is a translation key.
type TileDescription struct {
	Name        string
	Glyph       Glyph
	Walkable    bool
	BlocksSight bool
}

// DisplayName returns the translated name of the description
func (d TileDescription) DisplayName() string {
	return gotext.Get(d.Name)
}

func wallDescription(name string, code rune) TileDescription {
	return TileDescription{
		Name:        name,
		Glyph:       NewGlyph(code, ColorWallFg, ColorWallBg),
		Walkable:    false,
		BlocksSight: true,
	}
}

// Tile descriptions. These are the only templates the generator selects from.
var (
	TileFloor = TileDescription{
		Name:        "TILE_FLOOR",
		Glyph:       NewGlyph(CharFloor, ColorFloorFg, ColorFloorBg),
		Walkable:    true,
		BlocksSight: false,
	}

	TileWallCross      = wallDescription("TILE_WALL_CROSS", CharWallCross)
	TileWallHorizontal = wallDescription("TILE_WALL_HORIZONTAL", CharWallHorizontal)
	TileWallVertical   = wallDescription("TILE_WALL_VERTICAL", CharWallVertical)
	TileWallCornerSE   = wallDescription("TILE_WALL_CORNER", CharWallCornerSE)
	TileWallCornerSW   = wallDescription("TILE_WALL_CORNER", CharWallCornerSW)
	TileWallCornerNE   = wallDescription("TILE_WALL_CORNER", CharWallCornerNE)
	TileWallCornerNW   = wallDescription("TILE_WALL_CORNER", CharWallCornerNW)
	TileWallTeeE       = wallDescription("TILE_WALL_JUNCTION", CharWallTeeE)
	TileWallTeeW       = wallDescription("TILE_WALL_JUNCTION", CharWallTeeW)
	TileWallTeeS       = wallDescription("TILE_WALL_JUNCTION", CharWallTeeS)
	TileWallTeeN       = wallDescription("TILE_WALL_JUNCTION", CharWallTeeN)
)

// Tile is one cell of a finished map.
// Entity and Props are owned by whoever places things on the map; the
// generator only ever leaves them empty.
type Tile struct {
	Description TileDescription
	Glyph       Glyph
	Walkable    bool
	BlocksSight bool

	// Entity is the blocking occupant of the tile, if any
	Entity interface{}

	// Props holds non-blocking things lying on the tile, keyed by an opaque id
	Props map[string]interface{}
}

// CreateTile creates a new tile from a description
func CreateTile(desc TileDescription) *Tile {
	return &Tile{
		Description: desc,
		Glyph:       desc.Glyph,
		Walkable:    desc.Walkable,
		BlocksSight: desc.BlocksSight,
		Props:       make(map[string]interface{}),
	}
}

// IsOccupied returns true if an entity stands on the tile
func (t *Tile) IsOccupied() bool {
	return t.Entity != nil
}

// ClearEntity removes the occupant reference
func (t *Tile) ClearEntity() {
	t.Entity = nil
}
