package generator

import (
	"runedelve/pkg/engine/world"
)

// wallPattern says which cardinal neighbours of a wall are walls too
type wallPattern struct {
	n, s, e, w bool
}

// wallRule maps one exact neighbour pattern to a tile description
type wallRule struct {
	pattern wallPattern
	tile    world.TileDescription
}

// wallRules is evaluated top to bottom and the first match wins.
// The order is part of the output: keep it.
var wallRules = []wallRule{
	{wallPattern{n: true, s: true, e: true, w: true}, world.TileWallCross},
	{wallPattern{e: true, w: true}, world.TileWallHorizontal},
	{wallPattern{n: true, s: true}, world.TileWallVertical},
	{wallPattern{s: true, e: true}, world.TileWallCornerSE},
	{wallPattern{s: true, w: true}, world.TileWallCornerSW},
	{wallPattern{n: true, e: true}, world.TileWallCornerNE},
	{wallPattern{n: true, w: true}, world.TileWallCornerNW},
	{wallPattern{n: true, s: true, e: true}, world.TileWallTeeE},
	{wallPattern{n: true, s: true, w: true}, world.TileWallTeeW},
	{wallPattern{s: true, e: true, w: true}, world.TileWallTeeS},
	{wallPattern{n: true, e: true, w: true}, world.TileWallTeeN},
}

// wallFallback is used for any pattern no rule matches, e.g. isolated pillars and wall ends
var wallFallback = world.TileWallCross

// WallDescription picks the wall tile for (x, y) from its cardinal wall neighbours.
// Out-of-bounds neighbours do not count as walls.
func WallDescription(x, y int, cells *world.CellGrid) world.TileDescription {
	p := world.Pos(x, y)
	pattern := wallPattern{
		n: cells.IsWall(p.Step(world.North)),
		s: cells.IsWall(p.Step(world.South)),
		e: cells.IsWall(p.Step(world.East)),
		w: cells.IsWall(p.Step(world.West)),
	}
	for _, rule := range wallRules {
		if rule.pattern == pattern {
			return rule.tile
		}
	}
	return wallFallback
}

// WallGlyph returns the glyph of WallDescription
func WallGlyph(x, y int, cells *world.CellGrid) world.Glyph {
	return WallDescription(x, y, cells).Glyph
}
