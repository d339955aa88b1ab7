// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"runedelve/pkg/engine/world"
	"runedelve/pkg/game/generator"
)

// DefaultDumpFilename is used when no dump path is given
const DefaultDumpFilename = "map.txt"

// ErrNoResult is returned when asked to dump a nil generation result
var ErrNoResult = errors.New("no generation result to dump")

// Symbols used by the cell and topology maps
const (
	symbolWall     = '#'
	symbolFloor    = '.'
	symbolDoor     = 'D'
	symbolOverflow = '+'
)

// regionSymbol returns a single character for a region id: 1-9 then a-z, '+' beyond that
func regionSymbol(id int) rune {
	switch {
	case id <= 0:
		return symbolWall
	case id < 36:
		return rune(strconv.FormatInt(int64(id), 36)[0])
	default:
		return symbolOverflow
	}
}

// writeCellMap writes the floor/wall layout with doorways marked
func writeCellMap(w io.Writer, cells *world.CellGrid, doors mapset.Set[world.Position]) {
	for y := 0; y < cells.Height(); y++ {
		for x := 0; x < cells.Width(); x++ {
			p := world.Pos(x, y)
			switch {
			case doors.Has(p):
				fmt.Fprintf(w, "%c", symbolDoor)
			case cells.IsFloor(p):
				fmt.Fprintf(w, "%c", symbolFloor)
			default:
				fmt.Fprintf(w, "%c", symbolWall)
			}
		}
		fmt.Fprintln(w)
	}
}

// writeGlyphMap writes the autotiled glyph of every tile
func writeGlyphMap(w io.Writer, m *world.Map) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			tile := m.GetTile(world.Pos(x, y))
			if tile == nil {
				fmt.Fprint(w, " ")
				continue
			}
			fmt.Fprintf(w, "%c", tile.Glyph.Code)
		}
		fmt.Fprintln(w)
	}
}

// writeTopologyMap writes the region id of every floor cell
func writeTopologyMap(w io.Writer, topo *generator.TopologyGrid, b world.Bounds) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			fmt.Fprintf(w, "%c", regionSymbol(topo.At(world.Pos(x, y))))
		}
		fmt.Fprintln(w)
	}
}

// DumpMap writes a full debug dump of a generation run: metadata, legend,
// glyph map, cell map, topology map and per-stage details.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func DumpMap(out io.Writer, res *generator.Result) error {
	if res == nil || res.Map == nil || res.Cells == nil {
		return ErrNoResult
	}

	f := bufio.NewWriter(out)
	r := res.Report

	doors := mapset.New[world.Position]()
	for _, d := range r.Combine.Doors {
		doors.Put(d)
	}

	fmt.Fprintf(f, "=== %s ===\n", gotext.Get("DUMP_TITLE"))
	fmt.Fprintln(f, "")

	// --- Metadata ---
	fmt.Fprintf(f, "--- %s ---\n", gotext.Get("DUMP_METADATA"))
	fmt.Fprintf(f, "seed: %d\n", r.Seed)
	fmt.Fprintf(f, "width: %d\n", r.Width)
	fmt.Fprintf(f, "height: %d\n", r.Height)
	fmt.Fprintf(f, "coordinate_system: x,y (0-based, x=column, y=row, y grows south)\n")
	fmt.Fprintf(f, "rooms: %d\n", len(r.Rooms.Rooms))
	fmt.Fprintf(f, "room_attempts: %d\n", r.Rooms.Attempts)
	fmt.Fprintf(f, "maze_runs: %d\n", len(r.Mazes))
	fmt.Fprintf(f, "maze_forced_stops: %d\n", r.ForcedStops())
	fmt.Fprintf(f, "regions: %d\n", r.Combine.Regions)
	fmt.Fprintf(f, "merged: %d\n", r.Combine.Merged)
	fmt.Fprintf(f, "merge_attempts: %d\n", r.Combine.Attempts)
	fmt.Fprintf(f, "merge_budget: %d\n", r.Combine.Budget)
	fmt.Fprintf(f, "doorways: %d\n", len(r.Combine.Doors))
	fmt.Fprintf(f, "outcome: %s\n", r.Combine.Outcome)
	fmt.Fprintf(f, "floor_cells: %d\n", r.Floor)
	fmt.Fprintf(f, "walkable_tiles: %d\n", res.Map.CountWalkable())
	fmt.Fprintln(f, "")

	// --- Legend ---
	fmt.Fprintf(f, "--- %s ---\n", gotext.Get("DUMP_LEGEND"))
	fmt.Fprintf(f, "%c = %s  %c = %s  %c = %s  1-9,a-z = %s  %c = %s\n",
		symbolFloor, gotext.Get("TILE_FLOOR"),
		symbolWall, gotext.Get("TILE_WALL"),
		symbolDoor, gotext.Get("TILE_DOORWAY"),
		gotext.Get("DUMP_REGION_ID"),
		symbolOverflow, gotext.Get("DUMP_REGION_OVERFLOW"))
	fmt.Fprintln(f, "")

	fmt.Fprintf(f, "--- %s ---\n", gotext.Get("DUMP_GLYPH_MAP"))
	writeGlyphMap(f, res.Map)
	fmt.Fprintln(f, "")

	fmt.Fprintf(f, "--- %s ---\n", gotext.Get("DUMP_CELL_MAP"))
	writeCellMap(f, res.Cells, doors)
	fmt.Fprintln(f, "")

	if res.Topology != nil {
		fmt.Fprintf(f, "--- %s ---\n", gotext.Get("DUMP_TOPOLOGY_MAP"))
		writeTopologyMap(f, res.Topology, res.Cells.Bounds())
		fmt.Fprintln(f, "")
	}

	// --- Stages ---
	fmt.Fprintf(f, "%s:\n", gotext.Get("DUMP_ROOMS"))
	for _, room := range r.Rooms.Rooms {
		fmt.Fprintf(f, "  x: %d y: %d width: %d height: %d\n", room.X, room.Y, room.Width, room.Height)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintf(f, "%s:\n", gotext.Get("DUMP_MAZES"))
	for _, maze := range r.Mazes {
		fmt.Fprintf(f, "  seed: %s carved: %d final: %s\n", maze.Seed, maze.Carved, maze.Final)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintf(f, "%s:\n", gotext.Get("DUMP_DOORWAYS"))
	for _, d := range r.Combine.Doors {
		fmt.Fprintf(f, "  x: %d y: %d\n", d.X, d.Y)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintf(f, "%s:\n", gotext.Get("DUMP_UNMERGED"))
	if len(r.Combine.Unmerged) == 0 {
		fmt.Fprintln(f, "  (none)")
	}
	for _, id := range r.Combine.Unmerged {
		cells := 0
		if res.Topology != nil {
			cells = res.Topology.Count(id)
		}
		fmt.Fprintf(f, "  region: %d cells: %d\n", id, cells)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintf(f, "=== %s ===\n", gotext.Get("DUMP_END"))

	return f.Flush()
}

// DumpMapToFile writes DumpMap output to filename (DefaultDumpFilename if empty)
// and returns the absolute path written.
func DumpMapToFile(filename string, res *generator.Result) (string, error) {
	if res == nil {
		return "", ErrNoResult
	}
	if filename == "" {
		filename = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, res); err != nil {
		return absPath, fmt.Errorf("dump %s: %w", absPath, err)
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
