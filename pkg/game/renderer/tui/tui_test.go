package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"runedelve/pkg/engine/world"
)

func testMap() *world.Map {
	m := world.NewMap(3, 2)
	m.SetTile(world.Pos(0, 0), world.CreateTile(world.TileWallCornerSE))
	m.SetTile(world.Pos(1, 0), world.CreateTile(world.TileWallHorizontal))
	m.SetTile(world.Pos(2, 0), world.CreateTile(world.TileWallCornerSW))
	m.SetTile(world.Pos(0, 1), world.CreateTile(world.TileWallVertical))
	m.SetTile(world.Pos(1, 1), world.CreateTile(world.TileFloor))
	m.SetTile(world.Pos(2, 1), world.CreateTile(world.TileWallVertical))
	return m
}

func TestRender_NoColor(t *testing.T) {
	got := New(Options{NoColor: true}).Render(testMap())
	want := "┌─┐\n│.│\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_ColorMatchesGlyphs(t *testing.T) {
	p := New(Options{})
	got := color.ClearCode(p.Render(testMap()))
	if want := "┌─┐\n│.│\n"; got != want {
		t.Errorf("Render without codes = %q, want %q", got, want)
	}
	if len(p.styles) != 2 {
		t.Errorf("cached %d styles, want 2 (floor and wall)", len(p.styles))
	}
}

func TestRender_Marker(t *testing.T) {
	marker := world.Pos(1, 1)
	got := color.ClearCode(New(Options{Marker: &marker}).Render(testMap()))
	if want := "┌─┐\n│@│\n"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_DimCachesFadedStyles(t *testing.T) {
	p := New(Options{Dim: func(pos world.Position) bool { return pos.Y == 1 }})
	got := color.ClearCode(p.Render(testMap()))
	if want := "┌─┐\n│.│\n"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
	faded := styleKey{world.ColorFloorFg.Multiply(world.ColorFog), world.ColorFloorBg.Multiply(world.ColorFog)}
	if _, ok := p.styles[faded]; !ok {
		t.Error("dimmed floor style was not used")
	}
}

func TestLegend(t *testing.T) {
	marker := world.Pos(1, 1)
	p := New(Options{NoColor: true, Legend: true, Marker: &marker})
	out := p.Render(testMap())

	parts := strings.SplitN(out, "\n\n", 2)
	if len(parts) != 2 {
		t.Fatalf("Render output has no legend: %q", out)
	}
	lines := strings.Split(strings.TrimSuffix(parts[1], "\n"), "\n")
	// header, corner, horizontal, vertical, floor, marker; the two corners share a name
	if len(lines) != 6 {
		t.Fatalf("legend has %d lines, want 6:\n%s", len(lines), parts[1])
	}
	if !strings.HasPrefix(lines[1], "  ┌  ") {
		t.Errorf("first legend entry = %q, want the first tile seen", lines[1])
	}
	if !strings.HasPrefix(lines[5], "  @  ") {
		t.Errorf("last legend entry = %q, want the marker", lines[5])
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	if err := New(Options{NoColor: true}).Print(&buf, testMap()); err != nil {
		t.Fatalf("Print error: %v", err)
	}
	if buf.String() != "┌─┐\n│.│\n" {
		t.Errorf("Print wrote %q", buf.String())
	}
}
