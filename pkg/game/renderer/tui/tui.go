// Package tui prints generated maps to an ANSI terminal.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"runedelve/pkg/engine/world"
)

// MarkerIcon is drawn over the marked position
const MarkerIcon = '@'

// dynamicGet is used for runtime translation key lookups.
// Tile names are translation keys held in data, not constants.
var dynamicGet = gotext.Get

// Options control how a map is previewed
type Options struct {
	// NoColor prints bare glyphs
	NoColor bool
	// Legend appends a translated key of every tile kind on the map
	Legend bool
	// Marker, if set, is drawn as MarkerIcon
	Marker *world.Position
	// Dim reports positions drawn with faded colours
	Dim func(p world.Position) bool
}

type styleKey struct {
	fg, bg world.Color
}

// Preview renders maps as rows of coloured glyphs
type Preview struct {
	opts Options

	colorMarker color.Style
	colorLegend color.Style
	colorSubtle color.Style

	styles map[styleKey]*color.RGBStyle
}

// New creates a preview renderer
func New(opts Options) *Preview {
	return &Preview{
		opts:        opts,
		colorMarker: color.Style{color.FgGreen, color.BgBlack, color.OpBold},
		colorLegend: color.Style{color.FgMagenta},
		colorSubtle: color.Style{color.FgGray, color.OpBold},
		styles:      make(map[styleKey]*color.RGBStyle),
	}
}

// rgbStyle returns a cached style for a glyph's colours
func (p *Preview) rgbStyle(fg, bg world.Color) *color.RGBStyle {
	key := styleKey{fg, bg}
	if s, ok := p.styles[key]; ok {
		return s
	}
	fr, fgr, fb := fg.RGB()
	br, bgr, bb := bg.RGB()
	s := color.NewRGBStyle(color.RGB(fr, fgr, fb), color.RGB(br, bgr, bb))
	p.styles[key] = s
	return s
}

// renderTile returns the printable form of the tile at pos
func (p *Preview) renderTile(m *world.Map, pos world.Position) string {
	if p.opts.Marker != nil && *p.opts.Marker == pos {
		if p.opts.NoColor {
			return string(MarkerIcon)
		}
		return p.colorMarker.Sprint(string(MarkerIcon))
	}

	tile := m.GetTile(pos)
	if tile == nil {
		if p.opts.NoColor {
			return " "
		}
		return p.rgbStyle(world.ColorUnseen, world.ColorUnseen).Sprint(" ")
	}

	glyph := tile.Glyph
	if p.opts.NoColor {
		return string(glyph.Code)
	}
	fg, bg := glyph.Foreground, glyph.Background
	if p.opts.Dim != nil && p.opts.Dim(pos) {
		fg = fg.Multiply(world.ColorFog)
		bg = bg.Multiply(world.ColorFog)
	}
	return p.rgbStyle(fg, bg).Sprint(string(glyph.Code))
}

// Render returns the map as newline-terminated rows, followed by the legend if enabled
func (p *Preview) Render(m *world.Map) string {
	var sb strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			sb.WriteString(p.renderTile(m, world.Pos(x, y)))
		}
		sb.WriteByte('\n')
	}
	if p.opts.Legend {
		sb.WriteByte('\n')
		sb.WriteString(p.Legend(m))
	}
	return sb.String()
}

// Legend lists each tile kind on the map once, in the order first seen
func (p *Preview) Legend(m *world.Map) string {
	var sb strings.Builder
	seen := mapset.New[string]()

	p.writeLegendLine(&sb, p.colorSubtle, gotext.Get("PREVIEW_LEGEND")+":")
	m.ForEach(func(_ world.Position, tile *world.Tile) {
		if tile == nil {
			return
		}
		name := tile.Description.Name
		if seen.Has(name) {
			return
		}
		seen.Put(name)
		p.writeLegendLine(&sb, p.colorLegend, fmt.Sprintf("  %c  %s", tile.Glyph.Code, dynamicGet(name)))
	})
	if p.opts.Marker != nil {
		p.writeLegendLine(&sb, p.colorLegend, fmt.Sprintf("  %c  %s", MarkerIcon, gotext.Get("PREVIEW_MARKER")))
	}
	return sb.String()
}

func (p *Preview) writeLegendLine(sb *strings.Builder, style color.Style, line string) {
	if p.opts.NoColor {
		sb.WriteString(line)
	} else {
		sb.WriteString(style.Sprint(line))
	}
	sb.WriteByte('\n')
}

// Print writes Render output to w
func (p *Preview) Print(w io.Writer, m *world.Map) error {
	_, err := io.WriteString(w, p.Render(m))
	return err
}
