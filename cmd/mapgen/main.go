package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"runedelve/pkg/engine/terminal"
	"runedelve/pkg/engine/world"
	"runedelve/pkg/game/devtools"
	"runedelve/pkg/game/generator"
	"runedelve/pkg/game/renderer/tui"
	"runedelve/pkg/logger"
)

// Rows kept free below a terminal-fitted map for the summary line and prompt
const reservedRows = 3

type options struct {
	width        int
	height       int
	seed         int64
	roomAttempts int
	dump         string
	noColor      bool
	legend       bool
	locale       string
	localesDir   string
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	fs.IntVar(&opts.width, "width", 0, "map width in cells (0 fits the terminal)")
	fs.IntVar(&opts.height, "height", 0, "map height in cells (0 fits the terminal)")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.IntVar(&opts.roomAttempts, "room-attempts", generator.DefaultRoomAttempts, "consecutive failed room placements before giving up")
	fs.StringVar(&opts.dump, "dump", "", "write a debug dump of the map to this file")
	fs.BoolVar(&opts.noColor, "no-color", false, "print glyphs without colour")
	fs.BoolVar(&opts.legend, "legend", false, "print a key of tile glyphs below the map")
	fs.StringVar(&opts.locale, "locale", "en_GB", "language for tile names and labels")
	fs.StringVar(&opts.localesDir, "locales-dir", "locales", "directory holding <locale>/default.po")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.width < 0 || opts.height < 0 {
		return opts, fmt.Errorf("width and height must not be negative: %w", generator.ErrInvalidSize)
	}
	return opts, nil
}

func initGettext(dir, locale string) {
	gotext.Configure(dir, locale, "default")
}

// mapSize resolves zero dimensions against the terminal
func mapSize(opts options) (width, height int) {
	width, height = opts.width, opts.height
	if width > 0 && height > 0 {
		return width, height
	}
	fitWidth, fitHeight := terminal.MapSize(0, reservedRows)
	if width == 0 {
		width = fitWidth
	}
	if height == 0 {
		height = fitHeight
	}
	return width, height
}

func run(opts options, out io.Writer, log logrus.FieldLogger) error {
	width, height := mapSize(opts)

	cfg := generator.NewConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = opts.seed
	cfg.RoomAttempts = opts.roomAttempts
	cfg.Logger = log

	gen := generator.New(cfg)
	res, err := gen.Run(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	previewOpts := tui.Options{NoColor: opts.noColor, Legend: opts.legend}

	// Mark a spawn point and fade everything it cannot reach
	rng := rand.New(rand.NewSource(gen.Seed()))
	if spawn, ok := res.Map.RandomWalkablePosition(rng, world.DefaultSpawnAttempts); ok {
		reachable := generator.Reachable(res.Cells, spawn)
		previewOpts.Marker = &spawn
		previewOpts.Dim = func(p world.Position) bool {
			return res.Cells.IsFloor(p) && !reachable.Has(p)
		}
	} else {
		log.Warn("no walkable tile for a spawn marker")
	}

	if err := tui.New(previewOpts).Print(out, res.Map); err != nil {
		return err
	}
	fmt.Fprintln(out, gotext.Get("SUMMARY", res.Report.Seed, width, height, len(res.Report.Rooms.Rooms), res.Report.Combine.Outcome))

	if opts.dump != "" {
		path, err := devtools.DumpMapToFile(opts.dump, res)
		if err != nil {
			return err
		}
		log.WithField("path", path).Info("map dump written")
	}
	return nil
}

func main() {
	logger.Init()

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid arguments")
	}

	initGettext(opts.localesDir, opts.locale)

	if err := run(opts, os.Stdout, logger.Log); err != nil {
		logger.Log.WithError(err).Fatal("map generation failed")
	}
}
