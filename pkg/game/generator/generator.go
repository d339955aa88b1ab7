package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"runedelve/pkg/engine/world"
	"runedelve/pkg/logger"
)

// ErrInvalidSize is returned for maps with a non-positive width or height
var ErrInvalidSize = errors.New("map dimensions must be positive")

// Default map size. Odd sizes line up with the odd room grid.
const (
	DefaultWidth  = 79
	DefaultHeight = 41
)

// Generator is the interface for map generation algorithms
type Generator interface {
	Generate(width, height int) (*world.Map, error)
	Name() string
}

// Config holds generation options
type Config struct {
	Width  int
	Height int

	// Seed for the random source. 0 picks a seed from the clock.
	Seed int64

	// RoomAttempts is the consecutive failure budget of room placement. 0 disables rooms.
	RoomAttempts int
	// MazeIterations caps each maze run
	MazeIterations int
	// MergeBudgetFactor bounds topology merging to regions*factor attempts
	MergeBudgetFactor int

	Logger logrus.FieldLogger
}

// NewConfig returns a Config with the default budgets
func NewConfig() Config {
	return Config{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		RoomAttempts:      DefaultRoomAttempts,
		MazeIterations:    DefaultMazeIterations,
		MergeBudgetFactor: DefaultMergeBudgetFactor,
		Logger:            logger.Log,
	}
}

// Report describes what each stage of a run did
type Report struct {
	Seed    int64
	Width   int
	Height  int
	Rooms   RoomReport
	Mazes   []MazeReport
	Combine CombineReport
	Floor   int
}

// ForcedStops returns how many maze runs hit their iteration ceiling
func (r Report) ForcedStops() int {
	n := 0
	for _, m := range r.Mazes {
		if m.Final == ForcedStop {
			n++
		}
	}
	return n
}

// Connected returns true if topology merging left a single region
func (r Report) Connected() bool {
	return r.Combine.Outcome == Connected
}

// Result is everything a generation run produced
type Result struct {
	Map      *world.Map
	Cells    *world.CellGrid
	Topology *TopologyGrid
	Report   Report
}

// MapGenerator runs rooms, then mazes, then region merging, then autotiling.
// A MapGenerator is not safe for concurrent use; create one per goroutine.
type MapGenerator struct {
	cfg  Config
	seed int64
	rng  *rand.Rand
	log  logrus.FieldLogger
}

var _ Generator = (*MapGenerator)(nil)

// New creates a map generator from cfg
func New(cfg Config) *MapGenerator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Log
	}
	return &MapGenerator{
		cfg:  cfg,
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
		log:  log,
	}
}

// Generate builds a map of the given size from ambient randomness with default budgets
func Generate(width, height int) (*world.Map, error) {
	return New(NewConfig()).Generate(width, height)
}

// Name returns the name of this generator
func (g *MapGenerator) Name() string {
	return "Rooms and Mazes"
}

// Seed returns the seed of the random source
func (g *MapGenerator) Seed() int64 {
	return g.seed
}

// Generate builds a map of the given size
func (g *MapGenerator) Generate(width, height int) (*world.Map, error) {
	res, err := g.Run(width, height)
	if err != nil {
		return nil, err
	}
	return res.Map, nil
}

// Run builds a map and returns the intermediate grids and a stage report
func (g *MapGenerator) Run(width, height int) (*Result, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("generate %dx%d: %w", width, height, ErrInvalidSize)
	}

	log := g.log.WithFields(logrus.Fields{
		"seed":   g.seed,
		"width":  width,
		"height": height,
	})
	report := Report{Seed: g.seed, Width: width, Height: height}

	cells := world.NewCellGrid(width, height)

	rooms := NewRoomGenerator(cells, g.rng, g.cfg.RoomAttempts)
	report.Rooms = rooms.Generate()
	log.WithFields(logrus.Fields{
		"rooms":    len(report.Rooms.Rooms),
		"attempts": report.Rooms.Attempts,
	}).Debug("room placement exhausted")

	for {
		seed, ok := FindCarveableSpot(cells, g.rng)
		if !ok {
			break
		}
		maze := NewMazeGenerator(cells, seed, g.rng, g.cfg.MazeIterations, log)
		report.Mazes = append(report.Mazes, maze.Run())
	}
	log.WithField("mazes", len(report.Mazes)).Debug("maze carving complete")

	combinator := NewTopologyCombinator(cells, g.rng, g.cfg.MergeBudgetFactor, log)
	combinator.Initialize()
	report.Combine = combinator.Combine()
	report.Floor = cells.CountFloor()

	m := BuildMap(cells)

	log.WithFields(logrus.Fields{
		"rooms":    len(report.Rooms.Rooms),
		"mazes":    len(report.Mazes),
		"regions":  report.Combine.Regions,
		"merged":   report.Combine.Merged,
		"floor":    report.Floor,
		"outcome":  report.Combine.Outcome.String(),
		"attempts": report.Combine.Attempts,
	}).Info("map generated")

	return &Result{
		Map:      m,
		Cells:    cells,
		Topology: combinator.Topology(),
		Report:   report,
	}, nil
}

// BuildMap converts a finished cell grid into tiles: floors become walkable
// floor tiles and walls get a glyph chosen from their neighbours.
func BuildMap(cells *world.CellGrid) *world.Map {
	m := world.NewMap(cells.Width(), cells.Height())
	cells.ForEach(func(p world.Position, s world.CellState) {
		if s == world.Floor {
			m.SetTile(p, world.CreateTile(world.TileFloor))
			return
		}
		m.SetTile(p, world.CreateTile(WallDescription(p.X, p.Y, cells)))
	})
	return m
}
