// Package game is the Siikasaurus core: a target combination of direction
// and buttons is shown on a rotating pad model, players race to hold it, and
// the first to match scores. The package has no I/O. Callers feed it an Input
// per frame and render the Frame it returns.
package game

import (
	"math/rand"

	"siikasaurus/pad"
)

// MaxDevices is the number of controller slots: two six-port multitaps.
const MaxDevices = 12

// Model identifies one of the meshes the draw pass may show.
type Model int

const (
	ModelBase Model = iota
	ModelUp
	ModelRight
	ModelDown
	ModelLeft
	ModelA
	ModelB
	ModelC
	ModelX
	ModelY
	ModelZ
	ModelCount
)

var modelNames = [ModelCount]string{"base", "up", "right", "down", "left", "a", "b", "c", "x", "y", "z"}

func (m Model) String() string {
	if m < 0 || m >= ModelCount {
		return "model?"
	}
	return modelNames[m]
}

const (
	DefaultRotationStep       = 0.033
	DefaultRotationMultiplier = 0.6
)

// Options configures a Game.
type Options struct {
	// Rand supplies target draws. Nil means a source seeded with Seed.
	Rand Rand
	Seed int64

	// RotationStep is added to or taken from both multipliers per frame
	// while R or L is held.
	RotationStep float32
	// RotationMultiplier is the initial value of both multipliers.
	RotationMultiplier float32

	// WinnableTargets draws targets every pad can reproduce.
	WinnableTargets bool
	// Debug adds the target and snapshot digits to every frame.
	Debug bool

	// PolygonCounts sizes the per-model color buffers.
	PolygonCounts [ModelCount]int
}

// Input is everything the evaluator reads in one frame.
type Input struct {
	// Slots lists present devices in ascending slot order.
	Slots []pad.Slot
}

// Rotation is the model orientation and its per-axis speed multipliers.
type Rotation struct {
	AngleX, AngleY float32
	MultX, MultY   float32
}

// Game holds all state of one session.
type Game struct {
	opts Options
	rng  Rand

	started bool
	target  ButtonState
	players [MaxDevices]ButtonState
	scores  [MaxDevices]uint32

	present  [MaxDevices]bool
	nPresent int
	multitap bool
	hue      HSV
	bgHue    HSV
	rot      Rotation
	events   []Event
	colors   [ModelCount][]RGB
	frame    Frame

	labels     [MaxDevices]string
	labelScore [MaxDevices]uint32
	labelNum   [MaxDevices]int
}

// New returns a Game in the idle state with all scores at zero.
func New(opts Options) *Game {
	if opts.RotationStep == 0 {
		opts.RotationStep = DefaultRotationStep
	}
	if opts.RotationMultiplier == 0 {
		opts.RotationMultiplier = DefaultRotationMultiplier
	}
	g := &Game{
		opts:  opts,
		rng:   opts.Rand,
		hue:   HSV{H: 0, S: 255, V: 255},
		bgHue: HSV{H: 128, S: 255, V: 255},
		rot: Rotation{
			MultX: opts.RotationMultiplier,
			MultY: opts.RotationMultiplier,
		},
		events: make([]Event, 0, 2),
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(opts.Seed))
	}
	for m := range g.colors {
		g.colors[m] = make([]RGB, opts.PolygonCounts[m])
	}
	g.frame.Models = make([]ModelDraw, 0, ModelCount)
	return g
}

// Tick runs the evaluator and then the draw pass.
func (g *Game) Tick(in Input) *Frame {
	g.Update(in)
	return g.Draw()
}

func (g *Game) Started() bool { return g.started }

func (g *Game) Target() ButtonState { return g.target }

// Player returns the last snapshot taken for slot i.
func (g *Game) Player(i int) ButtonState {
	if i < 0 || i >= MaxDevices {
		return ButtonState{}
	}
	return g.players[i]
}

func (g *Game) Score(i int) uint32 {
	if i < 0 || i >= MaxDevices {
		return 0
	}
	return g.scores[i]
}

func (g *Game) Scores() [MaxDevices]uint32 { return g.scores }

func (g *Game) Rotation() Rotation { return g.rot }

// Hues returns the foreground master hue and the background hue.
func (g *Game) Hues() (fg, bg uint8) { return g.hue.H, g.bgHue.H }

// Events returns the events raised by the last Update. The slice is reused.
func (g *Game) Events() []Event { return g.events }

func (g *Game) randomize() ButtonState {
	if g.opts.WinnableTargets {
		return RandomizeWinnableTarget(g.rng)
	}
	return RandomizeTarget(g.rng)
}
