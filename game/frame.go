package game

// Cue is a sound request raised by the evaluator.
type Cue uint8

const (
	CueNone Cue = iota
	// CueStart plays the score chime and starts the music loop.
	CueStart
	// CueScore plays the score chime.
	CueScore
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueScore:
		return "score"
	default:
		return "none"
	}
}

// Event records a start or a score during Update.
type Event struct {
	Cue   Cue
	Slot  int
	Score uint32
}

// ModelDraw is one mesh to draw with its per-polygon colors.
type ModelDraw struct {
	Model  Model
	Colors []RGB
}

// Text is a string at a top-left pixel position.
type Text struct {
	X, Y  int
	Scale float32
	S     string
}

// Frame is the output of one draw pass. It is owned by the Game and
// overwritten by the next Draw.
type Frame struct {
	Background RGB
	AngleX     float32
	AngleY     float32
	Models     []ModelDraw
	Texts      []Text
	Events     []Event
	Started    bool
}
