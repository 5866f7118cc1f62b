package starflight

// SoundCue names one of the demo's sounds.
type SoundCue int

const (
	CueEngineHum SoundCue = iota
	CueWarp
	CueImpact
)

func (c SoundCue) String() string {
	switch c {
	case CueEngineHum:
		return "engine"
	case CueWarp:
		return "warp"
	case CueImpact:
		return "impact"
	}
	return "unknown"
}

// SoundCues lists every cue.
var SoundCues = []SoundCue{CueEngineHum, CueWarp, CueImpact}

// SoundPlayer plays cues without blocking the frame.
type SoundPlayer interface {
	Play(cue SoundCue)
	// SetEngineLevel sets the engine hum volume in [0, 1].
	SetEngineLevel(level float64)
}

// NopPlayer discards every cue.
type NopPlayer struct{}

func (NopPlayer) Play(SoundCue)          {}
func (NopPlayer) SetEngineLevel(float64) {}
