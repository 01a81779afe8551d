package anim

// State represents the lifecycle state of an animation unit.
//
// Transitions: Idle → Running → Stopping → Stopped. Stopped is re-entrant:
// a stopped unit may be started again, returning it to Running.
type State int

const (
	// Idle is the constructed-but-never-started state.
	Idle State = iota
	// Running means the tick loop is active and emitting frames.
	Running
	// Stopping means cancellation has been requested but the tick loop
	// has not yet acknowledged it.
	Stopping
	// Stopped means the tick loop has exited and the surface is clean.
	Stopped
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Kind identifies the animation variant a unit renders. The set is closed;
// every kind ships with the engine.
type Kind int

const (
	KindSpinner Kind = iota
	KindProgressBar
	KindPulse
	KindWave
	KindParticle
	KindGeometric
	KindWaveform
	KindAudioVisualizer
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSpinner:
		return "spinner"
	case KindProgressBar:
		return "progress"
	case KindPulse:
		return "pulse"
	case KindWave:
		return "wave"
	case KindParticle:
		return "particle"
	case KindGeometric:
		return "geometric"
	case KindWaveform:
		return "waveform"
	case KindAudioVisualizer:
		return "visualizer"
	default:
		return "unknown"
	}
}
