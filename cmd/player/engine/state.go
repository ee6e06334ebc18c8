package engine

// State is the playback state. It is derived from the sink, never stored.
type State string

const (
	StateStopped State = "stopped"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
)
