package constant

import "time"

// Gameplay defaults and limits. Live mutation and config loading clamp
// against the same values.
const (
	DefaultBoardWidth  = 10
	DefaultBoardHeight = 10
	MinBoardDim        = 1

	DefaultTickDelay = 250 * time.Millisecond
	DelayStep        = 20 * time.Millisecond
	MinTickDelay     = DelayStep

	InitialAppleX = 5
	InitialAppleY = 5
)

const (
	// AudioSampleRate is the speaker sample rate for synthesized cues
	AudioSampleRate = 44100

	// EventChannelSize buffers terminal events between the poll goroutine
	// and the input actor
	EventChannelSize = 256
)
