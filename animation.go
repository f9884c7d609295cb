package spritebatch

import (
	"fmt"
	"math"
)

// PlayMode selects how an Animation maps run time to a key frame.
type PlayMode uint8

const (
	PlayNormal       PlayMode = iota // first to last, then hold the last frame
	PlayReversed                     // last to first, then hold the first frame
	PlayLoop                         // first to last, repeating
	PlayLoopReversed                 // last to first, repeating
	PlayLoopPingPong                 // first to last and back, repeating
)

var playModeNames = [...]string{"normal", "reversed", "loop", "loop-reversed", "loop-ping-pong"}

func (m PlayMode) String() string {
	if int(m) < len(playModeNames) {
		return playModeNames[m]
	}
	return fmt.Sprintf("PlayMode(%d)", m)
}

// Looping reports whether the mode repeats forever.
func (m PlayMode) Looping() bool {
	return m == PlayLoop || m == PlayLoopReversed || m == PlayLoopPingPong
}

// maxFrameNumber bounds frame numbers so long run times cannot overflow int.
const maxFrameNumber = 1 << 52

// Animation is an ordered list of key frames shown for a fixed duration each.
// Frame lookup is a pure function of run time; an Animation holds no playback
// state and can be shared by any number of sprites.
type Animation struct {
	// Mode is the play mode used by KeyFrame.
	Mode PlayMode

	frameDuration float32
	keyFrames     []TextureRegion
}

// NewAnimation returns an animation showing each of keyFrames for
// frameDuration seconds. It fails with ErrInvalidFrameDuration if
// frameDuration is not positive and with ErrNoKeyFrames if keyFrames is
// empty. The frame slice is copied.
func NewAnimation(frameDuration float32, keyFrames []TextureRegion, mode PlayMode) (*Animation, error) {
	if !(frameDuration > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrameDuration, frameDuration)
	}
	if len(keyFrames) == 0 {
		return nil, ErrNoKeyFrames
	}
	return &Animation{
		Mode:          mode,
		frameDuration: frameDuration,
		keyFrames:     append([]TextureRegion(nil), keyFrames...),
	}, nil
}

// frameNumber returns floor(runTime / frameDuration). Negative run times
// count as zero. The quotient is taken in float32 so exact multiples of the
// frame duration, such as 0.5 / 0.1, land on their frame.
func (a *Animation) frameNumber(runTime float32) int {
	if !(runTime > 0) {
		return 0
	}
	n := math.Floor(float64(runTime / a.frameDuration))
	if n > maxFrameNumber {
		n = maxFrameNumber
	}
	return int(n)
}

// KeyFrameIndex returns the index of the key frame shown at runTime seconds.
func (a *Animation) KeyFrameIndex(runTime float32) int {
	count := len(a.keyFrames)
	if count == 1 {
		return 0
	}
	n := a.frameNumber(runTime)

	switch a.Mode {
	case PlayReversed:
		return max(count-n-1, 0)
	case PlayLoop:
		return n % count
	case PlayLoopReversed:
		return count - n%count - 1
	case PlayLoopPingPong:
		cycle := n % (2*count - 2)
		if cycle >= count {
			return count - 2 - (cycle - count)
		}
		return cycle
	default:
		return min(count-1, n)
	}
}

// KeyFrame returns the region shown at runTime seconds.
func (a *Animation) KeyFrame(runTime float32) TextureRegion {
	return a.keyFrames[a.KeyFrameIndex(runTime)]
}

// IsFinished reports whether a non-looping animation has reached its final
// frame for good at runTime. Looping animations never finish.
func (a *Animation) IsFinished(runTime float32) bool {
	if a.Mode.Looping() {
		return false
	}
	return a.frameNumber(runTime) >= len(a.keyFrames)-1
}

// Duration returns the length of one pass through all key frames, in seconds.
func (a *Animation) Duration() float32 {
	return a.frameDuration * float32(len(a.keyFrames))
}

// FrameDuration returns how long each key frame is shown, in seconds.
func (a *Animation) FrameDuration() float32 {
	return a.frameDuration
}

// KeyFrames returns the key frames. The slice is shared with the animation.
func (a *Animation) KeyFrames() []TextureRegion {
	return a.keyFrames
}

// FrameCount returns the number of key frames.
func (a *Animation) FrameCount() int {
	return len(a.keyFrames)
}
