package app

import "time"

// fpsWindow is how often the frame rate average is refreshed.
const fpsWindow = time.Second

// Time tracks frame timing for an application.
type Time struct {
	delta  time.Duration
	total  time.Duration
	frames uint64

	last time.Time

	windowStart  time.Time
	windowFrames int
	fps          float64
}

func newTime(now time.Time) *Time {
	return &Time{last: now, windowStart: now}
}

// tick starts a new frame at now.
func (t *Time) tick(now time.Time) {
	t.delta = now.Sub(t.last)
	if t.delta < 0 {
		t.delta = 0
	}
	t.last = now
	t.total += t.delta
	t.frames++

	t.windowFrames++
	if elapsed := now.Sub(t.windowStart); elapsed >= fpsWindow {
		t.fps = float64(t.windowFrames) / elapsed.Seconds()
		t.windowStart = now
		t.windowFrames = 0
	}
}

// Delta returns the time elapsed since the previous frame.
func (t *Time) Delta() time.Duration { return t.delta }

// DeltaSeconds returns Delta in seconds, the unit used by animations and
// tweens.
func (t *Time) DeltaSeconds() float32 { return float32(t.delta.Seconds()) }

// Total returns the time elapsed since the first frame.
func (t *Time) Total() time.Duration { return t.total }

// TotalSeconds returns Total in seconds.
func (t *Time) TotalSeconds() float32 { return float32(t.total.Seconds()) }

// Frames returns the number of frames so far.
func (t *Time) Frames() uint64 { return t.frames }

// FPS returns the frame rate averaged over the last full second.
func (t *Time) FPS() float64 { return t.fps }

// FrameTime returns the average frame duration matching FPS.
func (t *Time) FrameTime() time.Duration {
	if t.fps == 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / t.fps)
}
