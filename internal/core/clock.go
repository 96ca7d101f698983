package core

import "time"

// FrameClock is the authoritative source of the current simulation frame.
// Frames never go backwards but may advance by more than one between reads.
type FrameClock interface {
	Frame() uint64
}

// WallClock derives the frame from elapsed wall time at a fixed rate.
// Long pauses between reads (a suspended terminal, a slow SSH link) show up
// as frame jumps.
type WallClock struct {
	start time.Time
	fps   int
	now   func() time.Time
}

// NewWallClock starts a clock at frame 0.
func NewWallClock(fps int) *WallClock {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &WallClock{start: time.Now(), fps: fps, now: time.Now}
}

// Frame returns elapsed time expressed in frames.
func (c *WallClock) Frame() uint64 {
	elapsed := c.now().Sub(c.start)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed * time.Duration(c.fps) / time.Second)
}

// ManualClock is advanced explicitly. Used by tests, replays and headless runs.
type ManualClock struct {
	frame uint64
}

// NewManualClock creates a clock at the given frame.
func NewManualClock(frame uint64) *ManualClock {
	return &ManualClock{frame: frame}
}

// Frame returns the current frame.
func (c *ManualClock) Frame() uint64 {
	return c.frame
}

// Advance moves the clock forward by n frames.
func (c *ManualClock) Advance(n uint64) {
	c.frame += n
}

// Set jumps to the given frame; earlier frames are ignored.
func (c *ManualClock) Set(frame uint64) {
	if frame > c.frame {
		c.frame = frame
	}
}
