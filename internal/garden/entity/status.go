package entity

import "fmt"

// StatusBar holds the score and the latest message for the HUD.
type StatusBar struct {
	Score        int    `msgpack:"score"`
	Harvested    int    `msgpack:"harvested"`
	Message      string `msgpack:"message"`
	MessageFrame uint64 `msgpack:"message_frame"`
}

// Post replaces the current message.
func (s StatusBar) Post(frame uint64, format string, args ...any) StatusBar {
	s.Message = fmt.Sprintf(format, args...)
	s.MessageFrame = frame
	return s
}

// Visible returns the message while it is younger than ttl frames.
func (s StatusBar) Visible(frame uint64, ttl int) string {
	if s.Message == "" || elapsed(frame, s.MessageFrame) >= ttl {
		return ""
	}
	return s.Message
}

// AddHarvest scores picked fruit.
func (s StatusBar) AddHarvest(fruit, pointsEach int) StatusBar {
	s.Harvested += fruit
	s.Score += fruit * pointsEach
	return s
}

// ShakeLevel is the screen shake intensity.
type ShakeLevel uint8

const (
	ShakeNone ShakeLevel = iota
	ShakeMild
	ShakeSevere
)

// Shaker drives the screen shake. The offset is a pure function of the
// frame so replays shake identically.
type Shaker struct {
	Level ShakeLevel `msgpack:"level"`
	Since uint64     `msgpack:"since"`
}

// WithLevel changes the intensity.
func (s Shaker) WithLevel(level ShakeLevel, frame uint64) Shaker {
	if s.Level != level {
		s.Level = level
		s.Since = frame
	}
	return s
}

var shakePattern = [8][2]int{{0, 0}, {1, 0}, {0, 1}, {-1, 0}, {1, 1}, {0, -1}, {-1, 1}, {1, -1}}

// Offset returns the shake in terminal cells at frame.
func (s Shaker) Offset(frame uint64) (dx, dy int) {
	switch s.Level {
	case ShakeMild:
		p := shakePattern[(frame/3)%uint64(len(shakePattern))]
		return p[0], 0
	case ShakeSevere:
		p := shakePattern[frame%uint64(len(shakePattern))]
		return p[0] * 2, p[1]
	default:
		return 0, 0
	}
}
