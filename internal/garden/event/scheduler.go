package event

import (
	"fmt"
	"slices"
)

// Outcome is what applying an event did to the world.
type Outcome struct {
	Spawn   []AnimEvent // Follow-up events, considered from the next tick
	Ongoing bool        // Keep the event active until Start+Duration
	Halt    bool        // Game over: drop everything else
}

// ApplyFunc performs an event's side effect exactly once.
type ApplyFunc func(AnimEvent) Outcome

// Scheduler holds events that are not yet due and events that have fired.
type Scheduler struct {
	Pending []AnimEvent `msgpack:"pending"`
	Active  []AnimEvent `msgpack:"active"`
}

// Schedule appends events to the pending list, keeping insertion order.
func (s *Scheduler) Schedule(events ...AnimEvent) {
	s.Pending = append(s.Pending, events...)
}

// Step advances the queue to frame. Finished events are dropped, every due
// pending event is moved to active and applied in list order, and follow-up
// events are queued behind the existing ones. Returns true if an applied
// event halted the game.
func (s *Scheduler) Step(frame uint64, apply ApplyFunc) bool {
	active := s.Active[:0:0]
	for _, e := range s.Active {
		if e.Finished {
			continue
		}
		if frame >= e.Start+e.Duration {
			e.Finished = true
		}
		active = append(active, e)
	}

	var (
		pending []AnimEvent
		spawned []AnimEvent
	)
	for _, e := range s.Pending {
		if e.Start > frame {
			pending = append(pending, e)
			continue
		}
		if !e.Type.Valid() {
			panic(fmt.Sprintf("event: unknown event type %d", e.Type))
		}
		out := apply(e)
		if out.Halt {
			e.Finished = true
			s.Pending = nil
			s.Active = []AnimEvent{e}
			return true
		}
		e.Finished = !out.Ongoing || e.Duration == 0 || frame >= e.Start+e.Duration
		active = append(active, e)
		spawned = append(spawned, out.Spawn...)
	}

	s.Pending = append(pending, spawned...)
	s.Active = active
	return false
}

// Clear drops every event.
func (s *Scheduler) Clear() {
	s.Pending = nil
	s.Active = nil
}

// Clone returns an independent copy.
func (s Scheduler) Clone() Scheduler {
	return Scheduler{Pending: slices.Clone(s.Pending), Active: slices.Clone(s.Active)}
}

// ActiveOf returns the unfinished-or-just-finished active event of type t, if any.
func (s Scheduler) ActiveOf(t Type) (AnimEvent, bool) {
	for _, e := range s.Active {
		if e.Type == t {
			return e, true
		}
	}
	return AnimEvent{}, false
}

// PendingOf reports whether an event of type t is waiting.
func (s Scheduler) PendingOf(t Type) bool {
	return slices.ContainsFunc(s.Pending, func(e AnimEvent) bool { return e.Type == t })
}
