// Package performance renders theory values (notes, chords, scales) as
// timed MIDI message sequences. Rendering is purely in-memory; writing
// standard MIDI files is out of scope.
package performance

import (
	"gitlab.com/gomidi/midi/v2"

	"github.com/odysseia06/Bach/pkg/theory"
)

// Event is a MIDI message at an absolute tick offset.
type Event struct {
	Tick    uint32
	Message midi.Message
}

// Renderer converts theory values to MIDI events on a fixed channel.
type Renderer struct {
	channel         uint8
	ticksPerQuarter uint32
}

// NewRenderer creates a Renderer on channel 0 at 480 ticks per quarter.
func NewRenderer() *Renderer {
	return &Renderer{channel: 0, ticksPerQuarter: 480}
}

// TicksPerQuarter returns the renderer's tick resolution.
func (r *Renderer) TicksPerQuarter() uint32 { return r.ticksPerQuarter }

// durationTicks maps a note value to its length in ticks.
func (r *Renderer) durationTicks(v theory.NoteValue) uint32 {
	switch v {
	case theory.Whole:
		return r.ticksPerQuarter * 4
	case theory.Half:
		return r.ticksPerQuarter * 2
	case theory.Eighth:
		return r.ticksPerQuarter / 2
	case theory.Sixteenth:
		return r.ticksPerQuarter / 4
	case theory.ThirtySecond:
		return r.ticksPerQuarter / 8
	default:
		return r.ticksPerQuarter
	}
}

// velocityFor maps a dynamic marking to a MIDI velocity.
func velocityFor(d theory.Dynamic) uint8 {
	switch d {
	case theory.Pianissimo:
		return 40
	case theory.Piano:
		return 55
	case theory.MezzoPiano:
		return 70
	case theory.MezzoForte:
		return 85
	case theory.Forte:
		return 100
	case theory.Fortissimo:
		return 115
	default:
		return 85
	}
}

// gateTicks shortens or sustains a note within its slot depending on
// articulation. The default 75% gate follows common sequencer practice.
func gateTicks(a theory.Articulation, slot uint32) uint32 {
	switch a {
	case theory.Staccato, theory.Marcato:
		return slot * 2 / 5
	case theory.Legato, theory.Tenuto:
		return slot
	default:
		return slot * 3 / 4
	}
}

// accentBoost raises velocity for accented articulations, clamped to 127.
func accentBoost(a theory.Articulation, velocity uint8) uint8 {
	if a != theory.Accent && a != theory.Marcato {
		return velocity
	}
	if velocity > 112 {
		return 127
	}
	return velocity + 15
}

// RenderNote renders a single note starting at the given tick as a
// NoteOn/NoteOff pair. Notes outside the MIDI range 0-127 produce no events.
func (r *Renderer) RenderNote(n theory.Note, at uint32) []Event {
	key := n.Pitch().MIDINumber()
	if key < 0 || key > 127 {
		return nil
	}
	velocity := accentBoost(n.Articulation, velocityFor(n.Dynamic))
	slot := r.durationTicks(n.Duration)
	return []Event{
		{Tick: at, Message: midi.NoteOn(r.channel, uint8(key), velocity)},
		{Tick: at + gateTicks(n.Articulation, slot), Message: midi.NoteOff(r.channel, uint8(key))},
	}
}

// RenderChord renders all chord tones sounding together at the given tick.
func (r *Renderer) RenderChord(c theory.Chord, at uint32, duration theory.NoteValue, dynamic theory.Dynamic, articulation theory.Articulation) []Event {
	var events []Event
	for _, n := range c.Notes(duration, theory.Natural, dynamic, articulation) {
		events = append(events, r.RenderNote(n, at)...)
	}
	return events
}

// RenderScale renders one octave of the scale ascending, one note per slot.
func (r *Renderer) RenderScale(s theory.Scale, at uint32, duration theory.NoteValue, dynamic theory.Dynamic, articulation theory.Articulation) []Event {
	slot := r.durationTicks(duration)
	var events []Event
	tick := at
	for _, p := range s.Pitches(true) {
		n := theory.NewNote(p, duration, theory.Natural, dynamic, articulation)
		events = append(events, r.RenderNote(n, tick)...)
		tick += slot
	}
	return events
}

// RenderArpeggio renders the chord tones sequentially instead of together.
func (r *Renderer) RenderArpeggio(c theory.Chord, at uint32, duration theory.NoteValue, dynamic theory.Dynamic, articulation theory.Articulation) []Event {
	slot := r.durationTicks(duration)
	var events []Event
	tick := at
	for _, n := range c.Notes(duration, theory.Natural, dynamic, articulation) {
		events = append(events, r.RenderNote(n, tick)...)
		tick += slot
	}
	return events
}
