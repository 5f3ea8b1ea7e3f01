package theory

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidNoteName is returned when a note name is not one of the twelve
// canonical chromatic names (sharps only, no flat spellings).
var ErrInvalidNoteName = errors.New("invalid note name")

// chromaticNames are the canonical chromatic note names in pitch-class
// order. Flat spellings (Db, Eb, ...) are deliberately not recognized;
// derived names always use sharps.
var chromaticNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Pitch is one absolute musical pitch. All fields are derived from the MIDI
// note number and the tuning in effect at construction; a Pitch is an
// immutable snapshot and never changes after it is built.
type Pitch struct {
	frequency float64
	name      string
	octave    int
	midi      int
	tuning    Tuning
}

// NewPitchFromMIDI builds a Pitch from a MIDI note number using the default
// tuning.
func NewPitchFromMIDI(midi int) Pitch {
	return NewPitchFromMIDIWithTuning(midi, DefaultTuning())
}

// NewPitchFromMIDIWithTuning builds a Pitch from a MIDI note number under an
// explicit tuning standard.
func NewPitchFromMIDIWithTuning(midi int, t Tuning) Pitch {
	return Pitch{
		frequency: t.ConcertA * math.Pow(2, float64(midi-69)/12.0),
		name:      chromaticNames[((midi%12)+12)%12],
		octave:    int(math.Floor(float64(midi)/12.0)) - 1,
		midi:      midi,
		tuning:    t,
	}
}

// NewPitchFromFrequency builds a Pitch from a frequency in Hz, snapping to
// the nearest equal-tempered semitone. The stored frequency reflects the
// snapped MIDI number, not the raw input.
func NewPitchFromFrequency(hz float64) Pitch {
	return NewPitchFromFrequencyWithTuning(hz, DefaultTuning())
}

// NewPitchFromFrequencyWithTuning is NewPitchFromFrequency under an explicit
// tuning standard.
func NewPitchFromFrequencyWithTuning(hz float64, t Tuning) Pitch {
	midi := int(math.Round(69 + 12*math.Log2(hz/t.ConcertA)))
	return NewPitchFromMIDIWithTuning(midi, t)
}

// NewPitchFromNote builds a Pitch from a canonical note name ("C", "F#", ...)
// and an octave, using the default tuning. Returns ErrInvalidNoteName for
// anything outside the canonical sharps-based set.
func NewPitchFromNote(name string, octave int) (Pitch, error) {
	return NewPitchFromNoteWithTuning(name, octave, DefaultTuning())
}

// NewPitchFromNoteWithTuning is NewPitchFromNote under an explicit tuning
// standard.
func NewPitchFromNoteWithTuning(name string, octave int, t Tuning) (Pitch, error) {
	for pc, n := range chromaticNames {
		if n == name {
			return NewPitchFromMIDIWithTuning(pc+12*(octave+1), t), nil
		}
	}
	return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
}

// ParsePitch parses scientific pitch notation like "C4", "F#3" or "A#-1"
// into a Pitch using the default tuning. Only the canonical sharps-based
// names are accepted.
func ParsePitch(s string) (Pitch, error) {
	if len(s) < 2 {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	nameLen := 1
	if s[1] == '#' {
		nameLen = 2
	}
	if nameLen >= len(s) {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	octave, err := strconv.Atoi(s[nameLen:])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	return NewPitchFromNote(s[:nameLen], octave)
}

// Frequency returns the pitch's frequency in Hz under its construction-time
// tuning.
func (p Pitch) Frequency() float64 { return p.frequency }

// NoteName returns the canonical chromatic note name, e.g. "C" or "F#".
func (p Pitch) NoteName() string { return p.name }

// Octave returns the octave number (C4 is middle C, MIDI 60).
func (p Pitch) Octave() int { return p.octave }

// MIDINumber returns the MIDI note number.
func (p Pitch) MIDINumber() int { return p.midi }

// PitchClass returns the pitch class 0-11 (0=C ... 11=B).
func (p Pitch) PitchClass() int { return ((p.midi % 12) + 12) % 12 }

// Tuning returns the tuning standard the pitch was constructed under.
func (p Pitch) Tuning() Tuning { return p.tuning }

// Transpose returns a new Pitch shifted by the given number of semitones.
// All fields are re-derived; the receiver is unchanged.
func (p Pitch) Transpose(semitones int) Pitch {
	return NewPitchFromMIDIWithTuning(p.midi+semitones, p.tuning)
}

// AddSemitones returns the pitch raised by n semitones.
func (p Pitch) AddSemitones(n int) Pitch { return p.Transpose(n) }

// SubSemitones returns the pitch lowered by n semitones.
func (p Pitch) SubSemitones(n int) Pitch { return p.Transpose(-n) }

// SemitonesTo returns the signed semitone distance from p to other.
func (p Pitch) SemitonesTo(other Pitch) int { return other.midi - p.midi }

// Equal reports whether two pitches have the same MIDI note number.
// Pitches constructed under different tunings compare equal as long as the
// MIDI numbers match.
func (p Pitch) Equal(other Pitch) bool { return p.midi == other.midi }

// Less orders pitches by MIDI note number.
func (p Pitch) Less(other Pitch) bool { return p.midi < other.midi }

// String returns the scientific pitch notation, e.g. "C4" or "F#-1".
func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", p.name, p.octave)
}
