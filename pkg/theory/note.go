package theory

import (
	"fmt"
	"strings"
)

// Accidental is a notated pitch alteration. Its semitone offset is applied
// to a note's pitch exactly once, at construction.
type Accidental int

const (
	Natural Accidental = iota
	Sharp
	Flat
	DoubleSharp
	DoubleFlat
	HalfSharp
	HalfFlat
)

// Offset returns the accidental's semitone shift. The quarter-tone
// accidentals are placeholders and shift by zero; microtonal resolution is
// out of scope.
func (a Accidental) Offset() int {
	switch a {
	case Sharp:
		return 1
	case Flat:
		return -1
	case DoubleSharp:
		return 2
	case DoubleFlat:
		return -2
	}
	return 0
}

// Glyph returns the accidental's visual symbol. Natural renders as nothing.
func (a Accidental) Glyph() string {
	switch a {
	case Sharp:
		return "♯"
	case Flat:
		return "♭"
	case DoubleSharp:
		return "𝄪"
	case DoubleFlat:
		return "𝄫"
	case HalfSharp:
		return "𝄲"
	case HalfFlat:
		return "𝄳"
	}
	return ""
}

// NoteValue is a note's rhythmic duration.
type NoteValue int

const (
	Whole NoteValue = iota
	Half
	Quarter
	Eighth
	Sixteenth
	ThirtySecond
)

// String returns the duration name, e.g. "quarter".
func (v NoteValue) String() string {
	switch v {
	case Whole:
		return "whole"
	case Half:
		return "half"
	case Quarter:
		return "quarter"
	case Eighth:
		return "eighth"
	case Sixteenth:
		return "sixteenth"
	case ThirtySecond:
		return "thirty-second"
	default:
		return "unknown"
	}
}

// Dynamic is a performance loudness marking.
type Dynamic int

const (
	Pianissimo Dynamic = iota
	Piano
	MezzoPiano
	MezzoForte
	Forte
	Fortissimo
)

// String returns the conventional abbreviation, e.g. "mf".
func (d Dynamic) String() string {
	switch d {
	case Pianissimo:
		return "pp"
	case Piano:
		return "p"
	case MezzoPiano:
		return "mp"
	case MezzoForte:
		return "mf"
	case Forte:
		return "f"
	case Fortissimo:
		return "ff"
	default:
		return "?"
	}
}

// Articulation is a performance attack/length marking.
type Articulation int

const (
	NormalArticulation Articulation = iota
	Staccato
	Legato
	Tenuto
	Accent
	Marcato
)

// String returns the articulation name, e.g. "staccato".
func (a Articulation) String() string {
	switch a {
	case NormalArticulation:
		return "normal"
	case Staccato:
		return "staccato"
	case Legato:
		return "legato"
	case Tenuto:
		return "tenuto"
	case Accent:
		return "accent"
	case Marcato:
		return "marcato"
	default:
		return "unknown"
	}
}

// Note is a performed pitch: a Pitch plus duration, accidental, dynamic and
// articulation. The pitch and accidental are fixed at construction; the
// performance attributes may be changed afterwards.
type Note struct {
	pitch      Pitch
	accidental Accidental

	Duration     NoteValue
	Dynamic      Dynamic
	Articulation Articulation
}

// NewNote builds a Note. The accidental's semitone offset is applied to the
// supplied pitch here and only here; no later operation re-applies it.
func NewNote(pitch Pitch, duration NoteValue, accidental Accidental, dynamic Dynamic, articulation Articulation) Note {
	return Note{
		pitch:        pitch.Transpose(accidental.Offset()),
		accidental:   accidental,
		Duration:     duration,
		Dynamic:      dynamic,
		Articulation: articulation,
	}
}

// Pitch returns the note's pitch, already adjusted for the accidental.
func (n Note) Pitch() Pitch { return n.pitch }

// Accidental returns the accidental the note was constructed with.
func (n Note) Accidental() Accidental { return n.accidental }

// Transpose returns a new Note shifted by the given semitones. The
// accidental is carried over unchanged and not applied again.
func (n Note) Transpose(semitones int) Note {
	out := n
	out.pitch = n.pitch.Transpose(semitones)
	return out
}

// String renders the note for display: letter name, accidental glyph,
// octave and the performance attributes. Any sharp embedded in the pitch's
// own chromatic name is stripped first so the accidental glyph is never
// doubled (a Sharp note on C# renders "C♯4", not "C#♯4").
func (n Note) String() string {
	letter := strings.TrimSuffix(n.pitch.NoteName(), "#")
	return fmt.Sprintf("%s%s%d %s %s %s",
		letter, n.accidental.Glyph(), n.pitch.Octave(),
		n.Duration, n.Dynamic, n.Articulation)
}
