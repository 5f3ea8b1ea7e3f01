// Package theory provides western music theory primitives: pitches,
// intervals, notes, chords and scales, with the arithmetic to convert
// between frequency, MIDI number, note name and scientific pitch notation.
package theory

// Tuning is a tuning standard: the frequency assigned to A4 (MIDI note 69).
// All frequency <-> MIDI conversions are derived from it under twelve-tone
// equal temperament.
type Tuning struct {
	ConcertA float64 // frequency of A4 in Hz
}

// StandardTuning is concert pitch, A4 = 440 Hz.
var StandardTuning = Tuning{ConcertA: 440.0}

// defaultTuning is consulted by constructors that don't take an explicit
// Tuning. Changing it affects subsequently constructed pitches only;
// existing Pitch values are immutable snapshots. Not synchronized — callers
// that change it concurrently with pitch construction must provide their
// own locking (last write wins).
var defaultTuning = StandardTuning

// DefaultTuning returns the tuning used by constructors without an explicit
// Tuning argument.
func DefaultTuning() Tuning {
	return defaultTuning
}

// SetDefaultTuning changes the default tuning for subsequent constructions.
func SetDefaultTuning(t Tuning) {
	defaultTuning = t
}
