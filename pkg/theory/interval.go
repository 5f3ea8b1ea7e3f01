package theory

import (
	"errors"
	"fmt"
)

// ErrInvalidIntervalNumber is returned when an interval is constructed with
// a diatonic number below 1.
var ErrInvalidIntervalNumber = errors.New("invalid interval number")

// Quality refines an interval's exact semitone size within its diatonic
// number.
type Quality int

const (
	Perfect Quality = iota
	Major
	Minor
	Augmented
	Diminished
	DoublyAugmented
	DoublyDiminished
)

// String returns the conventional short form, e.g. "P" or "m".
func (q Quality) String() string {
	switch q {
	case Perfect:
		return "P"
	case Major:
		return "M"
	case Minor:
		return "m"
	case Augmented:
		return "A"
	case Diminished:
		return "d"
	case DoublyAugmented:
		return "AA"
	case DoublyDiminished:
		return "dd"
	default:
		return "?"
	}
}

// Name returns the spelled-out quality name, e.g. "Perfect".
func (q Quality) Name() string {
	switch q {
	case Perfect:
		return "Perfect"
	case Major:
		return "Major"
	case Minor:
		return "Minor"
	case Augmented:
		return "Augmented"
	case Diminished:
		return "Diminished"
	case DoublyAugmented:
		return "Doubly Augmented"
	case DoublyDiminished:
		return "Doubly Diminished"
	default:
		return "Unknown"
	}
}

// Interval is a diatonic interval: a degree count (1=unison, 2=second, ...)
// plus a quality. It has no identity beyond (number, quality). The quality
// is taken as given; theoretically odd pairings like a major unison are
// constructible.
type Interval struct {
	number  int
	quality Quality
}

// NewInterval builds an Interval. Returns ErrInvalidIntervalNumber if
// number < 1.
func NewInterval(number int, quality Quality) (Interval, error) {
	if number < 1 {
		return Interval{}, fmt.Errorf("%w: %d", ErrInvalidIntervalNumber, number)
	}
	return Interval{number: number, quality: quality}, nil
}

// interval builds an Interval from known-good constants, for the static
// chord and scale tables.
func interval(number int, quality Quality) Interval {
	return Interval{number: number, quality: quality}
}

// Number returns the diatonic number.
func (i Interval) Number() int { return i.number }

// Quality returns the interval quality.
func (i Interval) Quality() Quality { return i.quality }

// IsCompound reports whether the interval spans more than one octave.
func (i Interval) IsCompound() bool { return i.number > 8 }

// qualityAdjustment is the semitone offset a quality contributes, which
// depends on whether the reduced number is in the perfect class.
func qualityAdjustment(q Quality, perfectClass bool) int {
	if perfectClass {
		switch q {
		case Augmented:
			return 1
		case Diminished:
			return -1
		case DoublyAugmented:
			return 2
		case DoublyDiminished:
			return -2
		}
		return 0
	}
	switch q {
	case Minor:
		return -1
	case Augmented:
		return 1
	case Diminished:
		return -2
	case DoublyAugmented:
		return 2
	case DoublyDiminished:
		return -3
	}
	return 0
}

// Semitones returns the interval's span in equal-tempered semitones.
func (i Interval) Semitones() int {
	base, octaves := reduceNumber(i.number)
	return baseSemitones[base] + 12*octaves + qualityAdjustment(i.quality, isPerfectClass(base))
}

// Cents returns the span in cents (100 per semitone).
func (i Interval) Cents() float64 {
	return float64(i.Semitones()) * 100.0
}

// Invert returns the interval's inversion. Simple intervals invert within
// the octave (a major third becomes a minor sixth); compound intervals keep
// their octave component.
func (i Interval) Invert() Interval {
	base, octaves := reduceNumber(i.number)
	inverted := 9 - base
	if inverted <= 0 {
		inverted += 7
	}
	var q Quality
	switch i.quality {
	case Perfect:
		q = Perfect
	case Major:
		q = Minor
	case Minor:
		q = Major
	case Augmented:
		q = Diminished
	case Diminished:
		q = Augmented
	case DoublyAugmented:
		q = DoublyDiminished
	case DoublyDiminished:
		q = DoublyAugmented
	default:
		q = i.quality
	}
	return Interval{number: inverted + 7*octaves, quality: q}
}

// ApplyToPitch returns the pitch the interval reaches upward from p. The
// result keeps p's tuning.
func (i Interval) ApplyToPitch(p Pitch) Pitch {
	return p.Transpose(i.Semitones())
}

// ApplyToNote returns a new Note at the transposed pitch with the same
// duration, accidental, dynamic and articulation. The accidental's semitone
// shift is not applied again; the transposed pitch is taken as-is.
func (i Interval) ApplyToNote(n Note) Note {
	out := n
	out.pitch = i.ApplyToPitch(n.pitch)
	return out
}

// letterDegree returns the diatonic degree of a pitch's note letter,
// ignoring any sharp in the name. Derived names always begin with a natural
// letter, so the lookup cannot miss.
func letterDegree(p Pitch) int {
	return letterDegrees[p.NoteName()[0]]
}

// IntervalBetweenPitches derives the diatonic interval between two pitches.
// Order does not matter; the lower pitch is taken as the starting point.
//
// The diatonic number comes from inclusive letter counting (C up to E is a
// third); the quality from the difference between the actual semitone span
// and the unaltered span for that number. Because pitch names are always
// sharps-based, enharmonic respellings (a derived D# counted as Eb) are not
// considered, which can yield unconventional numbers for some pairs.
func IntervalBetweenPitches(a, b Pitch) Interval {
	low, high := a, b
	if high.Frequency() < low.Frequency() {
		low, high = high, low
	}

	octaveDiff := high.Octave() - low.Octave()
	number := (letterDegree(high) + 7*octaveDiff) - letterDegree(low) + 1

	base, octaves := reduceNumber(number)
	expected := baseSemitones[base] + 12*octaves
	diff := low.SemitonesTo(high) - expected

	var q Quality
	if isPerfectClass(base) {
		switch diff {
		case 0:
			q = Perfect
		case 1:
			q = Augmented
		case -1:
			q = Diminished
		case 2:
			q = DoublyAugmented
		case -2:
			q = DoublyDiminished
		default:
			q = Perfect
		}
	} else {
		switch diff {
		case 0:
			q = Major
		case -1:
			q = Minor
		case 1:
			q = Augmented
		case -2:
			q = Diminished
		case 2:
			q = DoublyAugmented
		case -3:
			q = DoublyDiminished
		default:
			q = Major
		}
	}
	return Interval{number: number, quality: q}
}

// IntervalBetweenNotes derives the diatonic interval between two notes'
// pitches.
func IntervalBetweenNotes(a, b Note) Interval {
	return IntervalBetweenPitches(a.Pitch(), b.Pitch())
}

// String returns the conventional short form, e.g. "M3" or "P5".
func (i Interval) String() string {
	return fmt.Sprintf("%s%d", i.quality, i.number)
}
