package theory

import (
	"errors"
	"fmt"
	"strings"
)

// Scale construction and degree errors.
var (
	ErrEmptyIntervalSet     = errors.New("scale has no intervals")
	ErrInvalidTonicInterval = errors.New("first scale interval must be a perfect unison")
	ErrInvalidDegree        = errors.New("invalid scale degree")
)

// ScaleType tags a scale's family. The interval pattern is supplied by the
// caller (or a named factory); the type is descriptive only.
type ScaleType int

const (
	MajorScaleType ScaleType = iota
	MinorScaleType
	PentatonicScaleType
	ChromaticScaleType
	WholeToneScaleType
	OctatonicScaleType
)

// String returns the scale type name, e.g. "major".
func (t ScaleType) String() string {
	switch t {
	case MajorScaleType:
		return "major"
	case MinorScaleType:
		return "minor"
	case PentatonicScaleType:
		return "pentatonic"
	case ChromaticScaleType:
		return "chromatic"
	case WholeToneScaleType:
		return "wholetone"
	case OctatonicScaleType:
		return "octatonic"
	default:
		return "unknown"
	}
}

// Scale is a tonic pitch plus an ordered interval pattern defining its
// degrees. Degree indexing is 1-based and continues into higher octaves
// past the pattern's end.
type Scale struct {
	tonic     Pitch
	name      string
	scaleType ScaleType
	intervals []Interval
}

// NewScale builds a Scale from a tonic and an interval pattern. The pattern
// must be non-empty and start with a perfect unison.
func NewScale(tonic Pitch, name string, scaleType ScaleType, intervals []Interval) (Scale, error) {
	if len(intervals) == 0 {
		return Scale{}, fmt.Errorf("%w: %q", ErrEmptyIntervalSet, name)
	}
	if intervals[0] != interval(1, Perfect) {
		return Scale{}, fmt.Errorf("%w: got %s", ErrInvalidTonicInterval, intervals[0])
	}
	ivs := make([]Interval, len(intervals))
	copy(ivs, intervals)
	return Scale{tonic: tonic, name: name, scaleType: scaleType, intervals: ivs}, nil
}

// mustScale backs the named factories, whose fixed patterns always satisfy
// the constructor's invariants.
func mustScale(tonic Pitch, name string, scaleType ScaleType, intervals []Interval) Scale {
	s, err := NewScale(tonic, name, scaleType, intervals)
	if err != nil {
		panic(err)
	}
	return s
}

// MajorScale builds the major (ionian) scale on the given tonic.
// Reference semitone sequence: 0 2 4 5 7 9 11 12.
func MajorScale(tonic Pitch) Scale {
	return mustScale(tonic, fmt.Sprintf("%s Major", tonic.NoteName()), MajorScaleType, []Interval{
		interval(1, Perfect), interval(2, Major), interval(3, Major), interval(4, Perfect),
		interval(5, Perfect), interval(6, Major), interval(7, Major), interval(8, Perfect),
	})
}

// NaturalMinorScale builds the natural minor (aeolian) scale on the given
// tonic. Reference semitone sequence: 0 2 3 5 7 8 10 12.
func NaturalMinorScale(tonic Pitch) Scale {
	return mustScale(tonic, fmt.Sprintf("%s Minor", tonic.NoteName()), MinorScaleType, []Interval{
		interval(1, Perfect), interval(2, Major), interval(3, Minor), interval(4, Perfect),
		interval(5, Perfect), interval(6, Minor), interval(7, Minor), interval(8, Perfect),
	})
}

// HarmonicMinorScale builds the harmonic minor scale on the given tonic.
func HarmonicMinorScale(tonic Pitch) Scale {
	return mustScale(tonic, fmt.Sprintf("%s Harmonic Minor", tonic.NoteName()), MinorScaleType, []Interval{
		interval(1, Perfect), interval(2, Major), interval(3, Minor), interval(4, Perfect),
		interval(5, Perfect), interval(6, Minor), interval(7, Major), interval(8, Perfect),
	})
}

// MajorPentatonicScale builds the major pentatonic scale on the given tonic.
func MajorPentatonicScale(tonic Pitch) Scale {
	return mustScale(tonic, fmt.Sprintf("%s Major Pentatonic", tonic.NoteName()), PentatonicScaleType, []Interval{
		interval(1, Perfect), interval(2, Major), interval(3, Major),
		interval(5, Perfect), interval(6, Major), interval(8, Perfect),
	})
}

// WholeToneScale builds the whole-tone scale on the given tonic.
func WholeToneScale(tonic Pitch) Scale {
	return mustScale(tonic, fmt.Sprintf("%s Whole Tone", tonic.NoteName()), WholeToneScaleType, []Interval{
		interval(1, Perfect), interval(2, Major), interval(3, Major), interval(4, Augmented),
		interval(5, Augmented), interval(6, Augmented), interval(8, Perfect),
	})
}

// ChromaticScale builds the chromatic scale on the given tonic, spelled
// with sharps to match the canonical pitch names.
func ChromaticScale(tonic Pitch) Scale {
	return mustScale(tonic, fmt.Sprintf("%s Chromatic", tonic.NoteName()), ChromaticScaleType, []Interval{
		interval(1, Perfect), interval(1, Augmented), interval(2, Major), interval(2, Augmented),
		interval(3, Major), interval(4, Perfect), interval(4, Augmented), interval(5, Perfect),
		interval(5, Augmented), interval(6, Major), interval(6, Augmented), interval(7, Major),
		interval(8, Perfect),
	})
}

// ScaleFactory resolves a scale name as used by the CLI and API surfaces
// to its named factory.
func ScaleFactory(name string) (func(Pitch) Scale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "major":
		return MajorScale, nil
	case "minor", "naturalminor":
		return NaturalMinorScale, nil
	case "harmonicminor":
		return HarmonicMinorScale, nil
	case "pentatonic", "majorpentatonic":
		return MajorPentatonicScale, nil
	case "wholetone":
		return WholeToneScale, nil
	case "chromatic":
		return ChromaticScale, nil
	}
	return nil, fmt.Errorf("unknown scale: %q", name)
}

// Tonic returns the scale's tonic pitch.
func (s Scale) Tonic() Pitch { return s.tonic }

// Name returns the scale's display name.
func (s Scale) Name() string { return s.name }

// Type returns the scale's type tag.
func (s Scale) Type() ScaleType { return s.scaleType }

// Intervals returns a copy of the scale's interval pattern, in order.
func (s Scale) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// PitchAtDegree returns the pitch at a 1-based scale degree. Degrees past
// the pattern wrap into higher octaves: the closing octave interval is
// never re-selected, continuation is pure semitone stacking, so degree 9 of
// a major scale is degree 2 one octave up.
func (s Scale) PitchAtDegree(degree int) (Pitch, error) {
	if degree < 1 {
		return Pitch{}, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}
	span := len(s.intervals) - 1
	if span == 0 {
		// Degenerate single-interval pattern: every degree stacks octaves.
		return s.tonic.Transpose(12 * (degree - 1)), nil
	}
	octaveShifts := (degree - 1) / span
	idx := (degree - 1) % span
	return s.intervals[idx].ApplyToPitch(s.tonic).Transpose(12 * octaveShifts), nil
}

// Pitches applies the pattern to the tonic over a single octave, in order.
// When includeOctave is false the closing interval is omitted.
func (s Scale) Pitches(includeOctave bool) []Pitch {
	n := len(s.intervals)
	if !includeOctave && n > 1 {
		n--
	}
	out := make([]Pitch, n)
	for i := 0; i < n; i++ {
		out[i] = s.intervals[i].ApplyToPitch(s.tonic)
	}
	return out
}

// NoteAtDegree wraps PitchAtDegree's result in a Note with the given
// performance attributes.
func (s Scale) NoteAtDegree(degree int, duration NoteValue, accidental Accidental, dynamic Dynamic, articulation Articulation) (Note, error) {
	p, err := s.PitchAtDegree(degree)
	if err != nil {
		return Note{}, err
	}
	return NewNote(p, duration, accidental, dynamic, articulation), nil
}

// Transpose returns a new Scale with the same pattern and type on a new
// tonic. An empty newName keeps the old name.
func (s Scale) Transpose(newTonic Pitch, newName string) Scale {
	if newName == "" {
		newName = s.name
	}
	out := s
	out.tonic = newTonic
	out.name = newName
	return out
}

// String renders the scale name and its single-octave pitches.
func (s Scale) String() string {
	pitches := s.Pitches(true)
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", s.name, strings.Join(names, " "))
}
