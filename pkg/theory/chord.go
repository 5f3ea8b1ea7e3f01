package theory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChordStructure is returned when a chord is built from fewer
// than three intervals or an interval set that does not start on the root.
var ErrInvalidChordStructure = errors.New("invalid chord structure")

// ChordQuality selects a chord's interval recipe.
type ChordQuality int

const (
	MajorTriad ChordQuality = iota
	MinorTriad
	DiminishedTriad
	AugmentedTriad
	Sus2
	Sus4
	Major6
	Minor6
	Dominant7
	Major7
	Minor7
	MinorMajor7
	HalfDiminished7
	Diminished7
	Augmented7
	Dominant9
	Major9
	Minor9
)

// String returns the chord quality name, e.g. "major7".
func (q ChordQuality) String() string {
	if name, ok := chordQualityNames[q]; ok {
		return name
	}
	return "unknown"
}

var chordQualityNames = map[ChordQuality]string{
	MajorTriad:      "major",
	MinorTriad:      "minor",
	DiminishedTriad: "diminished",
	AugmentedTriad:  "augmented",
	Sus2:            "sus2",
	Sus4:            "sus4",
	Major6:          "major6",
	Minor6:          "minor6",
	Dominant7:       "dominant7",
	Major7:          "major7",
	Minor7:          "minor7",
	MinorMajor7:     "minormajor7",
	HalfDiminished7: "halfdiminished7",
	Diminished7:     "diminished7",
	Augmented7:      "augmented7",
	Dominant9:       "dominant9",
	Major9:          "major9",
	Minor9:          "minor9",
}

// ParseChordQuality parses a quality name as printed by String. It is the
// inverse mapping used by the CLI and API surfaces.
func ParseChordQuality(s string) (ChordQuality, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for q, name := range chordQualityNames {
		if name == s {
			return q, nil
		}
	}
	return MajorTriad, fmt.Errorf("unknown chord quality: %q", s)
}

// chordIntervals is the static quality -> interval recipe table. Every
// entry starts with a perfect unison so the root is always the first
// sounding pitch. Built once, never mutated.
var chordIntervals = map[ChordQuality][]Interval{
	MajorTriad:      {interval(1, Perfect), interval(3, Major), interval(5, Perfect)},
	MinorTriad:      {interval(1, Perfect), interval(3, Minor), interval(5, Perfect)},
	DiminishedTriad: {interval(1, Perfect), interval(3, Minor), interval(5, Diminished)},
	AugmentedTriad:  {interval(1, Perfect), interval(3, Major), interval(5, Augmented)},
	Sus2:            {interval(1, Perfect), interval(2, Major), interval(5, Perfect)},
	Sus4:            {interval(1, Perfect), interval(4, Perfect), interval(5, Perfect)},
	Major6:          {interval(1, Perfect), interval(3, Major), interval(5, Perfect), interval(6, Major)},
	Minor6:          {interval(1, Perfect), interval(3, Minor), interval(5, Perfect), interval(6, Major)},
	Dominant7:       {interval(1, Perfect), interval(3, Major), interval(5, Perfect), interval(7, Minor)},
	Major7:          {interval(1, Perfect), interval(3, Major), interval(5, Perfect), interval(7, Major)},
	Minor7:          {interval(1, Perfect), interval(3, Minor), interval(5, Perfect), interval(7, Minor)},
	MinorMajor7:     {interval(1, Perfect), interval(3, Minor), interval(5, Perfect), interval(7, Major)},
	HalfDiminished7: {interval(1, Perfect), interval(3, Minor), interval(5, Diminished), interval(7, Minor)},
	Diminished7:     {interval(1, Perfect), interval(3, Minor), interval(5, Diminished), interval(7, Diminished)},
	Augmented7:      {interval(1, Perfect), interval(3, Major), interval(5, Augmented), interval(7, Minor)},
	Dominant9:       {interval(1, Perfect), interval(3, Major), interval(5, Perfect), interval(7, Minor), interval(9, Major)},
	Major9:          {interval(1, Perfect), interval(3, Major), interval(5, Perfect), interval(7, Major), interval(9, Major)},
	Minor9:          {interval(1, Perfect), interval(3, Minor), interval(5, Perfect), interval(7, Minor), interval(9, Major)},
}

// intervalsForQuality looks up the recipe for a quality. Unknown qualities
// fall back to the major triad.
func intervalsForQuality(q ChordQuality) []Interval {
	if ivs, ok := chordIntervals[q]; ok {
		return ivs
	}
	return chordIntervals[MajorTriad]
}

// Chord is a root pitch expanded through a fixed interval recipe. It is an
// immutable value; transposition produces a new Chord.
type Chord struct {
	root      Pitch
	quality   ChordQuality
	intervals []Interval
}

// NewChord builds a Chord from a root pitch and a quality.
func NewChord(root Pitch, quality ChordQuality) Chord {
	return Chord{
		root:      root,
		quality:   quality,
		intervals: intervalsForQuality(quality),
	}
}

// NewCustomChord builds a Chord from a caller-supplied interval set. At
// least three intervals are required and the first must be a perfect
// unison; the public quality table always satisfies this, but custom sets
// are checked.
func NewCustomChord(root Pitch, quality ChordQuality, intervals []Interval) (Chord, error) {
	if len(intervals) < 3 {
		return Chord{}, fmt.Errorf("%w: need at least 3 intervals, got %d", ErrInvalidChordStructure, len(intervals))
	}
	if intervals[0] != interval(1, Perfect) {
		return Chord{}, fmt.Errorf("%w: first interval must be a perfect unison", ErrInvalidChordStructure)
	}
	ivs := make([]Interval, len(intervals))
	copy(ivs, intervals)
	return Chord{root: root, quality: quality, intervals: ivs}, nil
}

// Root returns the chord's root pitch.
func (c Chord) Root() Pitch { return c.root }

// Quality returns the chord quality.
func (c Chord) Quality() ChordQuality { return c.quality }

// Intervals returns a copy of the chord's interval recipe, in order.
func (c Chord) Intervals() []Interval {
	out := make([]Interval, len(c.intervals))
	copy(out, c.intervals)
	return out
}

// Pitches applies each interval to the root, in recipe order.
func (c Chord) Pitches() []Pitch {
	out := make([]Pitch, len(c.intervals))
	for i, iv := range c.intervals {
		out[i] = iv.ApplyToPitch(c.root)
	}
	return out
}

// Notes wraps each chord pitch in a Note sharing the same performance
// attributes.
func (c Chord) Notes(duration NoteValue, accidental Accidental, dynamic Dynamic, articulation Articulation) []Note {
	pitches := c.Pitches()
	out := make([]Note, len(pitches))
	for i, p := range pitches {
		out[i] = NewNote(p, duration, accidental, dynamic, articulation)
	}
	return out
}

// Transpose returns a new Chord with the same quality on a different root.
// The recipe is re-derived from the static table, not copied from the
// receiver.
func (c Chord) Transpose(newRoot Pitch) Chord {
	return NewChord(newRoot, c.quality)
}

// String renders the chord as root + quality, e.g. "C4 major7".
func (c Chord) String() string {
	return fmt.Sprintf("%s %s", c.root, c.quality)
}
