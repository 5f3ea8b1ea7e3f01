package theory

import (
	"errors"
	"testing"
)

func midiNumbers(pitches []Pitch) []int {
	out := make([]int, len(pitches))
	for i, p := range pitches {
		out[i] = p.MIDINumber()
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestChordPitches(t *testing.T) {
	c4 := NewPitchFromMIDI(60)
	tests := []struct {
		quality ChordQuality
		want    []int
	}{
		{MajorTriad, []int{60, 64, 67}},
		{MinorTriad, []int{60, 63, 67}},
		{DiminishedTriad, []int{60, 63, 66}},
		{AugmentedTriad, []int{60, 64, 68}},
		{Sus2, []int{60, 62, 67}},
		{Sus4, []int{60, 65, 67}},
		{Major6, []int{60, 64, 67, 69}},
		{Minor6, []int{60, 63, 67, 69}},
		{Dominant7, []int{60, 64, 67, 70}},
		{Major7, []int{60, 64, 67, 71}},
		{Minor7, []int{60, 63, 67, 70}},
		{MinorMajor7, []int{60, 63, 67, 71}},
		{HalfDiminished7, []int{60, 63, 66, 70}},
		{Diminished7, []int{60, 63, 66, 69}},
		{Augmented7, []int{60, 64, 68, 70}},
		{Dominant9, []int{60, 64, 67, 70, 74}},
		{Major9, []int{60, 64, 67, 71, 74}},
		{Minor9, []int{60, 63, 67, 70, 74}},
	}

	for _, tt := range tests {
		t.Run(tt.quality.String(), func(t *testing.T) {
			got := midiNumbers(NewChord(c4, tt.quality).Pitches())
			if !equalInts(got, tt.want) {
				t.Errorf("Pitches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChordTableInvariants(t *testing.T) {
	for quality, intervals := range chordIntervals {
		if len(intervals) < 3 {
			t.Errorf("%s has %d intervals, want at least 3", quality, len(intervals))
		}
		if intervals[0] != interval(1, Perfect) {
			t.Errorf("%s does not start on a perfect unison", quality)
		}
	}
	if len(chordIntervals) != 18 {
		t.Errorf("quality table has %d entries, want 18", len(chordIntervals))
	}
}

func TestUnknownQualityFallsBackToMajorTriad(t *testing.T) {
	c4 := NewPitchFromMIDI(60)
	got := midiNumbers(NewChord(c4, ChordQuality(99)).Pitches())
	if !equalInts(got, []int{60, 64, 67}) {
		t.Errorf("Pitches() = %v, want the major triad", got)
	}
}

func TestChordTranspose(t *testing.T) {
	c4 := NewPitchFromMIDI(60)
	d4 := NewPitchFromMIDI(62)

	moved := NewChord(c4, Minor7).Transpose(d4)
	if moved.Quality() != Minor7 {
		t.Errorf("Transpose changed quality to %s", moved.Quality())
	}
	got := midiNumbers(moved.Pitches())
	if !equalInts(got, []int{62, 65, 69, 72}) {
		t.Errorf("transposed Pitches() = %v, want [62 65 69 72]", got)
	}

	// Transposition re-derives the recipe from the table, so even a chord
	// built from a custom interval set lands on the table's definition.
	custom, err := NewCustomChord(c4, MajorTriad, []Interval{
		interval(1, Perfect), interval(4, Perfect), interval(5, Perfect), interval(7, Minor),
	})
	if err != nil {
		t.Fatal(err)
	}
	fromCustom := custom.Transpose(d4)
	if !equalInts(midiNumbers(fromCustom.Pitches()), []int{62, 66, 69}) {
		t.Errorf("custom chord transposed to %v, want the table recipe", midiNumbers(fromCustom.Pitches()))
	}
}

func TestNewCustomChordValidation(t *testing.T) {
	c4 := NewPitchFromMIDI(60)

	_, err := NewCustomChord(c4, MajorTriad, []Interval{interval(1, Perfect), interval(5, Perfect)})
	if !errors.Is(err, ErrInvalidChordStructure) {
		t.Errorf("two-interval chord error = %v, want ErrInvalidChordStructure", err)
	}

	_, err = NewCustomChord(c4, MajorTriad, []Interval{
		interval(3, Major), interval(5, Perfect), interval(8, Perfect),
	})
	if !errors.Is(err, ErrInvalidChordStructure) {
		t.Errorf("non-unison start error = %v, want ErrInvalidChordStructure", err)
	}
}

func TestChordNotesShareAttributes(t *testing.T) {
	c4 := NewPitchFromMIDI(60)
	notes := NewChord(c4, MajorTriad).Notes(Eighth, Natural, Forte, Staccato)

	if len(notes) != 3 {
		t.Fatalf("Notes() returned %d notes, want 3", len(notes))
	}
	for i, n := range notes {
		if n.Duration != Eighth || n.Dynamic != Forte || n.Articulation != Staccato || n.Accidental() != Natural {
			t.Errorf("note %d does not share the requested attributes", i)
		}
	}
	if notes[1].Pitch().MIDINumber() != 64 {
		t.Errorf("second chord note MIDI = %d, want 64", notes[1].Pitch().MIDINumber())
	}
}

func TestParseChordQuality(t *testing.T) {
	for quality, name := range chordQualityNames {
		got, err := ParseChordQuality(name)
		if err != nil {
			t.Errorf("ParseChordQuality(%q) error: %v", name, err)
			continue
		}
		if got != quality {
			t.Errorf("ParseChordQuality(%q) = %v, want %v", name, got, quality)
		}
	}

	if _, err := ParseChordQuality("polka"); err == nil {
		t.Error("expected error for unknown quality name")
	}
}
