package theory

import (
	"errors"
	"testing"
)

func TestMajorScalePitches(t *testing.T) {
	c4 := NewPitchFromMIDI(60)
	got := midiNumbers(MajorScale(c4).Pitches(true))
	want := []int{60, 62, 64, 65, 67, 69, 71, 72}
	if !equalInts(got, want) {
		t.Errorf("C major Pitches(true) = %v, want %v", got, want)
	}

	without := midiNumbers(MajorScale(c4).Pitches(false))
	if !equalInts(without, want[:7]) {
		t.Errorf("C major Pitches(false) = %v, want %v", without, want[:7])
	}
}

func TestScaleFactories(t *testing.T) {
	c4 := NewPitchFromMIDI(60)
	tests := []struct {
		name  string
		build func(Pitch) Scale
		want  []int
	}{
		{"natural minor", NaturalMinorScale, []int{60, 62, 63, 65, 67, 68, 70, 72}},
		{"harmonic minor", HarmonicMinorScale, []int{60, 62, 63, 65, 67, 68, 71, 72}},
		{"major pentatonic", MajorPentatonicScale, []int{60, 62, 64, 67, 69, 72}},
		{"whole tone", WholeToneScale, []int{60, 62, 64, 66, 68, 70, 72}},
		{"chromatic", ChromaticScale, []int{60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71, 72}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := midiNumbers(tt.build(c4).Pitches(true))
			if !equalInts(got, tt.want) {
				t.Errorf("Pitches(true) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleDegreeWraparound(t *testing.T) {
	c4 := NewPitchFromMIDI(60)
	scale := MajorScale(c4)

	tests := []struct {
		degree int
		want   int
	}{
		{1, 60}, // tonic
		{2, 62},
		{7, 71},
		{8, 72},  // tonic, one octave up
		{9, 74},  // degree 2, one octave up
		{15, 84}, // tonic, two octaves up
		{16, 86},
	}

	for _, tt := range tests {
		p, err := scale.PitchAtDegree(tt.degree)
		if err != nil {
			t.Fatalf("PitchAtDegree(%d) error: %v", tt.degree, err)
		}
		if p.MIDINumber() != tt.want {
			t.Errorf("PitchAtDegree(%d) = %d, want %d", tt.degree, p.MIDINumber(), tt.want)
		}
	}

	degree9, _ := scale.PitchAtDegree(9)
	degree2, _ := scale.PitchAtDegree(2)
	if degree9.MIDINumber() != degree2.MIDINumber()+12 {
		t.Errorf("degree 9 = %d, want degree 2 + 12 = %d", degree9.MIDINumber(), degree2.MIDINumber()+12)
	}
}

func TestPitchAtDegreeRejectsDegreesBelowOne(t *testing.T) {
	scale := MajorScale(NewPitchFromMIDI(60))
	for _, degree := range []int{0, -1} {
		if _, err := scale.PitchAtDegree(degree); !errors.Is(err, ErrInvalidDegree) {
			t.Errorf("PitchAtDegree(%d) error = %v, want ErrInvalidDegree", degree, err)
		}
	}
	if _, err := scale.NoteAtDegree(0, Quarter, Natural, MezzoForte, NormalArticulation); !errors.Is(err, ErrInvalidDegree) {
		t.Errorf("NoteAtDegree(0) error = %v, want ErrInvalidDegree", err)
	}
}

func TestNewScaleValidation(t *testing.T) {
	c4 := NewPitchFromMIDI(60)

	_, err := NewScale(c4, "empty", MajorScaleType, nil)
	if !errors.Is(err, ErrEmptyIntervalSet) {
		t.Errorf("empty pattern error = %v, want ErrEmptyIntervalSet", err)
	}

	_, err = NewScale(c4, "offset", MajorScaleType, []Interval{interval(2, Major), interval(3, Major)})
	if !errors.Is(err, ErrInvalidTonicInterval) {
		t.Errorf("non-unison start error = %v, want ErrInvalidTonicInterval", err)
	}
}

func TestSingleIntervalPatternStacksOctaves(t *testing.T) {
	c4 := NewPitchFromMIDI(60)
	scale, err := NewScale(c4, "tonic only", ChromaticScaleType, []Interval{interval(1, Perfect)})
	if err != nil {
		t.Fatal(err)
	}
	p, err := scale.PitchAtDegree(3)
	if err != nil {
		t.Fatal(err)
	}
	if p.MIDINumber() != 84 {
		t.Errorf("degree 3 of a unison-only pattern = %d, want 84", p.MIDINumber())
	}
}

func TestNoteAtDegree(t *testing.T) {
	a3, _ := NewPitchFromNote("A", 3)
	scale := NaturalMinorScale(a3)

	n, err := scale.NoteAtDegree(3, Half, Natural, Piano, Legato)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.Pitch().MIDINumber(); got != 60 {
		t.Errorf("third degree of A minor = %d, want 60", got)
	}
	if n.Duration != Half || n.Dynamic != Piano || n.Articulation != Legato {
		t.Error("note attributes do not match the request")
	}
}

func TestScaleTranspose(t *testing.T) {
	c4 := NewPitchFromMIDI(60)
	g4 := NewPitchFromMIDI(67)
	scale := MajorScale(c4)

	renamed := scale.Transpose(g4, "G Major")
	if renamed.Name() != "G Major" || renamed.Tonic().MIDINumber() != 67 {
		t.Errorf("Transpose gave name %q tonic %d", renamed.Name(), renamed.Tonic().MIDINumber())
	}
	got := midiNumbers(renamed.Pitches(true))
	want := []int{67, 69, 71, 72, 74, 76, 78, 79}
	if !equalInts(got, want) {
		t.Errorf("transposed Pitches(true) = %v, want %v", got, want)
	}

	kept := scale.Transpose(g4, "")
	if kept.Name() != scale.Name() {
		t.Errorf("empty newName should keep %q, got %q", scale.Name(), kept.Name())
	}
	// The original is untouched.
	if scale.Tonic().MIDINumber() != 60 {
		t.Error("Transpose must not mutate the receiver")
	}
}

func TestScaleFactoryLookup(t *testing.T) {
	build, err := ScaleFactory("Major")
	if err != nil {
		t.Fatal(err)
	}
	s := build(NewPitchFromMIDI(60))
	if s.Type() != MajorScaleType {
		t.Errorf("factory built %v, want major", s.Type())
	}

	if _, err := ScaleFactory("dorian"); err == nil {
		t.Error("expected error for unsupported scale name")
	}
}
