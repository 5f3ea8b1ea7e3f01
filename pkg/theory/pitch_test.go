package theory

import (
	"errors"
	"math"
	"testing"
)

func TestNewPitchFromNote(t *testing.T) {
	tests := []struct {
		name     string
		octave   int
		wantMIDI int
	}{
		{"C", 4, 60},
		{"A", 4, 69},
		{"G#", 3, 56},
		{"B", 4, 71},
		{"C", -1, 0},
		{"G", 9, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPitchFromNote(tt.name, tt.octave)
			if err != nil {
				t.Fatalf("NewPitchFromNote(%q, %d) error: %v", tt.name, tt.octave, err)
			}
			if p.MIDINumber() != tt.wantMIDI {
				t.Errorf("MIDINumber() = %d, want %d", p.MIDINumber(), tt.wantMIDI)
			}
		})
	}
}

func TestNewPitchFromNoteRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"X", "Db", "c", "H", ""} {
		_, err := NewPitchFromNote(name, 4)
		if !errors.Is(err, ErrInvalidNoteName) {
			t.Errorf("NewPitchFromNote(%q, 4) error = %v, want ErrInvalidNoteName", name, err)
		}
	}
}

func TestMIDIRoundTrip(t *testing.T) {
	for midi := 0; midi <= 127; midi++ {
		p := NewPitchFromMIDI(midi)
		if p.MIDINumber() != midi {
			t.Fatalf("MIDINumber() = %d, want %d", p.MIDINumber(), midi)
		}
		back, err := NewPitchFromNote(p.NoteName(), p.Octave())
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", midi, err)
		}
		if back.MIDINumber() != midi {
			t.Fatalf("round trip of %d via (%s, %d) = %d", midi, p.NoteName(), p.Octave(), back.MIDINumber())
		}
		if p.PitchClass() != midi%12 {
			t.Fatalf("PitchClass() = %d, want %d", p.PitchClass(), midi%12)
		}
	}
}

func TestNewPitchFromFrequencySnapsToSemitone(t *testing.T) {
	tests := []struct {
		hz       float64
		wantMIDI int
	}{
		{440.0, 69},
		{443.0, 69},  // sharp A4, snaps down
		{466.16, 70}, // A#4
		{261.63, 60}, // middle C
		{27.5, 21},   // A0
	}

	for _, tt := range tests {
		p := NewPitchFromFrequency(tt.hz)
		if p.MIDINumber() != tt.wantMIDI {
			t.Errorf("NewPitchFromFrequency(%v).MIDINumber() = %d, want %d", tt.hz, p.MIDINumber(), tt.wantMIDI)
		}
		// The stored frequency reflects the snapped MIDI number.
		want := NewPitchFromMIDI(tt.wantMIDI).Frequency()
		if math.Abs(p.Frequency()-want) > 1e-9 {
			t.Errorf("NewPitchFromFrequency(%v).Frequency() = %v, want %v", tt.hz, p.Frequency(), want)
		}
	}
}

func TestOctaveFrequencyRatio(t *testing.T) {
	for _, tuning := range []Tuning{StandardTuning, {ConcertA: 432.0}, {ConcertA: 415.0}} {
		low := NewPitchFromMIDIWithTuning(57, tuning)
		high := NewPitchFromMIDIWithTuning(69, tuning)
		ratio := high.Frequency() / low.Frequency()
		if math.Abs(ratio-2.0) > 1e-9 {
			t.Errorf("octave ratio under A4=%v is %v, want 2.0", tuning.ConcertA, ratio)
		}
	}
}

func TestDefaultTuningIsSnapshotAtConstruction(t *testing.T) {
	defer SetDefaultTuning(StandardTuning)

	before := NewPitchFromMIDI(69)
	SetDefaultTuning(Tuning{ConcertA: 432.0})
	after := NewPitchFromMIDI(69)

	if before.Frequency() != 440.0 {
		t.Errorf("pitch built before retune has frequency %v, want 440", before.Frequency())
	}
	if after.Frequency() != 432.0 {
		t.Errorf("pitch built after retune has frequency %v, want 432", after.Frequency())
	}
}

func TestParsePitch(t *testing.T) {
	tests := []struct {
		in       string
		wantMIDI int
		wantErr  bool
	}{
		{"C4", 60, false},
		{"F#3", 54, false},
		{"A#-1", 10, false},
		{"C", 0, true},
		{"Hb4", 0, true},
		{"C#x", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePitch(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNoteName) {
					t.Errorf("ParsePitch(%q) error = %v, want ErrInvalidNoteName", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePitch(%q) error: %v", tt.in, err)
			}
			if p.MIDINumber() != tt.wantMIDI {
				t.Errorf("ParsePitch(%q).MIDINumber() = %d, want %d", tt.in, p.MIDINumber(), tt.wantMIDI)
			}
		})
	}
}

func TestPitchArithmetic(t *testing.T) {
	c4 := NewPitchFromMIDI(60)

	up := c4.AddSemitones(4)
	if up.MIDINumber() != 64 {
		t.Errorf("AddSemitones(4) = %d, want 64", up.MIDINumber())
	}
	down := c4.SubSemitones(2)
	if down.MIDINumber() != 58 {
		t.Errorf("SubSemitones(2) = %d, want 58", down.MIDINumber())
	}
	if got := c4.SemitonesTo(up); got != 4 {
		t.Errorf("SemitonesTo = %d, want 4", got)
	}
	if got := up.SemitonesTo(c4); got != -4 {
		t.Errorf("reverse SemitonesTo = %d, want -4", got)
	}
	// Transposition never mutates the receiver.
	if c4.MIDINumber() != 60 {
		t.Errorf("receiver changed to %d after transposition", c4.MIDINumber())
	}
}

func TestPitchEqualityIsByMIDINumber(t *testing.T) {
	fromFreq := NewPitchFromFrequency(440.0)
	fromNote, _ := NewPitchFromNote("A", 4)
	retuned := NewPitchFromMIDIWithTuning(69, Tuning{ConcertA: 432.0})

	if !fromFreq.Equal(fromNote) {
		t.Error("pitches with equal MIDI numbers should be equal")
	}
	if !fromFreq.Equal(retuned) {
		t.Error("equality must ignore the tuning standard")
	}
	if !fromNote.Less(NewPitchFromMIDI(70)) {
		t.Error("A4 should order below A#4")
	}
}

func TestPitchString(t *testing.T) {
	tests := []struct {
		midi int
		want string
	}{
		{60, "C4"},
		{61, "C#4"},
		{69, "A4"},
		{0, "C-1"},
	}
	for _, tt := range tests {
		if got := NewPitchFromMIDI(tt.midi).String(); got != tt.want {
			t.Errorf("String() for MIDI %d = %q, want %q", tt.midi, got, tt.want)
		}
	}
}
