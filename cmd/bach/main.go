// Package main is the entry point for the bach CLI
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odysseia06/Bach/pkg/api"
	"github.com/odysseia06/Bach/pkg/performance"
	"github.com/odysseia06/Bach/pkg/theory"
	"github.com/odysseia06/Bach/pkg/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	concertA   float64
	serverPort int
	asMIDI     bool
	degrees    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bach",
	Short: "Music theory calculations from the command line",
	Long: `bach computes western music theory: pitch conversions between
frequency, MIDI number and scientific notation, diatonic interval
arithmetic, chord spelling and scale degrees.

Examples:
  bach pitch C#4
  bach pitch 440hz
  bach pitch midi:60
  bach interval C4 E4
  bach chord C4 minor7
  bach scale A3 minor
  bach tui
  bach serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var pitchCmd = &cobra.Command{
	Use:   "pitch <name|freq|midi:n>",
	Short: "Look up a pitch by name, frequency or MIDI number",
	Args:  cobra.ExactArgs(1),
	RunE:  runPitch,
}

var intervalCmd = &cobra.Command{
	Use:   "interval <from> <to>",
	Short: "Derive the diatonic interval between two pitches",
	Args:  cobra.ExactArgs(2),
	RunE:  runInterval,
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> <quality>",
	Short: "Spell a chord from a root pitch and quality",
	Args:  cobra.ExactArgs(2),
	RunE:  runChord,
}

var scaleCmd = &cobra.Command{
	Use:   "scale <tonic> <name>",
	Short: "Spell a scale from a tonic pitch and scale name",
	Args:  cobra.ExactArgs(2),
	RunE:  runScale,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().Float64VarP(&concertA, "concert-a", "a", 440.0, "Tuning standard: frequency of A4 in Hz")

	// chord/scale flags
	chordCmd.Flags().BoolVarP(&asMIDI, "midi", "m", false, "Also print the chord as MIDI events")
	scaleCmd.Flags().BoolVarP(&asMIDI, "midi", "m", false, "Also print the scale as MIDI events")
	scaleCmd.Flags().IntVarP(&degrees, "degrees", "n", 0, "Print pitches up to this degree (wraps into higher octaves)")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(pitchCmd)
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(chordCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyTuning points the default tuning at the --concert-a flag before any
// pitch is constructed.
func applyTuning() {
	theory.SetDefaultTuning(theory.Tuning{ConcertA: concertA})
}

func parsePitchArg(arg string) (theory.Pitch, error) {
	lower := strings.ToLower(arg)
	switch {
	case strings.HasPrefix(lower, "midi:"):
		n, err := strconv.Atoi(strings.TrimPrefix(lower, "midi:"))
		if err != nil {
			return theory.Pitch{}, fmt.Errorf("invalid midi number: %q", arg)
		}
		return theory.NewPitchFromMIDI(n), nil
	case strings.HasSuffix(lower, "hz"):
		hz, err := strconv.ParseFloat(strings.TrimSuffix(lower, "hz"), 64)
		if err != nil || hz <= 0 {
			return theory.Pitch{}, fmt.Errorf("invalid frequency: %q", arg)
		}
		return theory.NewPitchFromFrequency(hz), nil
	}
	return theory.ParsePitch(arg)
}

func runPitch(cmd *cobra.Command, args []string) error {
	applyTuning()
	pitch, err := parsePitchArg(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", pitch)
	fmt.Printf("  MIDI:        %d\n", pitch.MIDINumber())
	fmt.Printf("  Pitch class: %d\n", pitch.PitchClass())
	fmt.Printf("  Frequency:   %.2f Hz (A4 = %.1f Hz)\n", pitch.Frequency(), pitch.Tuning().ConcertA)
	return nil
}

func runInterval(cmd *cobra.Command, args []string) error {
	applyTuning()
	from, err := parsePitchArg(args[0])
	if err != nil {
		return err
	}
	to, err := parsePitchArg(args[1])
	if err != nil {
		return err
	}

	iv := theory.IntervalBetweenPitches(from, to)
	fmt.Printf("%s → %s: %s (%s)\n", from, to, iv, iv.Quality().Name())
	fmt.Printf("  Semitones: %d\n", iv.Semitones())
	fmt.Printf("  Cents:     %.0f\n", iv.Cents())
	fmt.Printf("  Inversion: %s\n", iv.Invert())
	if iv.IsCompound() {
		fmt.Println("  Compound interval")
	}
	return nil
}

func runChord(cmd *cobra.Command, args []string) error {
	applyTuning()
	root, err := parsePitchArg(args[0])
	if err != nil {
		return err
	}
	quality, err := theory.ParseChordQuality(args[1])
	if err != nil {
		return err
	}

	chord := theory.NewChord(root, quality)
	fmt.Printf("%s\n", chord)
	intervals := chord.Intervals()
	for i, p := range chord.Pitches() {
		fmt.Printf("  %-4s %s (MIDI %d)\n", intervals[i], p, p.MIDINumber())
	}

	if asMIDI {
		printEvents(performance.NewRenderer().RenderChord(chord, 0, theory.Quarter, theory.MezzoForte, theory.NormalArticulation))
	}
	return nil
}

func runScale(cmd *cobra.Command, args []string) error {
	applyTuning()
	tonic, err := parsePitchArg(args[0])
	if err != nil {
		return err
	}
	build, err := theory.ScaleFactory(args[1])
	if err != nil {
		return err
	}
	scale := build(tonic)

	fmt.Printf("%s\n", scale.Name())
	if degrees > 0 {
		for d := 1; d <= degrees; d++ {
			p, err := scale.PitchAtDegree(d)
			if err != nil {
				return err
			}
			fmt.Printf("  %2d: %s (MIDI %d)\n", d, p, p.MIDINumber())
		}
	} else {
		for i, p := range scale.Pitches(true) {
			fmt.Printf("  %2d: %s (MIDI %d)\n", i+1, p, p.MIDINumber())
		}
	}

	if asMIDI {
		printEvents(performance.NewRenderer().RenderScale(scale, 0, theory.Eighth, theory.MezzoForte, theory.NormalArticulation))
	}
	return nil
}

func printEvents(events []performance.Event) {
	fmt.Println("MIDI events:")
	for _, ev := range events {
		fmt.Printf("  tick %4d: %s\n", ev.Tick, ev.Message)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
