package theory

// Diatonic theory constants shared by Interval, Chord and Scale. These are
// the single authoritative source for letter counting and semitone spans.

// baseSemitones maps a reduced diatonic number (1..7) to its unaltered
// semitone span: unison, major 2nd, major 3rd, perfect 4th, perfect 5th,
// major 6th, major 7th.
var baseSemitones = [8]int{0, 0, 2, 4, 5, 7, 9, 11}

// letterDegrees maps a natural note letter to its diatonic degree, C=1..B=7.
var letterDegrees = map[byte]int{
	'C': 1, 'D': 2, 'E': 3, 'F': 4, 'G': 5, 'A': 6, 'B': 7,
}

// reduceNumber folds a diatonic number onto 1..7 and returns the number of
// whole octaves folded out.
func reduceNumber(number int) (base, octaves int) {
	return (number-1)%7 + 1, (number - 1) / 7
}

// isPerfectClass reports whether a reduced diatonic number belongs to the
// perfect class (unison, fourth, fifth) rather than the major/minor class.
func isPerfectClass(base int) bool {
	return base == 1 || base == 4 || base == 5
}
