package score

// Musical notation symbols used when rendering the staff
// (see https://jonasjacek.github.io/colors/ for the editor palette).
var (
	ClefTreble = "𝄞"
	ClefAlto   = "𝄡"
	ClefBass   = "𝄢"

	TimeCommon = "4/4"

	// Indexed by log2 of the duration: whole, half, quarter, ...
	noteSymbols = []string{"𝅝", "𝅗𝅥", "𝅘𝅥", "𝅘𝅥𝅮", "𝅘𝅥𝅯", "𝅘𝅥𝅰", "𝅘𝅥𝅱"}
	restSymbols = []string{"𝄻", "𝄼", "𝄽", "𝄾", "𝄿", "𝅀", "𝅁"}

	AccidentalFlat    = "♭"
	AccidentalNatural = "♮"
	AccidentalSharp   = "♯"
)

func durationIndex(duration int) int {
	i := 0
	for d := duration; d > 1; d >>= 1 {
		i++
	}
	return i
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
