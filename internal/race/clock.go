package race

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeClock parses a wall-clock style duration of the form HH:MM:SS into
// total seconds. Components are plain integers with no enforced upper bound,
// so "25:90:90" decodes arithmetically to 95490 rather than being rejected.
// The second return value is false when the text is empty or not a three-part
// numeric form; callers treat that as "no value", not as a failure.
func DecodeClock(text string) (int, bool) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, false
	}

	total := 0
	for i, mult := range [3]int{3600, 60, 1} {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return 0, false
		}
		total += n * mult
	}
	return total, true
}

// EncodeClock formats a non-negative total of seconds as zero-padded
// HH:MM:SS. DecodeClock(EncodeClock(s)) == s for all s >= 0.
func EncodeClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
