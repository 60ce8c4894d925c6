package satzbau

import (
	"math"
	"strconv"
	"strings"
)

// numberWords are the numerals spelled out in noun phrases.
var numberWords = map[float64]string{
	2:  "zwei",
	3:  "drei",
	4:  "vier",
	5:  "fünf",
	6:  "sechs",
	7:  "sieben",
	8:  "acht",
	9:  "neun",
	10: "zehn",
}

// FormatNumber returns the German word for 2 to 10 and a numeral with a
// decimal comma otherwise. Negative values are prefixed with "minus ".
//
//	FormatNumber(5)   // "fünf"
//	FormatNumber(0.5) // "0,5"
//	FormatNumber(-3)  // "minus drei"
func FormatNumber(n float64) string {
	abs := math.Abs(n)
	s, ok := numberWords[abs]
	if !ok {
		s = strings.Replace(strconv.FormatFloat(abs, 'f', -1, 64), ".", ",", 1)
	}
	if n < 0 {
		return "minus " + s
	}
	return s
}
