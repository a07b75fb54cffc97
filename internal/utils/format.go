package utils

import (
	"strconv"
	"strings"
)

// FormatWeight renders a weight with thousands separators, dropping a zero fraction
func FormatWeight(w float64) string {
	s := strconv.FormatFloat(w, 'f', -1, 64)
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sb.String()
}
