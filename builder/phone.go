package builder

import (
	"strconv"
	"strings"
)

// Phone is the product assembled by a PhoneBuilder.
type Phone struct {
	Size    float32 // screen size, inches
	FPS     int     // refresh rate
	Focal   int     // number of focal lengths
	Battery int     // capacity, mAh
}

// String renders the phone as Phone{size=5.8, fps=120, focal=3, battery=3200}.
func (p Phone) String() string {
	var sb strings.Builder
	sb.WriteString("Phone{size=")
	sb.WriteString(formatSize(p.Size))
	sb.WriteString(", fps=")
	sb.WriteString(strconv.Itoa(p.FPS))
	sb.WriteString(", focal=")
	sb.WriteString(strconv.Itoa(p.Focal))
	sb.WriteString(", battery=")
	sb.WriteString(strconv.Itoa(p.Battery))
	sb.WriteByte('}')
	return sb.String()
}

// formatSize prints the shortest decimal that round-trips the float32 and
// keeps a fractional part for whole numbers (6 -> "6.0").
func formatSize(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if strings.IndexFunc(s, func(r rune) bool { return r != '-' && (r < '0' || r > '9') }) < 0 {
		s += ".0"
	}
	return s
}
