package display

// Fit returns exactly n lines: overflow drops lines from the front, and
// short input is padded with empty lines at the end.
func Fit(lines []string, n int) []string {
	if n < 1 {
		n = 1
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, n)
	copy(out, lines)
	return out
}

// Blank returns n empty lines.
func Blank(n int) []string {
	return Fit(nil, n)
}

// IsBlank reports whether every line is empty.
func IsBlank(lines []string) bool {
	for _, l := range lines {
		if l != "" {
			return false
		}
	}
	return true
}
