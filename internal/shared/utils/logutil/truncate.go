package logutil

// TruncateForLog shortens free text such as ticket titles to maxLen runes,
// appending "..." when anything was cut.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
