package utils

import "strings"

// MaskEmail hides most of the local part of a submitter address in logs.
// Example: "jane@example.com" -> "j***@example.com"
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	if len(local) <= 1 {
		return local + "***@" + domain
	}
	return local[:1] + "***@" + domain
}
