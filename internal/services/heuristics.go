package services

import (
	"regexp"
	"strings"
)

// Contact-detail heuristics over already-extracted resume text. All of these
// are pure: no match returns the empty string, never an error.

var (
	emailRegex  = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	phoneRegex  = regexp.MustCompile(`(\+?\d{1,3}[\s-]?)?\d{10}|\d{3}[\s-]\d{3}[\s-]\d{4}`)
	letterRegex = regexp.MustCompile(`[A-Za-z]`)
)

// ExtractEmail returns the leftmost email-shaped substring.
func ExtractEmail(text string) string {
	return emailRegex.FindString(text)
}

// ExtractPhone returns the first 10-digit run (optionally with a country
// code) or 3-3-4 grouped number.
func ExtractPhone(text string) string {
	return phoneRegex.FindString(text)
}

// ExtractName scans at most the first 6 non-empty lines for one that looks
// like a header name: not a "Resume" label, contains a letter, and at most
// 4 words. Resume headers conventionally put the name before the label line
// and the contact block.
func ExtractName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	if len(lines) > 6 {
		lines = lines[:6]
	}

	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "resume") {
			continue
		}
		if !letterRegex.MatchString(line) {
			continue
		}
		if len(strings.Fields(line)) > 4 {
			continue
		}
		return line
	}

	return ""
}
