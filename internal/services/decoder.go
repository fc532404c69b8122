package services

import (
	"encoding/json"
	"strings"
)

// DecodeJSON best-effort parses a model reply into target. It first tries
// the whole reply as JSON, then falls back to the first bracket-delimited
// substring. Returns false if neither attempt parses; never panics or
// returns an error.
func DecodeJSON(raw string, target interface{}) bool {
	// The strict attempt parses the reply exactly as received; fences are
	// stripped only in the fallback.
	if json.Unmarshal([]byte(raw), target) == nil {
		return true
	}

	candidate := extractJSON(raw)
	if candidate == "" {
		return false
	}

	return json.Unmarshal([]byte(candidate), target) == nil
}

// extractJSON pulls a JSON object or array out of text that might wrap it
// in markdown fences or prose. The scan is greedy (first opening bracket to
// last closing bracket), not a balanced-bracket parse.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	objSpan := startObj != -1 && endObj > startObj
	arrSpan := startArr != -1 && endArr > startArr

	// When both spans exist, the one that opens first wins. A reply wrapping
	// a JSON array in prose must yield the array with its brackets, not the
	// interior between the first { and last } of its elements.
	switch {
	case objSpan && arrSpan:
		if startArr < startObj {
			return text[startArr : endArr+1]
		}
		return text[startObj : endObj+1]
	case arrSpan:
		return text[startArr : endArr+1]
	case objSpan:
		return text[startObj : endObj+1]
	}

	return ""
}
