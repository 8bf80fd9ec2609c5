package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fenceOpen  = regexp.MustCompile("^```(json)?")
	fenceClose = regexp.MustCompile("```$")
)

// CleanJSON strips markdown code fences and surrounding prose from a model
// response so the remainder can be handed to the JSON decoder. Models wrap
// their output in ```json fences more often than not.
func CleanJSON(text string) string {
	text = strings.TrimSpace(text)
	text = fenceOpen.ReplaceAllString(text, "")
	text = fenceClose.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	// Some responses lead with a sentence before the object. Slice to the
	// outermost braces when the text doesn't already start with one.
	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		start := strings.IndexAny(text, "{[")
		end := strings.LastIndexAny(text, "}]")
		if start >= 0 && end > start {
			text = text[start : end+1]
		}
	}
	return text
}

// CleanText strips code fences from a response expected to be plain prose,
// repair and translation replies mostly. No brace slicing.
func CleanText(text string) string {
	text = strings.TrimSpace(text)
	text = fenceOpen.ReplaceAllString(text, "")
	text = fenceClose.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// DecodeJSON is the single boundary where raw model output becomes a parsed
// structure. It never panics and never leaks a half-cleaned string: callers
// get the value or an error, nothing else.
func DecodeJSON(raw string, v any) error {
	cleaned := CleanJSON(raw)
	if cleaned == "" {
		return fmt.Errorf("empty model response")
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("model response is not valid JSON: %w", err)
	}
	return nil
}
