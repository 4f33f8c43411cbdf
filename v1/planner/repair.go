package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnparsableResponse is returned when no parse strategy can recover a JSON
// object from a model response.
var ErrUnparsableResponse = errors.New("model response is not a JSON object")

// parseStrategy recovers a plan candidate from raw model output.
type parseStrategy struct {
	name  string
	parse func(string) (map[string]any, error)
}

// parseChain is tried in order; the first strategy that yields an object wins.
var parseChain = []parseStrategy{
	{name: "direct", parse: decodeObject},
	{name: "substring", parse: func(s string) (map[string]any, error) {
		return decodeObject(outermostObject(s))
	}},
	{name: "repaired", parse: func(s string) (map[string]any, error) {
		return decodeObject(repairJSON(outermostObject(s)))
	}},
}

// parseCandidate runs the parse chain over content and reports which strategy
// succeeded.
func parseCandidate(content string) (map[string]any, string, error) {
	var lastErr error
	for _, st := range parseChain {
		obj, err := st.parse(content)
		if err == nil {
			return obj, st.name, nil
		}
		lastErr = err
	}
	return nil, "", fmt.Errorf("%w: %v", ErrUnparsableResponse, lastErr)
}

func decodeObject(s string) (map[string]any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty content")
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("content is null")
	}
	return obj, nil
}

// outermostObject returns the text between the first '{' and the last '}'.
// Code fences and chatter around the object fall away.
func outermostObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyRe       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
)

// repairJSON applies the bounded set of fixes models most often need: line
// comments, trailing commas and unquoted keys.
func repairJSON(s string) string {
	s = stripLineComments(s)
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)
	return s
}

// stripLineComments removes // comments that sit outside string literals.
func stripLineComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				b.WriteByte('\n')
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
