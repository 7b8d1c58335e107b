package assistant

import (
	"encoding/json"
	"strings"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/command"
)

// Result is the normalized outcome of one assistant exchange: text to
// display plus an optional structured command.
type Result struct {
	Text    string
	Command *command.Command
}

// envelope is the JSON shape the prompt instructs every model to emit.
type envelope struct {
	Text    string          `json:"text"`
	Action  *string         `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// Parse extracts a Result from raw model output. It never fails: malformed
// output degrades to plain text. Stages:
//  1. strip surrounding markdown fences;
//  2. decode the whole text as the {text, action, payload} envelope;
//  3. fall back to scanning for an embedded JSON object carrying an
//     "action" key, for providers that ignore the JSON-only instruction
//     and wrap the object in prose;
//  4. otherwise return the raw text with no command.
//
// An action outside the recognized vocabulary yields a nil command.
func Parse(raw string) Result {
	cleaned := stripFences(raw)

	var env envelope
	if err := json.Unmarshal([]byte(cleaned), &env); err == nil {
		if env.Text != "" || env.Action != nil {
			return resultFromEnvelope(env, raw)
		}
	}

	if text, env, ok := extractEmbedded(raw); ok {
		res := resultFromEnvelope(env, raw)
		// Prose around the object is the display text; the envelope's own
		// text wins only when the surroundings are empty.
		if text != "" {
			if env.Text != "" && env.Text != text {
				res.Text = strings.TrimSpace(text)
			} else {
				res.Text = text
			}
		}
		return res
	}

	return Result{Text: raw}
}

// resultFromEnvelope converts a decoded envelope, dropping unknown actions.
func resultFromEnvelope(env envelope, raw string) Result {
	res := Result{Text: env.Text}

	if env.Action != nil {
		tag := command.Tag(strings.ToUpper(strings.TrimSpace(*env.Action)))
		if command.Known(tag) {
			res.Command = &command.Command{Tag: tag, Payload: env.Payload}
		}
	}

	if res.Text == "" {
		if res.Command != nil {
			res.Text = "Done."
		} else {
			res.Text = raw
		}
	}
	return res
}

// stripFences removes surrounding markdown code-fence markers.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop an optional language hint on the fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "json" || first == "" {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractEmbedded scans raw for the first balanced JSON object containing an
// "action" key. It returns the remaining prose (with the object removed) and
// the decoded envelope.
func extractEmbedded(raw string) (string, envelope, bool) {
	for start := 0; start < len(raw); start++ {
		if raw[start] != '{' {
			continue
		}
		end, ok := matchBrace(raw, start)
		if !ok {
			continue
		}
		fragment := raw[start : end+1]
		if !strings.Contains(fragment, `"action"`) {
			continue
		}

		var env envelope
		if err := json.Unmarshal([]byte(fragment), &env); err != nil {
			continue
		}

		remaining := strings.TrimSpace(raw[:start] + " " + raw[end+1:])
		remaining = strings.Join(strings.Fields(remaining), " ")
		return remaining, env, true
	}
	return "", envelope{}, false
}

// matchBrace finds the index of the brace closing the object opened at
// start, skipping braces inside JSON strings.
func matchBrace(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
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
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
