package assistant

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/command"
)

func TestParse_WellFormedEnvelope(t *testing.T) {
	raw := `{"text":"Here are my projects","action":"RENDER_PROJECTS","payload":[{"title":"One"}]}`

	res := Parse(raw)

	if res.Text != "Here are my projects" {
		t.Errorf("Parse() text = %q", res.Text)
	}
	if res.Command == nil {
		t.Fatal("Parse() command = nil, want RENDER_PROJECTS")
	}
	if res.Command.Tag != command.RenderProjects {
		t.Errorf("Parse() tag = %s, want RENDER_PROJECTS", res.Command.Tag)
	}
	if string(res.Command.Payload) != `[{"title":"One"}]` {
		t.Errorf("Parse() payload = %s", res.Command.Payload)
	}
}

func TestParse_NullAction(t *testing.T) {
	res := Parse(`{"text":"Just an answer","action":null,"payload":null}`)

	if res.Text != "Just an answer" {
		t.Errorf("Parse() text = %q", res.Text)
	}
	if res.Command != nil {
		t.Errorf("Parse() command = %+v, want nil", res.Command)
	}
}

func TestParse_MarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"text\":\"ok\",\"action\":\"STOP_SIMULATION\",\"payload\":{}}\n```"},
		{"bare fence", "```\n{\"text\":\"ok\",\"action\":\"STOP_SIMULATION\",\"payload\":{}}\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.raw)
			if res.Text != "ok" {
				t.Errorf("Parse() text = %q, want ok", res.Text)
			}
			if res.Command == nil || res.Command.Tag != command.StopSimulation {
				t.Errorf("Parse() command = %+v, want STOP_SIMULATION", res.Command)
			}
		})
	}
}

func TestParse_EmbeddedObjectInProse(t *testing.T) {
	raw := `Here you go: {"text":"ok","action":"NAVIGATE","payload":"/projects"} thanks!`

	res := Parse(raw)

	if res.Command == nil {
		t.Fatal("Parse() command = nil, want NAVIGATE")
	}
	if res.Command.Tag != command.Navigate {
		t.Errorf("Parse() tag = %s, want NAVIGATE", res.Command.Tag)
	}
	target, err := res.Command.NavigateTarget()
	if err != nil || target != "/projects" {
		t.Errorf("NavigateTarget() = %q, %v, want /projects", target, err)
	}
	if strings.Contains(res.Text, "{") || strings.Contains(res.Text, "action") {
		t.Errorf("Parse() text still contains the JSON fragment: %q", res.Text)
	}
	if !strings.Contains(res.Text, "Here you go:") || !strings.Contains(res.Text, "thanks!") {
		t.Errorf("Parse() text lost surrounding prose: %q", res.Text)
	}
}

func TestParse_UnknownActionDropped(t *testing.T) {
	res := Parse(`{"text":"hmm","action":"LAUNCH_ROCKET","payload":{}}`)

	if res.Command != nil {
		t.Errorf("Parse() command = %+v, want nil for unknown action", res.Command)
	}
	if res.Text != "hmm" {
		t.Errorf("Parse() text = %q, want hmm", res.Text)
	}
}

func TestParse_PlainTextFallback(t *testing.T) {
	inputs := []string{
		"",
		"just a plain sentence",
		"almost { json but not",
		`[1, 2, 3]`,
		"{}",
	}

	for _, raw := range inputs {
		res := Parse(raw)
		if res.Command != nil {
			t.Errorf("Parse(%q) command = %+v, want nil", raw, res.Command)
		}
		if res.Text != raw {
			t.Errorf("Parse(%q) text = %q, want input unchanged", raw, res.Text)
		}
	}
}

func TestParse_CommandWithEmptyText(t *testing.T) {
	res := Parse(`{"text":"","action":"STOP_SIMULATION","payload":{}}`)

	if res.Command == nil || res.Command.Tag != command.StopSimulation {
		t.Fatalf("Parse() command = %+v, want STOP_SIMULATION", res.Command)
	}
	if res.Text == "" {
		t.Error("Parse() text should be synthesized when the model omits it")
	}
}

func TestParse_SerializeRoundTrip(t *testing.T) {
	payload := json.RawMessage(`"/contact"`)
	encoded, err := json.Marshal(map[string]any{
		"text":    "On my way",
		"action":  "NAVIGATE",
		"payload": payload,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	res := Parse(string(encoded))

	if res.Text != "On my way" {
		t.Errorf("round-trip text = %q", res.Text)
	}
	if res.Command == nil || res.Command.Tag != command.Navigate {
		t.Fatalf("round-trip command = %+v", res.Command)
	}
	target, err := res.Command.NavigateTarget()
	if err != nil || target != "/contact" {
		t.Errorf("round-trip target = %q, %v", target, err)
	}
}

func TestParse_NeverPanics(t *testing.T) {
	inputs := []string{
		"{{{{{",
		`{"action":}`,
		"\x00\x01binary",
		strings.Repeat("{", 10000),
		`prose {"action": "NAVIGATE"` /* unterminated */,
		`{"text": "a", "action": 42}`,
	}

	for _, raw := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", raw, r)
				}
			}()
			_ = Parse(raw)
		}()
	}
}
