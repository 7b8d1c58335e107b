package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/command"
)

// tagSpec describes one command tag for the prompt's vocabulary table:
// the payload shape the model must emit and the kind of request that
// justifies emitting it. The table is the authoritative contract between
// this prompt and the response parser.
type tagSpec struct {
	payload string
	trigger string
}

var tagSpecs = map[command.Tag]tagSpec{
	command.Navigate:           {`a route path string, e.g. "/projects"`, "the user asks to open, go to, or visit a page"},
	command.RunSimulation:      {`{"type": "<simulation name>", "payload": {...optional...}}`, "the user asks to run, start, or demo a simulation"},
	command.StopSimulation:     {`{}`, "the user asks to stop, end, or exit the running simulation"},
	command.ExplainProject:     {`the project id string`, "the user asks for details about one specific project"},
	command.RenderProjects:     {`an array of up to 4 {"title", "description", "tech"} objects taken from the context`, "the user asks what projects exist or to see project work"},
	command.RenderExperience:   {`an array of {"company", "position", "years", "description"} objects taken from the context`, "the user asks about work history or experience"},
	command.RenderSkills:       {`an array of skill name strings taken from the context`, "the user asks about skills or technologies"},
	command.RenderContact:      {`{"email", "linkedin", "github"} taken from the context`, "the user asks how to get in touch"},
	command.RenderTour:         {`an array of {"label", "path", "icon"} objects describing site sections`, "the user asks for a tour or overview of the site"},
	command.RenderCertificates: {`an array of {"title", "issuer", "date"} objects taken from the context`, "the user asks about certificates or credentials"},
}

// BuildPrompt renders the full system prompt for one request: identity and
// tone, the command vocabulary, the JSON output contract, and the serialized
// context snapshot. Pure and deterministic; missing context slices are
// omitted, and the result is never empty even for an empty snapshot.
func BuildPrompt(snap Snapshot, userMessage string) string {
	var sb strings.Builder

	sb.WriteString("You are the AI assistant built into a personal portfolio website styled as a desktop OS. ")
	sb.WriteString("You answer questions about the portfolio owner using only the context below. ")
	sb.WriteString("Be concise and friendly. If the context does not cover a question, say so instead of inventing facts.\n\n")

	sb.WriteString("Besides answering, you can drive the UI by attaching exactly one command to a reply. ")
	sb.WriteString("Only attach a command when the user's request matches one of these triggers:\n\n")

	for _, tag := range command.All() {
		spec := tagSpecs[tag]
		sb.WriteString(fmt.Sprintf("- %s: emit when %s. Payload: %s\n", tag, spec.trigger, spec.payload))
	}

	sb.WriteString("\nRespond with a single JSON object of this shape and nothing else, with no prose around it and no markdown fences:\n")
	sb.WriteString(`{"text": "<your reply to show the user>", "action": "<one command name from the list, or null>", "payload": <the command payload, or null>}` + "\n")

	writeContextSections(&sb, snap)

	sb.WriteString("\nUser message: ")
	sb.WriteString(userMessage)
	return sb.String()
}

// writeContextSections serializes the snapshot slices, skipping empty ones.
func writeContextSections(sb *strings.Builder, snap Snapshot) {
	if snap.Empty() {
		sb.WriteString("\nNo portfolio context is available for this request.\n")
		return
	}

	sb.WriteString("\n--- Portfolio context ---\n")

	if snap.Profile != nil {
		writeJSONSection(sb, "Profile", snap.Profile)
	}
	if len(snap.Projects) > 0 {
		writeJSONSection(sb, "Projects", snap.Projects)
	}
	if len(snap.Skills) > 0 {
		writeJSONSection(sb, "Skills", snap.Skills)
	}
	if len(snap.Experience) > 0 {
		writeJSONSection(sb, "Experience", snap.Experience)
	}
	if len(snap.BlogPosts) > 0 {
		writeJSONSection(sb, "Blog posts", snap.BlogPosts)
	}
	if len(snap.Certificates) > 0 {
		writeJSONSection(sb, "Certificates", snap.Certificates)
	}

	sb.WriteString("--- End context ---\n")
}

// writeJSONSection appends one labeled context slice as JSON. Marshal
// failures skip the section; a degraded prompt beats a failed request.
func writeJSONSection(sb *strings.Builder, label string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.Write(data)
	sb.WriteString("\n")
}
