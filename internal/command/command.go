package command

import (
	"encoding/json"
	"fmt"
)

// Tag identifies a UI command the assistant may emit alongside its reply.
type Tag string

const (
	// Navigate changes the current route.
	Navigate Tag = "NAVIGATE"
	// RunSimulation starts (or replaces) the active simulation.
	RunSimulation Tag = "RUN_SIMULATION"
	// StopSimulation stops the active simulation, if any.
	StopSimulation Tag = "STOP_SIMULATION"
	// ExplainProject opens a detail view for one project.
	ExplainProject Tag = "EXPLAIN_PROJECT"
	// RenderProjects shows a projects panel.
	RenderProjects Tag = "RENDER_PROJECTS"
	// RenderExperience shows a work-experience panel.
	RenderExperience Tag = "RENDER_EXPERIENCE"
	// RenderSkills shows a skills panel.
	RenderSkills Tag = "RENDER_SKILLS"
	// RenderContact shows a contact panel.
	RenderContact Tag = "RENDER_CONTACT"
	// RenderTour shows a guided-tour panel of site sections.
	RenderTour Tag = "RENDER_TOUR"
	// RenderCertificates shows a certificates panel.
	RenderCertificates Tag = "RENDER_CERTIFICATES"
)

// allTags is the authoritative vocabulary, in stable order.
// The prompt builder, response parser, and dispatcher all derive from it;
// a tag missing here does not exist anywhere in the system.
var allTags = []Tag{
	Navigate,
	RunSimulation,
	StopSimulation,
	ExplainProject,
	RenderProjects,
	RenderExperience,
	RenderSkills,
	RenderContact,
	RenderTour,
	RenderCertificates,
}

// All returns the recognized command tags in stable order.
func All() []Tag {
	out := make([]Tag, len(allTags))
	copy(out, allTags)
	return out
}

// Known reports whether tag is part of the recognized vocabulary.
func Known(tag Tag) bool {
	for _, t := range allTags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsRender reports whether tag belongs to the render family (panel-only
// side effect, no navigation or simulation state change).
func (t Tag) IsRender() bool {
	switch t {
	case RenderProjects, RenderExperience, RenderSkills, RenderContact, RenderTour, RenderCertificates:
		return true
	}
	return false
}

// Command is a structured instruction extracted from a model reply.
// Payload is kept raw; its shape depends on the tag and is decoded by the
// consumer that acts on it.
type Command struct {
	Tag     Tag             `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NavigateTarget decodes the payload of a NAVIGATE command as a route path.
func (c *Command) NavigateTarget() (string, error) {
	if c.Tag != Navigate {
		return "", fmt.Errorf("command %s has no navigate target", c.Tag)
	}
	var target string
	if err := json.Unmarshal(c.Payload, &target); err == nil {
		return target, nil
	}
	// Some models wrap the path in an object.
	var obj struct {
		Target string `json:"target"`
	}
	if err := json.Unmarshal(c.Payload, &obj); err != nil {
		return "", fmt.Errorf("failed to decode navigate payload: %w", err)
	}
	return obj.Target, nil
}

// Simulation decodes the payload of a RUN_SIMULATION command.
func (c *Command) Simulation() (simType string, payload json.RawMessage, err error) {
	if c.Tag != RunSimulation {
		return "", nil, fmt.Errorf("command %s is not a simulation", c.Tag)
	}
	var obj struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload,omitempty"`
	}
	if err := json.Unmarshal(c.Payload, &obj); err != nil {
		return "", nil, fmt.Errorf("failed to decode simulation payload: %w", err)
	}
	if obj.Type == "" {
		return "", nil, fmt.Errorf("simulation payload missing type")
	}
	return obj.Type, obj.Payload, nil
}

// ProjectID decodes the payload of an EXPLAIN_PROJECT command.
func (c *Command) ProjectID() (string, error) {
	if c.Tag != ExplainProject {
		return "", fmt.Errorf("command %s has no project id", c.Tag)
	}
	var id string
	if err := json.Unmarshal(c.Payload, &id); err == nil {
		return id, nil
	}
	var obj struct {
		ProjectID string `json:"projectId"`
	}
	if err := json.Unmarshal(c.Payload, &obj); err != nil {
		return "", fmt.Errorf("failed to decode project payload: %w", err)
	}
	return obj.ProjectID, nil
}
