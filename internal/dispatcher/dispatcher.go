// Package dispatcher executes assistant commands against the UI layer:
// route navigation, typed data panels, and the simulation state machine.
// It mirrors the client-side consumer of the chat bridge, so embedders
// (e.g. a desktop shell or a test harness) supply the side effects.
package dispatcher

import (
	"encoding/json"
	"log/slog"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/command"
)

// Navigator changes the current route.
type Navigator interface {
	Go(path string)
}

// PanelSink appends a typed data panel to the transcript.
type PanelSink interface {
	ShowPanel(kind string, payload json.RawMessage)
}

// SimulationDriver starts and stops simulations.
type SimulationDriver interface {
	Start(simType string, payload json.RawMessage) error
	Stop()
}

// Dispatcher routes commands to their side effects. The only state it holds
// is whether a simulation is running and which one; everything else is
// stateless between commands. Not safe for concurrent use: it belongs to a
// single UI event loop.
type Dispatcher struct {
	nav    Navigator
	panels PanelSink
	sims   SimulationDriver
	logger *slog.Logger

	running   bool
	activeSim string
}

// New creates a Dispatcher. Any collaborator may be nil; commands needing a
// nil collaborator are logged and skipped.
func New(nav Navigator, panels PanelSink, sims SimulationDriver) *Dispatcher {
	return &Dispatcher{
		nav:    nav,
		panels: panels,
		sims:   sims,
		logger: slog.Default(),
	}
}

// Active returns whether a simulation is running and its type.
func (d *Dispatcher) Active() (bool, string) {
	return d.running, d.activeSim
}

// Dispatch executes one command. Unknown or undecodable commands are logged
// and ignored; they never change state and never panic.
func (d *Dispatcher) Dispatch(cmd *command.Command) {
	if cmd == nil {
		return
	}

	switch {
	case cmd.Tag == command.Navigate:
		d.dispatchNavigate(cmd)
	case cmd.Tag == command.RunSimulation:
		d.dispatchRun(cmd)
	case cmd.Tag == command.StopSimulation:
		d.dispatchStop()
	case cmd.Tag == command.ExplainProject:
		d.dispatchExplain(cmd)
	case cmd.Tag.IsRender():
		d.dispatchRender(cmd)
	default:
		d.logger.Warn("ignoring unknown command", "tag", string(cmd.Tag))
	}
}

func (d *Dispatcher) dispatchNavigate(cmd *command.Command) {
	if d.nav == nil {
		d.logger.Warn("no navigator wired, dropping navigate command")
		return
	}
	target, err := cmd.NavigateTarget()
	if err != nil || target == "" {
		d.logger.Warn("invalid navigate payload", "error", err)
		return
	}
	d.nav.Go(target)
}

func (d *Dispatcher) dispatchRun(cmd *command.Command) {
	if d.sims == nil {
		d.logger.Warn("no simulation driver wired, dropping run command")
		return
	}
	simType, payload, err := cmd.Simulation()
	if err != nil {
		d.logger.Warn("invalid simulation payload", "error", err)
		return
	}
	// A new run replaces the active simulation in place; no explicit stop
	// is required first.
	if err := d.sims.Start(simType, payload); err != nil {
		d.logger.Warn("failed to start simulation", "type", simType, "error", err)
		return
	}
	d.running = true
	d.activeSim = simType
}

func (d *Dispatcher) dispatchStop() {
	if !d.running {
		// Stop while idle is a no-op.
		return
	}
	if d.sims != nil {
		d.sims.Stop()
	}
	d.running = false
	d.activeSim = ""
}

func (d *Dispatcher) dispatchExplain(cmd *command.Command) {
	if d.panels == nil {
		d.logger.Warn("no panel sink wired, dropping explain command")
		return
	}
	d.panels.ShowPanel("project_detail", cmd.Payload)
}

// panelKinds maps render-family tags to panel kinds.
var panelKinds = map[command.Tag]string{
	command.RenderProjects:     "projects",
	command.RenderExperience:   "experience",
	command.RenderSkills:       "skills",
	command.RenderContact:      "contact",
	command.RenderTour:         "tour",
	command.RenderCertificates: "certificates",
}

func (d *Dispatcher) dispatchRender(cmd *command.Command) {
	if d.panels == nil {
		d.logger.Warn("no panel sink wired, dropping render command")
		return
	}
	kind, ok := panelKinds[cmd.Tag]
	if !ok {
		d.logger.Warn("ignoring unknown render command", "tag", string(cmd.Tag))
		return
	}
	d.panels.ShowPanel(kind, cmd.Payload)
}
