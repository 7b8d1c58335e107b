package dispatcher

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/DARSHAN2224/Portfolio-sub000/internal/command"
)

// stubNavigator records route changes.
type stubNavigator struct {
	paths []string
}

func (s *stubNavigator) Go(path string) {
	s.paths = append(s.paths, path)
}

// stubPanels records shown panels.
type stubPanels struct {
	kinds []string
}

func (s *stubPanels) ShowPanel(kind string, payload json.RawMessage) {
	s.kinds = append(s.kinds, kind)
}

// stubSims records simulation lifecycle calls.
type stubSims struct {
	started []string
	stops   int
	failOn  string
}

func (s *stubSims) Start(simType string, payload json.RawMessage) error {
	if simType == s.failOn {
		return errStartFailed
	}
	s.started = append(s.started, simType)
	return nil
}

func (s *stubSims) Stop() {
	s.stops++
}

var errStartFailed = errors.New("start failed")

func runCmd(simType string) *command.Command {
	return &command.Command{
		Tag:     command.RunSimulation,
		Payload: json.RawMessage(`{"type":"` + simType + `"}`),
	}
}

func TestDispatcher_RunThenStop(t *testing.T) {
	sims := &stubSims{}
	d := New(nil, nil, sims)

	d.Dispatch(runCmd("DRONE_DELIVERY"))

	running, active := d.Active()
	if !running || active != "DRONE_DELIVERY" {
		t.Fatalf("Active() = %v, %q after run", running, active)
	}

	d.Dispatch(&command.Command{Tag: command.StopSimulation, Payload: json.RawMessage(`{}`)})

	running, active = d.Active()
	if running || active != "" {
		t.Errorf("Active() = %v, %q after stop, want idle", running, active)
	}
	if sims.stops != 1 {
		t.Errorf("Stop() called %d times, want 1", sims.stops)
	}
}

func TestDispatcher_StopWhileIdleIsNoOp(t *testing.T) {
	sims := &stubSims{}
	d := New(nil, nil, sims)

	d.Dispatch(&command.Command{Tag: command.StopSimulation})

	if running, _ := d.Active(); running {
		t.Error("dispatcher should stay idle")
	}
	if sims.stops != 0 {
		t.Errorf("Stop() called %d times while idle, want 0", sims.stops)
	}
}

func TestDispatcher_RunReplacesRunInPlace(t *testing.T) {
	sims := &stubSims{}
	d := New(nil, nil, sims)

	d.Dispatch(runCmd("DRONE_DELIVERY"))
	d.Dispatch(runCmd("TRAFFIC_FLOW"))

	running, active := d.Active()
	if !running || active != "TRAFFIC_FLOW" {
		t.Errorf("Active() = %v, %q, want running TRAFFIC_FLOW", running, active)
	}
	// Replacement needs no explicit stop.
	if sims.stops != 0 {
		t.Errorf("Stop() called %d times during replacement, want 0", sims.stops)
	}
	if len(sims.started) != 2 {
		t.Errorf("Start() called %d times, want 2", len(sims.started))
	}
}

func TestDispatcher_FailedStartKeepsState(t *testing.T) {
	sims := &stubSims{failOn: "BROKEN"}
	d := New(nil, nil, sims)

	d.Dispatch(runCmd("BROKEN"))

	if running, _ := d.Active(); running {
		t.Error("failed start must not mark a simulation active")
	}
}

func TestDispatcher_Navigate(t *testing.T) {
	nav := &stubNavigator{}
	d := New(nav, nil, nil)

	d.Dispatch(&command.Command{Tag: command.Navigate, Payload: json.RawMessage(`"/projects"`)})

	if len(nav.paths) != 1 || nav.paths[0] != "/projects" {
		t.Errorf("navigator paths = %v", nav.paths)
	}
	// Navigation retains no state.
	if running, _ := d.Active(); running {
		t.Error("navigate must not change simulation state")
	}
}

func TestDispatcher_RenderCommands(t *testing.T) {
	panels := &stubPanels{}
	d := New(nil, panels, nil)

	renders := map[command.Tag]string{
		command.RenderProjects:     "projects",
		command.RenderExperience:   "experience",
		command.RenderSkills:       "skills",
		command.RenderContact:      "contact",
		command.RenderTour:         "tour",
		command.RenderCertificates: "certificates",
	}

	for tag := range renders {
		d.Dispatch(&command.Command{Tag: tag, Payload: json.RawMessage(`[]`)})
	}

	if len(panels.kinds) != len(renders) {
		t.Fatalf("ShowPanel called %d times, want %d", len(panels.kinds), len(renders))
	}
	if running, _ := d.Active(); running {
		t.Error("render commands must not change dispatcher state")
	}
}

func TestDispatcher_ExplainProject(t *testing.T) {
	panels := &stubPanels{}
	d := New(nil, panels, nil)

	d.Dispatch(&command.Command{Tag: command.ExplainProject, Payload: json.RawMessage(`"p1"`)})

	if len(panels.kinds) != 1 || panels.kinds[0] != "project_detail" {
		t.Errorf("panels = %v, want [project_detail]", panels.kinds)
	}
}

func TestDispatcher_UnknownAndNilCommands(t *testing.T) {
	sims := &stubSims{}
	d := New(&stubNavigator{}, &stubPanels{}, sims)

	d.Dispatch(nil)
	d.Dispatch(&command.Command{Tag: "TELEPORT"})

	if running, _ := d.Active(); running {
		t.Error("unknown commands must not change state")
	}
}

func TestDispatcher_MissingCollaborators(t *testing.T) {
	d := New(nil, nil, nil)

	// Every command must be safely droppable with nothing wired.
	d.Dispatch(&command.Command{Tag: command.Navigate, Payload: json.RawMessage(`"/x"`)})
	d.Dispatch(runCmd("ANY"))
	d.Dispatch(&command.Command{Tag: command.StopSimulation})
	d.Dispatch(&command.Command{Tag: command.RenderSkills, Payload: json.RawMessage(`[]`)})

	if running, _ := d.Active(); running {
		t.Error("nothing should be running without a simulation driver")
	}
}
