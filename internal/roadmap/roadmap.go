// Package roadmap assembles the per-task display state of a project from
// the task name codec, the progress calculator and the repetition
// scheduler. Its output is plain data handed to whatever renders it.
package roadmap

import (
	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/scheduler"
	"github.com/alexanderramin/trailmap/internal/taskname"
)

// Hints shown under training tasks. In-progress tasks get
// "Next: YYYY-MM-DD" instead.
const (
	HintCompleted  = "Completed"
	HintUnmarked   = "Mark first repetition"
	hintNextPrefix = "Next: "
)

// Input is everything the projector needs. Selected is the filename of the
// currently focused task, or "" for none.
type Input struct {
	Project  string
	Tasks    []domain.Task
	Schedule scheduler.Schedule
	Selected string
}

// Node is the display state of one task.
type Node struct {
	Filename string             `json:"filename" yaml:"filename"`
	Title    string             `json:"title" yaml:"title"`
	Status   domain.StatusClass `json:"status" yaml:"status"`
	Hint     *string            `json:"hint,omitempty" yaml:"hint,omitempty"`
	DueDate  *domain.Date       `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Marks    int                `json:"marks" yaml:"marks"`
	Selected bool               `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// Roadmap is the projected view of a whole project.
type Roadmap struct {
	Project string             `json:"project" yaml:"project"`
	Name    string             `json:"name" yaml:"name"`
	Kind    domain.ProjectKind `json:"kind" yaml:"kind"`
	Percent int                `json:"percent" yaml:"percent"`
	Nodes   []Node             `json:"nodes" yaml:"nodes"`
}

// Project builds the roadmap for in. Task order is preserved.
func Project(in Input) Roadmap {
	kind := domain.KindOf(in.Project)
	rm := Roadmap{
		Project: in.Project,
		Name:    domain.DisplayName(in.Project),
		Kind:    kind,
		Percent: scheduler.ComputeProgress(kind, in.Tasks, in.Schedule),
		Nodes:   make([]Node, 0, len(in.Tasks)),
	}

	for _, t := range in.Tasks {
		var n Node
		if kind == domain.KindTraining {
			n = trainingNode(t, in.Schedule)
		} else {
			n = ordinaryNode(t)
		}
		n.Selected = in.Selected != "" && t.Filename == in.Selected
		rm.Nodes = append(rm.Nodes, n)
	}
	return rm
}

func ordinaryNode(t domain.Task) Node {
	status := domain.StatusNone
	if t.Completed {
		status = domain.StatusCompleted
	}
	return Node{
		Filename: t.Filename,
		Title:    taskname.DisplayTitle(t.Filename, t.Completed),
		Status:   status,
	}
}

func trainingNode(t domain.Task, s scheduler.Schedule) Node {
	parsed := taskname.Parse(t.Filename)
	state := s.StateFor(parsed, t.Completed)

	n := Node{
		Filename: t.Filename,
		Title:    parsed.Core,
		Status:   domain.StatusNone,
		Marks:    parsed.RepeatMarks,
	}
	if parsed.RepeatMarks > 0 && parsed.RepeatMarks < s.Stages() {
		n.Status = domain.StatusTrainingPending
	}

	var hint string
	switch state.Phase {
	case domain.PhaseComplete:
		n.Status = domain.StatusTrainingCompleted
		hint = HintCompleted
	case domain.PhaseInProgress:
		due, _ := s.NextDueDate(state)
		n.DueDate = &due
		hint = hintNextPrefix + due.String()
	default:
		hint = HintUnmarked
	}
	n.Hint = &hint
	return n
}
