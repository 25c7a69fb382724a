package scheduler

import (
	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/taskname"
)

// ComputeProgress returns the completion percentage of a project.
//
// Ordinary projects count completed tasks. Training projects split every
// task into Stages() parts and credit one part per repetition mark, clamped
// so malformed names with extra markers cannot push past 100.
func ComputeProgress(kind domain.ProjectKind, tasks []domain.Task, s Schedule) int {
	if kind == domain.KindTraining {
		stages := s.Stages()
		gained := 0
		for _, t := range tasks {
			gained += min(stages, taskname.Parse(t.Filename).RepeatMarks)
		}
		return roundPercent(gained, stages*len(tasks))
	}

	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return roundPercent(done, len(tasks))
}

// roundPercent computes round-half-up(100*num/den) in integer arithmetic.
// The denominator is floored at 1.
func roundPercent(num, den int) int {
	if den < 1 {
		den = 1
	}
	if num < 0 {
		num = 0
	}
	pct := (200*num + den) / (2 * den)
	return min(pct, 100)
}
