package scheduler

import (
	"fmt"

	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/taskname"
)

// Schedule is a spaced-repetition interval table. Intervals[i] is the number
// of days after the last recorded date that repetition i+1 becomes due.
type Schedule struct {
	Intervals []int
}

// DefaultSchedule returns the 1/3/7-day table.
func DefaultSchedule() Schedule {
	return Schedule{Intervals: []int{1, 3, 7}}
}

// Stages is the number of repetitions needed to complete a training task.
func (s Schedule) Stages() int {
	return len(s.Intervals)
}

// Validate rejects empty tables and non-positive intervals.
func (s Schedule) Validate() error {
	if len(s.Intervals) == 0 {
		return fmt.Errorf("schedule needs at least one interval")
	}
	for i, days := range s.Intervals {
		if days <= 0 {
			return fmt.Errorf("interval %d must be positive, got %d", i, days)
		}
	}
	return nil
}

// RepetitionState is the derived repetition status of one task.
// Stage and LastDate are only meaningful in PhaseInProgress.
type RepetitionState struct {
	Phase    domain.RepetitionPhase
	Stage    int
	LastDate domain.Date
}

// StateFor classifies a parsed task name.
//
// Reaching the full table length or an explicit completion flag is Complete.
// A partial run with an anchor date is InProgress. Anything else, including
// marks without a date, is Unmarked.
func (s Schedule) StateFor(p taskname.ParsedName, completed bool) RepetitionState {
	if completed || p.RepeatMarks >= s.Stages() {
		return RepetitionState{Phase: domain.PhaseComplete}
	}
	if p.RepeatMarks > 0 && p.LastDate != nil {
		return RepetitionState{
			Phase:    domain.PhaseInProgress,
			Stage:    p.RepeatMarks,
			LastDate: *p.LastDate,
		}
	}
	return RepetitionState{Phase: domain.PhaseUnmarked}
}

// IntervalFor returns Intervals[i], clamped to the table. Indexes past the
// end reuse the last interval.
func (s Schedule) IntervalFor(i int) int {
	if len(s.Intervals) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i > len(s.Intervals)-1 {
		i = len(s.Intervals) - 1
	}
	return s.Intervals[i]
}

// NextDueDate returns the day the next repetition becomes due: the
// interval of the latest earned repetition after LastDate, so one mark
// waits Intervals[0] days. The second result is false unless the state is
// InProgress.
func (s Schedule) NextDueDate(state RepetitionState) (domain.Date, bool) {
	if state.Phase != domain.PhaseInProgress {
		return domain.Date{}, false
	}
	return state.LastDate.AddDays(s.IntervalFor(state.Stage - 1)), true
}

// IsDue reports whether an in-progress task should be repeated on today.
func (s Schedule) IsDue(state RepetitionState, today domain.Date) bool {
	due, ok := s.NextDueDate(state)
	if !ok {
		return false
	}
	return !today.Before(due)
}
