package roadmap

import (
	"testing"

	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_Ordinary(t *testing.T) {
	rm := Project(Input{
		Project:  "Release",
		Schedule: scheduler.DefaultSchedule(),
		Tasks: []domain.Task{
			{Filename: "Deploy service 2024-03-01 выполнено.txt", Completed: true},
			{Filename: "Write changelog.txt"},
		},
		Selected: "Write changelog.txt",
	})

	assert.Equal(t, domain.KindOrdinary, rm.Kind)
	assert.Equal(t, "Release", rm.Name)
	assert.Equal(t, 50, rm.Percent)
	require.Len(t, rm.Nodes, 2)

	assert.Equal(t, "Deploy service (2024-03-01)", rm.Nodes[0].Title)
	assert.Equal(t, domain.StatusCompleted, rm.Nodes[0].Status)
	assert.Nil(t, rm.Nodes[0].Hint, "ordinary projects carry no hints")
	assert.False(t, rm.Nodes[0].Selected)

	assert.Equal(t, "Write changelog", rm.Nodes[1].Title)
	assert.Equal(t, domain.StatusNone, rm.Nodes[1].Status)
	assert.True(t, rm.Nodes[1].Selected)
}

func TestProject_Training(t *testing.T) {
	rm := Project(Input{
		Project:  "!Spanish",
		Schedule: scheduler.DefaultSchedule(),
		Tasks: []domain.Task{
			{Filename: "Verbs.txt"},
			{Filename: "Nouns x 2024-01-10.txt"},
			{Filename: "Numbers xx 2024-01-10.txt"},
			{Filename: "Colors xxx 2024-01-20.txt"},
			{Filename: "Orphan xx.txt"},
		},
	})

	assert.Equal(t, domain.KindTraining, rm.Kind)
	assert.Equal(t, "Spanish", rm.Name)
	// (0+1+2+3+2) / 15 parts
	assert.Equal(t, 53, rm.Percent)
	require.Len(t, rm.Nodes, 5)

	unmarked := rm.Nodes[0]
	assert.Equal(t, "Verbs", unmarked.Title)
	assert.Equal(t, domain.StatusNone, unmarked.Status)
	require.NotNil(t, unmarked.Hint)
	assert.Equal(t, HintUnmarked, *unmarked.Hint)
	assert.Nil(t, unmarked.DueDate)

	first := rm.Nodes[1]
	assert.Equal(t, "Nouns", first.Title)
	assert.Equal(t, domain.StatusTrainingPending, first.Status)
	require.NotNil(t, first.Hint)
	assert.Equal(t, "Next: 2024-01-11", *first.Hint)
	require.NotNil(t, first.DueDate)
	assert.Equal(t, "2024-01-11", first.DueDate.String())
	assert.Equal(t, 1, first.Marks)

	second := rm.Nodes[2]
	assert.Equal(t, "Next: 2024-01-13", *second.Hint)

	done := rm.Nodes[3]
	assert.Equal(t, domain.StatusTrainingCompleted, done.Status)
	assert.Equal(t, HintCompleted, *done.Hint)
	assert.Nil(t, done.DueDate)

	orphan := rm.Nodes[4]
	assert.Equal(t, domain.StatusTrainingPending, orphan.Status, "marks without date still look pending")
	assert.Equal(t, HintUnmarked, *orphan.Hint)
}

func TestProject_Empty(t *testing.T) {
	rm := Project(Input{Project: "!Empty", Schedule: scheduler.DefaultSchedule()})
	assert.Equal(t, 0, rm.Percent)
	assert.NotNil(t, rm.Nodes)
	assert.Empty(t, rm.Nodes)
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	tasks := []domain.Task{{Filename: "A x 2024-01-10.txt"}}
	_ = Project(Input{Project: "!T", Tasks: tasks, Schedule: scheduler.DefaultSchedule()})
	assert.Equal(t, "A x 2024-01-10.txt", tasks[0].Filename)
}
