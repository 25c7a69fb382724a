package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/roadmap"
	"github.com/alexanderramin/trailmap/internal/scheduler"
	"github.com/alexanderramin/trailmap/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		width   int
		want    string
	}{
		{"zero", 0, 10, "  0%"},
		{"half", 50, 10, " 50%"},
		{"full", 100, 10, "100%"},
		{"over clamps", 140, 10, "100%"},
		{"negative clamps", -3, 10, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.percent, tt.width)
			assert.True(t, strings.HasSuffix(got, tt.want), got)
			assert.Equal(t, tt.width+2+5, lipgloss.Width(got))
		})
	}
}

func TestRenderProgress_BlockCount(t *testing.T) {
	got := RenderProgress(50, 10)
	assert.Equal(t, 5, strings.Count(got, filledBlock))
	assert.Equal(t, 5, strings.Count(got, emptyBlock))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"long cell", "x"}, {"s", "y"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(lines[3]))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRelativeDay(t *testing.T) {
	today := day(t, "2024-01-10")
	assert.Equal(t, "Today", RelativeDay(today, today))
	assert.Equal(t, "Tomorrow", RelativeDay(day(t, "2024-01-11"), today))
	assert.Equal(t, "Yesterday", RelativeDay(day(t, "2024-01-09"), today))
	assert.Equal(t, "In 7d", RelativeDay(day(t, "2024-01-17"), today))
	assert.Equal(t, "3d ago", RelativeDay(day(t, "2024-01-07"), today))
}

func TestMarks(t *testing.T) {
	got := Marks(2, 3)
	assert.Equal(t, 2, strings.Count(got, "●"))
	assert.Equal(t, 1, strings.Count(got, "○"))
	assert.Equal(t, 3, strings.Count(Marks(9, 3), "●"))
	assert.Empty(t, Marks(1, 0))
}

func TestFormatProjectList(t *testing.T) {
	out := FormatProjectList([]service.ProjectSummary{
		{Project: "!Spanish", Name: "Spanish", Kind: domain.KindTraining, Tasks: 3, Percent: 67},
		{Project: "Release", Name: "Release", Kind: domain.KindOrdinary, Tasks: 2, Percent: 50},
	})
	assert.Contains(t, out, "PROJECTS")
	assert.Contains(t, out, "Spanish")
	assert.NotContains(t, out, "!Spanish")
	assert.Contains(t, out, "training")
	assert.Contains(t, out, " 67%")
}

func TestFormatRoadmap_Training(t *testing.T) {
	rm := roadmap.Project(roadmap.Input{
		Project:  "!Spanish",
		Tasks:    []domain.Task{{Filename: "Verbs x 2024-01-10.txt"}, {Filename: "Nouns.txt"}},
		Schedule: scheduler.DefaultSchedule(),
		Selected: "Nouns.txt",
	})
	out := FormatRoadmap(&rm, 3, day(t, "2024-01-10"))

	assert.Contains(t, out, "SPANISH")
	assert.Contains(t, out, "Verbs")
	assert.Contains(t, out, "Next: 2024-01-11")
	assert.Contains(t, out, "Tomorrow")
	assert.Contains(t, out, "Mark first repetition")
	assert.Contains(t, out, "▸")
}

func TestFormatRoadmap_OrdinaryAndEmpty(t *testing.T) {
	rm := roadmap.Project(roadmap.Input{
		Project:  "Release",
		Tasks:    []domain.Task{{Filename: "Deploy service 2024-03-01 выполнено.txt", Completed: true}},
		Schedule: scheduler.DefaultSchedule(),
	})
	out := FormatRoadmap(&rm, 3, day(t, "2024-03-02"))
	assert.Contains(t, out, "Deploy service (2024-03-01)")
	assert.Contains(t, out, "✔")
	assert.NotContains(t, out, "●")

	empty := roadmap.Project(roadmap.Input{Project: "Empty", Schedule: scheduler.DefaultSchedule()})
	assert.Contains(t, FormatRoadmap(&empty, 3, day(t, "2024-03-02")), "No tasks yet.")
}

func TestFormatDue(t *testing.T) {
	today := day(t, "2024-01-12")
	assert.Contains(t, FormatDue(nil, today), "Nothing due")

	out := FormatDue([]service.DueTask{{Project: "!Spanish", Title: "Verbs", DueDate: day(t, "2024-01-11")}}, today)
	assert.Contains(t, out, "Spanish")
	assert.Contains(t, out, "Verbs")
	assert.Contains(t, out, "Yesterday")
}
