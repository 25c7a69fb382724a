package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/roadmap"
	"github.com/alexanderramin/trailmap/internal/service"
)

const barWidth = 20

// FormatProjectList renders the project overview inside a bordered box.
func FormatProjectList(projects []service.ProjectSummary) string {
	headers := []string{"NAME", "KIND", "TASKS", "PROGRESS"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			Bold(p.Name),
			KindBadge(p.Kind),
			fmt.Sprintf("%d", p.Tasks),
			RenderProgress(p.Percent, barWidth),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatRoadmap renders one project as a vertical trail of tasks under a
// header and progress bar. stages is the repetition table length.
func FormatRoadmap(rm *roadmap.Roadmap, stages int, today domain.Date) string {
	var b strings.Builder
	b.WriteString(Header(rm.Name) + "\n" + KindBadge(rm.Kind) + "\n")
	b.WriteString(RenderProgress(rm.Percent, barWidth) + "\n\n")

	if len(rm.Nodes) == 0 {
		b.WriteString(Dim("No tasks yet.") + "\n")
		return b.String()
	}
	b.WriteString(FormatTrail(rm, stages, today))
	return b.String()
}

// FormatTrail renders only the task nodes, two lines per node except the
// last.
func FormatTrail(rm *roadmap.Roadmap, stages int, today domain.Date) string {
	var b strings.Builder
	for i, n := range rm.Nodes {
		b.WriteString(formatNode(n, rm.Kind, stages, today))
		b.WriteString("\n")
		if i < len(rm.Nodes)-1 {
			b.WriteString("  " + Dim("│") + "\n")
		}
	}
	return b.String()
}

func formatNode(n roadmap.Node, kind domain.ProjectKind, stages int, today domain.Date) string {
	cursor := "  "
	if n.Selected {
		cursor = StyleHeader.Render("▸ ")
	}
	line := cursor + StatusIcon(n.Status) + " " + StatusStyle(n.Status).Render(n.Title)
	if kind != domain.KindTraining {
		return line
	}

	line += "  " + Marks(n.Marks, stages)
	if n.Hint != nil {
		hint := Dim(*n.Hint)
		if n.DueDate != nil {
			hint += " " + Dim("(") + RelativeDayStyled(*n.DueDate, today) + Dim(")")
		}
		line += "  " + hint
	}
	return line
}

// FormatDue lists training tasks whose repetition is due.
func FormatDue(due []service.DueTask, today domain.Date) string {
	if len(due) == 0 {
		return Dim("Nothing due today.")
	}
	headers := []string{"PROJECT", "TASK", "DUE"}
	rows := make([][]string, 0, len(due))
	for _, d := range due {
		rows = append(rows, []string{
			domain.DisplayName(d.Project),
			d.Title,
			RelativeDayStyled(d.DueDate, today),
		})
	}
	return RenderTable(headers, rows)
}
