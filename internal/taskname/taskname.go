// Package taskname translates between task filenames and the state they
// carry: a run of repetition markers, the last recorded date and the
// completion word appended to finished ordinary tasks.
//
// Everything here is a pure string function. Malformed input never fails;
// unrecognised tokens simply stay part of the title.
package taskname

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/trailmap/internal/domain"
)

const (
	// Marker is the repetition marker. A run of it counts repetitions.
	Marker = 'x'
	// CompletionWord is appended, after the date, to completed ordinary tasks.
	CompletionWord = "выполнено"
)

var (
	extPattern       = regexp.MustCompile(`\.[^./\\\s]+$`)
	tokenPattern     = regexp.MustCompile(`\S+`)
	dateTokenPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	completedTitle   = regexp.MustCompile(`(?i)^(.*?)\s+(\d{4}-\d{2}-\d{2})\s+` + CompletionWord + `$`)
)

// ParsedName is the structured state derived from a task filename.
// LastDate is nil when the name carries no valid date token.
type ParsedName struct {
	Core        string
	LastDate    *domain.Date
	RepeatMarks int
}

// Ext returns the trailing extension of filename including the dot,
// or "" when there is none.
func Ext(filename string) string {
	return extPattern.FindString(filename)
}

// StripExt removes the trailing extension of filename, if any.
func StripExt(filename string) string {
	return strings.TrimSuffix(filename, Ext(filename))
}

// Parse extracts the title, repetition count and last date from filename.
//
// Trailing tokens are scanned from the end: the first valid ISO date and the
// first marker run are taken in whichever order they appear. Scanning stops
// at any other token and never consumes the first token. When no trailing
// marker run exists, the first standalone run inside the name is used.
func Parse(filename string) ParsedName {
	name := StripExt(filename)
	spans := tokenPattern.FindAllStringIndex(name, -1)

	var p ParsedName
	marksFound := false
	end := len(spans)
	for end > 1 {
		tok := name[spans[end-1][0]:spans[end-1][1]]
		if p.LastDate == nil {
			if d, ok := parseDateToken(tok); ok {
				p.LastDate = &d
				end--
				continue
			}
		}
		if !marksFound && isMarkerRun(tok) {
			p.RepeatMarks = len(tok)
			marksFound = true
			end--
			continue
		}
		break
	}

	if end == 0 {
		p.Core = strings.TrimSpace(name)
		return p
	}
	core := name[:spans[end-1][1]]

	if !marksFound {
		for i := 1; i < end; i++ {
			tok := name[spans[i][0]:spans[i][1]]
			if !isMarkerRun(tok) {
				continue
			}
			p.RepeatMarks = len(tok)
			left := strings.TrimRight(core[:spans[i][0]], " \t")
			right := strings.TrimLeft(core[spans[i][1]:], " \t")
			if right != "" {
				core = left + " " + right
			} else {
				core = left
			}
			break
		}
	}

	p.Core = strings.TrimSpace(core)
	return p
}

// Format serializes p back into a filename as "core[ marks][ date]ext".
// Parse(Format(p, ext)) reproduces p for any p returned by Parse.
func Format(p ParsedName, ext string) string {
	parts := make([]string, 0, 3)
	if p.Core != "" {
		parts = append(parts, p.Core)
	}
	if p.RepeatMarks > 0 {
		parts = append(parts, strings.Repeat(string(Marker), p.RepeatMarks))
	}
	if p.LastDate != nil {
		parts = append(parts, p.LastDate.String())
	}
	return strings.Join(parts, " ") + ext
}

// DisplayTitle returns the title shown for a task. Completed tasks named
// "<title> <date> выполнено" are shown as "<title> (<date>)"; every other
// name is shown without its extension. Marker runs are part of the title
// here; ordinary tasks carry no repetition state.
func DisplayTitle(filename string, completed bool) string {
	name := StripExt(filename)
	if !completed {
		return name
	}
	if m := completedTitle.FindStringSubmatch(strings.TrimSpace(name)); m != nil {
		return m[1] + " (" + m[2] + ")"
	}
	return name
}

// IsCompleted reports whether filename ends with the completion word as a
// separate token.
func IsCompleted(filename string) bool {
	fields := strings.Fields(StripExt(filename))
	if len(fields) < 2 {
		return false
	}
	return strings.EqualFold(fields[len(fields)-1], CompletionWord)
}

// MarkCompleted appends the completion date and word to an ordinary task
// filename. Already completed names are returned unchanged.
func MarkCompleted(filename string, on domain.Date) string {
	if IsCompleted(filename) {
		return filename
	}
	ext := Ext(filename)
	name := strings.TrimSpace(strings.TrimSuffix(filename, ext))
	return name + " " + on.String() + " " + CompletionWord + ext
}

// AddRepetition records one more repetition on day on: the marker run grows
// by one and the date token is replaced.
func AddRepetition(filename string, on domain.Date) string {
	p := Parse(filename)
	p.RepeatMarks++
	p.LastDate = &on
	return Format(p, Ext(filename))
}

func parseDateToken(tok string) (domain.Date, bool) {
	if !dateTokenPattern.MatchString(tok) {
		return domain.Date{}, false
	}
	d, err := domain.ParseDate(tok)
	if err != nil {
		return domain.Date{}, false
	}
	return d, true
}

func isMarkerRun(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] != Marker {
			return false
		}
	}
	return true
}
