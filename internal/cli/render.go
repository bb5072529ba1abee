package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/unconfessional/internal/lockout"
	"github.com/dmitrijs2005/unconfessional/internal/models"
)

const (
	gridColumns   = 3
	gridCellWidth = 26
	listPreview   = 48
	dateLayout    = "2006-01-02 15:04"
	noEntriesText = "No entries yet. Type 'write' to begin."
)

// seconds rounds d up to whole seconds for display.
func seconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}

func entryStatus(e models.Entry, now time.Time, maxFailures int) string {
	if lockout.IsLocked(e, now) {
		return fmt.Sprintf("locked %ds", seconds(lockout.Remaining(e, now)))
	}
	if e.FailureCount > 0 {
		return fmt.Sprintf("%d/%d attempts", e.FailureCount, maxFailures)
	}
	return "sealed"
}

// preview flattens s onto one line and cuts it to width runes.
func preview(s string, width int) string {
	flat := []rune(strings.Join(strings.Fields(s), " "))
	if len(flat) <= width {
		return string(flat)
	}
	return string(flat[:width-1]) + "…"
}

func renderEntries(mode models.ViewMode, entries []models.Entry, now time.Time, maxFailures int) string {
	if len(entries) == 0 {
		return noEntriesText
	}
	if mode == models.ViewList {
		return renderList(entries, now, maxFailures)
	}
	return renderGrid(entries, now, maxFailures)
}

func renderList(entries []models.Entry, now time.Time, maxFailures int) string {
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%2d. %s  %s  [%s]\n    %s\n",
			i+1,
			e.DisplayTitle(),
			e.CreatedAt.Local().Format(dateLayout),
			entryStatus(e, now, maxFailures),
			preview(e.Content, listPreview),
		)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderGrid lays entries out as cards, gridColumns per row.
func renderGrid(entries []models.Entry, now time.Time, maxFailures int) string {
	inner := gridCellWidth - 2
	border := "+" + strings.Repeat("-", gridCellWidth-2) + "+"

	var rows []string
	for start := 0; start < len(entries); start += gridColumns {
		end := min(start+gridColumns, len(entries))
		lines := make([][]string, 5)
		for i := start; i < end; i++ {
			e := entries[i]
			cell := []string{
				border,
				fmt.Sprintf("|%-*s|", inner, preview(fmt.Sprintf("%d. %s", i+1, e.DisplayTitle()), inner)),
				fmt.Sprintf("|%-*s|", inner, e.CreatedAt.Local().Format(dateLayout)),
				fmt.Sprintf("|%-*s|", inner, preview(e.Content, inner)),
				fmt.Sprintf("|%-*s|", inner, entryStatus(e, now, maxFailures)),
			}
			for j := range lines {
				lines[j] = append(lines[j], cell[j])
			}
		}
		for _, l := range lines {
			rows = append(rows, strings.Join(l, " "))
		}
		rows = append(rows, strings.TrimSuffix(strings.Repeat(border+" ", end-start), " "))
	}
	return strings.Join(rows, "\n")
}

// renderEntry shows one entry the way it was sealed: scrambled.
func renderEntry(e models.Entry, now time.Time, maxFailures int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.DisplayTitle())
	fmt.Fprintf(&b, "Sealed %s  [%s]\n\n", e.CreatedAt.Local().Format(dateLayout), entryStatus(e, now, maxFailures))
	b.WriteString(e.Content)
	return b.String()
}
