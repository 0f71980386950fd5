// Package progress prints human-readable crawl progress to the console.
package progress

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/gamecrawl/internal/catalog"
)

// PerRecordEstimate is the rough time one record takes to enrich, used for the ETA.
const PerRecordEstimate = 2100 * time.Millisecond

// Console writes one styled line per crawl event.
type Console struct {
	out io.Writer

	number lipgloss.Style
	unit   lipgloss.Style
	id     lipgloss.Style
	name   lipgloss.Style
}

// NewConsole creates a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:    out,
		number: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		unit:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		id:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		name:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

// BatchStarted implements crawl.Progress.
func (c *Console) BatchStarted(batch, limit, offset int) {
	c.printf("🔎 Index %s - Fetching %s titles with an offset of %s",
		c.num(batch), c.num(limit), c.num(offset))
}

// BatchFetched implements crawl.Progress.
func (c *Console) BatchFetched(_ int, count int) {
	if count == 0 {
		c.printf("✨ Found %s titles matching your query", c.num(count))
		return
	}
	c.printf("✨ Found %s titles matching your query. Approx. time to complete is %s",
		c.num(count), c.timer(Estimate(count)))
}

// RecordAdded implements crawl.Progress.
func (c *Console) RecordAdded(n int, raw catalog.RawRecord) {
	c.printf("🎮 [%s] Added game data for [%s] %s",
		c.num(n), c.id.Render(fmt.Sprint(raw.ID)), c.name.Render(raw.Name))
}

// BatchFinished implements crawl.Progress.
func (c *Console) BatchFinished(batch int, elapsed time.Duration) {
	c.printf("🏁 Index %s finished in %s", c.num(batch), c.timer(elapsed))
}

// Completed implements crawl.Progress.
func (c *Console) Completed(total int) {
	c.printf("✅ Completed - added %s titles", c.num(total))
}

// Estimate returns the expected enrichment time of count records.
func Estimate(count int) time.Duration {
	return time.Duration(count) * PerRecordEstimate
}

// SplitTimer rounds d up to whole seconds and splits it into minutes and seconds.
func SplitTimer(d time.Duration) (minutes, seconds int) {
	total := int(math.Ceil(d.Seconds()))
	return total / 60, total % 60
}

func (c *Console) timer(d time.Duration) string {
	minutes, seconds := SplitTimer(d)
	return fmt.Sprintf("%s %s %s %s",
		c.num(minutes), c.unit.Render("minutes"), c.num(seconds), c.unit.Render("seconds"))
}

func (c *Console) num(n int) string {
	return c.number.Render(fmt.Sprint(n))
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format+"\n", args...)
}
