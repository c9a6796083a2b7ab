package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/aoc25/internal/cli/config"
	"github.com/katalvlaran/aoc25/internal/solver"
)

// cascadeReport summarizes one cascade run.
type cascadeReport struct {
	Source        string `json:"source"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Filled        int    `json:"filled"`
	Eligible      int    `json:"eligible"`
	Removed       int    `json:"removed"`
	Remaining     int    `json:"remaining"`
	Generations   []int  `json:"generations"`
	RegionsBefore int    `json:"regions_before"`
	RegionsAfter  int    `json:"regions_after"`
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderAnswers(w io.Writer, mode string, answers []solver.Answer) error {
	switch mode {
	case config.OutputJSON:
		return renderJSON(w, answers)
	case config.OutputPlain:
		for _, a := range answers {
			_, _ = fmt.Fprintf(w, "day %d (%s): %d %d\n", a.Day, a.Name, a.Part1, a.Part2)
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Day", "Puzzle", "Part 1", "Part 2", "Time"})
	for _, a := range answers {
		t.AppendRow(table.Row{a.Day, a.Name, a.Part1, a.Part2, a.Elapsed.Round(time.Microsecond)})
	}
	t.Render()
	return nil
}

func renderCascade(w io.Writer, mode string, r cascadeReport) error {
	switch mode {
	case config.OutputJSON:
		return renderJSON(w, r)
	case config.OutputPlain:
		_, _ = fmt.Fprintf(w, "%d %d\n", r.Eligible, r.Removed)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(r.Source)
	t.AppendRows([]table.Row{
		{"Size", fmt.Sprintf("%d×%d", r.Width, r.Height)},
		{"Filled", r.Filled},
		{"Eligible", r.Eligible},
		{"Removed", r.Removed},
		{"Remaining", r.Remaining},
		{"Generations", len(r.Generations)},
		{"Regions", fmt.Sprintf("%d → %d", r.RegionsBefore, r.RegionsAfter)},
	})
	t.Render()
	return nil
}
