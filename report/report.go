// Package report renders routing results for people and tools.
//
// Each result is one line:
//
//	Minimum price for transport of goods without discount: 8.0, Route: [0, 1, 2]
//	Minimum price for transporting goods at a discount: 5.0, Route: [0, 2]
//
// An unreachable result prints the cost as -1 and an empty route.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/discountroute/dijkstra"
	"github.com/katalvlaran/discountroute/discount"
)

// Line labels, matching the historical output of the tool.
const (
	LabelBaseline   = "Minimum price for transport of goods without discount: "
	LabelDiscounted = "Minimum price for transporting goods at a discount: "
)

// Renderer writes a single result line.
type Renderer interface {
	Render(w io.Writer, r dijkstra.Result, discounted bool) error
}

// Plain renders unstyled text.
type Plain struct{}

// Render writes label, cost and route followed by a newline.
func (Plain) Render(w io.Writer, r dijkstra.Result, discounted bool) error {
	_, err := fmt.Fprintf(w, "%s%s, Route: %s\n", label(discounted), FormatCost(r), FormatRoute(r))

	return err
}

// Styled renders the same line with lipgloss styles. When the output is not
// a terminal lipgloss degrades to plain text.
type Styled struct {
	Label lipgloss.Style
	Cost  lipgloss.Style
	Route lipgloss.Style
	Miss  lipgloss.Style
}

// NewStyled returns the default terminal palette.
func NewStyled() Styled {
	return Styled{
		Label: lipgloss.NewStyle().Bold(true),
		Cost:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Route: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Miss:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Render writes a styled result line.
func (s Styled) Render(w io.Writer, r dijkstra.Result, discounted bool) error {
	cost := s.Cost
	if !r.Reachable() {
		cost = s.Miss
	}
	_, err := fmt.Fprintf(w, "%s%s, Route: %s\n",
		s.Label.Render(label(discounted)),
		cost.Render(FormatCost(r)),
		s.Route.Render(FormatRoute(r)),
	)

	return err
}

// Outcome writes the baseline line and then the discounted line.
// A nil renderer means Plain.
func Outcome(w io.Writer, rn Renderer, o discount.Outcome) error {
	if rn == nil {
		rn = Plain{}
	}
	if err := rn.Render(w, o.Baseline, false); err != nil {
		return err
	}

	return rn.Render(w, o.Discounted, true)
}

// FormatCost prints a finite cost with one decimal and an unreachable one as -1.
func FormatCost(r dijkstra.Result) string {
	if !r.Reachable() {
		return "-1"
	}

	return strconv.FormatFloat(r.Cost, 'f', 1, 64)
}

// FormatRoute prints the route as a bracketed, comma-separated list.
// Unreachable results print "[]".
func FormatRoute(r dijkstra.Result) string {
	if !r.Reachable() {
		return "[]"
	}
	parts := make([]string, len(r.Path))
	for i, v := range r.Path {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func label(discounted bool) string {
	if discounted {
		return LabelDiscounted
	}

	return LabelBaseline
}
