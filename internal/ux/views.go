package ux

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/coffman/internal/labeler"
	"github.com/felixgeelhaar/coffman/internal/report"
	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

// Reports is the output of the rank command.
type Reports []*report.Report

// RenderText renders one block per report.
func (rs Reports) RenderText(s Styles) string {
	blocks := make([]string, 0, len(rs))
	for _, r := range rs {
		blocks = append(blocks, renderReport(r, s))
	}
	return strings.Join(blocks, "\n\n")
}

func renderReport(r *report.Report, s Styles) string {
	var b strings.Builder

	title := r.Name
	if title == "" {
		title = r.Source
	}
	b.WriteString(s.Title.Render(title))
	b.WriteString(s.Muted.Render(fmt.Sprintf(" (%s, %d tasks)", r.Source, r.Tasks)))
	if r.Cached {
		b.WriteString(" " + s.Warning.Render("cached"))
	}
	b.WriteString("\n")

	field(&b, s, "Priority", s.Rank.Render(JoinIDs(r.Order)))

	labels := make([]string, len(r.Labels))
	for i, l := range r.Labels {
		labels[i] = fmt.Sprintf("%d:%d", l.Task, l.Rank)
	}
	field(&b, s, "Labels", strings.Join(labels, " "))
	field(&b, s, "Fingerprint", ShortFingerprint(r.Fingerprint))
	field(&b, s, "Run", r.RunID)

	for _, step := range r.Trace {
		b.WriteString("  ")
		b.WriteString(s.Muted.Render(renderStep(step)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderStep(step labeler.Step) string {
	profile := make([]string, len(step.Profile))
	for i, p := range step.Profile {
		profile[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("rank %d -> task %d  profile [%s]  ready {%s}",
		step.Rank, step.Task, strings.Join(profile, " "), JoinIDs(step.Candidates))
}

// History is the output of the history command.
type History []*report.Report

// RenderText renders one line per run, newest first.
func (h History) RenderText(s Styles) string {
	if len(h) == 0 {
		return s.Muted.Render("No rankings recorded.")
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("%-20s  %-12s  %5s  %s", "WHEN", "FINGERPRINT", "TASKS", "SOURCE")))
	for _, r := range h {
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(r.CreatedAt.Local().Format("2006-01-02 15:04:05")))
		b.WriteString(fmt.Sprintf("  %-12s  %5d  %s", ShortFingerprint(r.Fingerprint), r.Tasks, r.Source))
	}
	return b.String()
}

// GraphSummary is the output of the inspect command.
type GraphSummary struct {
	Name        string             `json:"name" yaml:"name"`
	Source      string             `json:"source" yaml:"source"`
	Fingerprint string             `json:"fingerprint" yaml:"fingerprint"`
	Tasks       []taskgraph.TaskID `json:"tasks" yaml:"tasks"`
	Sources     []taskgraph.TaskID `json:"sources" yaml:"sources"`
	Sinks       []taskgraph.TaskID `json:"sinks" yaml:"sinks"`
	Edges       []taskgraph.Edge   `json:"edges" yaml:"edges"`
	Acyclic     bool               `json:"acyclic" yaml:"acyclic"`
	Cycle       []taskgraph.TaskID `json:"cycle,omitempty" yaml:"cycle,omitempty"`
}

// RenderText renders the summary as labeled fields.
func (g *GraphSummary) RenderText(s Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(g.Name))
	b.WriteString(s.Muted.Render(" (" + g.Source + ")"))
	b.WriteString("\n")

	field(&b, s, "Fingerprint", g.Fingerprint)
	field(&b, s, "Tasks", fmt.Sprintf("%d {%s}", len(g.Tasks), JoinIDs(g.Tasks)))
	field(&b, s, "Sources", "{"+JoinIDs(g.Sources)+"}")
	field(&b, s, "Sinks", "{"+JoinIDs(g.Sinks)+"}")
	field(&b, s, "Edges", fmt.Sprint(len(g.Edges)))
	for _, e := range g.Edges {
		b.WriteString(fmt.Sprintf("    %d -> %d\n", e.From, e.To))
	}
	if g.Acyclic {
		field(&b, s, "Acyclic", s.Success.Render("yes"))
	} else {
		field(&b, s, "Acyclic", s.Error.Render("no, cycle "+JoinPath(g.Cycle)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ValidationResult is the outcome of validating one graph file.
type ValidationResult struct {
	Source string             `json:"source" yaml:"source"`
	Valid  bool               `json:"valid" yaml:"valid"`
	Tasks  int                `json:"tasks" yaml:"tasks"`
	Code   string             `json:"code,omitempty" yaml:"code,omitempty"`
	Error  string             `json:"error,omitempty" yaml:"error,omitempty"`
	Cycle  []taskgraph.TaskID `json:"cycle,omitempty" yaml:"cycle,omitempty"`
}

// Validation is the output of the validate command.
type Validation []ValidationResult

// RenderText renders one line per file.
func (v Validation) RenderText(s Styles) string {
	lines := make([]string, 0, len(v))
	for _, r := range v {
		if r.Valid {
			lines = append(lines, s.Success.Render("✓ ")+r.Source+s.Muted.Render(fmt.Sprintf(" (%d tasks)", r.Tasks)))
			continue
		}
		source := r.Source
		if r.Code != "" {
			source += s.Muted.Render(" [" + r.Code + "]")
		}
		lines = append(lines, s.Error.Render("✗ ")+source+": "+r.Error)
	}
	return strings.Join(lines, "\n")
}

// Failed reports whether any result is invalid.
func (v Validation) Failed() bool {
	for _, r := range v {
		if !r.Valid {
			return true
		}
	}
	return false
}

func field(b *strings.Builder, s Styles, label, value string) {
	b.WriteString("  ")
	b.WriteString(s.Label.Render(fmt.Sprintf("%-12s", label+":")))
	b.WriteString(" ")
	b.WriteString(s.Value.Render(value))
	b.WriteString("\n")
}

// JoinIDs renders identifiers as "1, 3, 2".
func JoinIDs(ids []taskgraph.TaskID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}

// JoinPath renders identifiers as "1 -> 2 -> 1".
func JoinPath(ids []taskgraph.TaskID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, " -> ")
}

// ShortFingerprint returns the first 12 hex digits.
func ShortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
