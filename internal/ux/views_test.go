package ux

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/coffman/internal/labeler"
	"github.com/felixgeelhaar/coffman/internal/report"
	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

func sampleReport() *report.Report {
	r := report.FromOrder("run-1", "testdata/chain.yaml", "chain", "0123456789abcdef0123",
		[]taskgraph.TaskID{1, 2, 3}, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))
	return r
}

func TestReportsRenderText(t *testing.T) {
	r := sampleReport()
	r.Cached = true
	r.Trace = []labeler.Step{{Rank: 1, Task: 3, Profile: []int{}, Candidates: []taskgraph.TaskID{3}}}

	out := Reports{r}.RenderText(PlainStyles())

	for _, want := range []string{
		"chain (testdata/chain.yaml, 3 tasks) cached",
		"Priority:    1, 2, 3",
		"Labels:      1:3 2:2 3:1",
		"Fingerprint: 0123456789ab",
		"Run:         run-1",
		"rank 1 -> task 3  profile []  ready {3}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReportsJSON(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("json", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}
	if err := f.Format(Reports{sampleReport()}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d reports, want 1", len(decoded))
	}
	if decoded[0]["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want run-1", decoded[0]["run_id"])
	}
	if _, ok := decoded[0]["trace"]; ok {
		t.Errorf("trace should be omitted when empty")
	}
}

func TestHistoryRenderText(t *testing.T) {
	if out := (History{}).RenderText(PlainStyles()); out != "No rankings recorded." {
		t.Errorf("empty history = %q", out)
	}

	out := History{sampleReport()}.RenderText(PlainStyles())
	if !strings.Contains(out, "FINGERPRINT") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "0123456789ab") || !strings.Contains(out, "testdata/chain.yaml") {
		t.Errorf("missing row:\n%s", out)
	}
}

func TestGraphSummaryRenderText(t *testing.T) {
	summary := &GraphSummary{
		Name:        "loop",
		Source:      "loop.yaml",
		Fingerprint: "ff",
		Tasks:       []taskgraph.TaskID{1, 2},
		Sources:     []taskgraph.TaskID{},
		Edges:       []taskgraph.Edge{{From: 1, To: 2}, {From: 2, To: 1}},
		Cycle:       []taskgraph.TaskID{1, 2, 1},
	}

	out := summary.RenderText(PlainStyles())
	for _, want := range []string{"loop (loop.yaml)", "2 {1, 2}", "Sources:     {}", "1 -> 2", "no, cycle 1 -> 2 -> 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	summary.Acyclic = true
	if out := summary.RenderText(PlainStyles()); !strings.Contains(out, "Acyclic:     yes") {
		t.Errorf("acyclic graph rendered as:\n%s", out)
	}
}

func TestValidation(t *testing.T) {
	v := Validation{
		{Source: "a.yaml", Valid: true, Tasks: 3},
		{Source: "b.yaml", Error: "cycle"},
		{Source: "c.yaml", Code: "GRAPH-003", Error: "circular dependency detected: 1 -> 1"},
	}

	if !v.Failed() {
		t.Error("Failed() = false, want true")
	}
	if v[:1].Failed() {
		t.Error("Failed() = true for valid results")
	}

	out := v.RenderText(PlainStyles())
	if !strings.Contains(out, "✓ a.yaml (3 tasks)") || !strings.Contains(out, "✗ b.yaml: cycle") ||
		!strings.Contains(out, "✗ c.yaml [GRAPH-003]: circular dependency detected: 1 -> 1") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestShortFingerprint(t *testing.T) {
	if got := ShortFingerprint("abc"); got != "abc" {
		t.Errorf("ShortFingerprint(abc) = %q", got)
	}
	if got := ShortFingerprint("0123456789abcdef"); got != "0123456789ab" {
		t.Errorf("ShortFingerprint() = %q", got)
	}
}
