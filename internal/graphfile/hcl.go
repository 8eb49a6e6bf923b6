package graphfile

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

// hclDocument is the top-level structure of an HCL graph file:
//
//	name = "diamond"
//	task "1" { successors = [2, 3] }
//	task "2" {}
type hclDocument struct {
	Name  string     `hcl:"name,optional"`
	Tasks []*hclTask `hcl:"task,block"`
}

type hclTask struct {
	ID         string   `hcl:"id,label"`
	Successors []uint64 `hcl:"successors,optional"`
}

func decodeHCL(data []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var raw hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, diags
	}

	doc := &Document{Name: raw.Name}
	for _, task := range raw.Tasks {
		id, err := taskgraph.ParseTaskID(task.ID)
		if err != nil {
			return nil, fmt.Errorf("task block: %w", err)
		}
		doc.Tasks = append(doc.Tasks, id)
		if len(task.Successors) == 0 {
			continue
		}
		if doc.Successors == nil {
			doc.Successors = make(map[taskgraph.TaskID][]taskgraph.TaskID)
		}
		for _, s := range task.Successors {
			doc.Successors[id] = append(doc.Successors[id], taskgraph.TaskID(s))
		}
	}
	return doc, nil
}

func encodeHCL(doc *Document) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	if doc.Name != "" {
		body.SetAttributeValue("name", cty.StringVal(doc.Name))
	}

	// Every identifier gets a block so that successor-only tasks survive.
	seen := make(map[taskgraph.TaskID]struct{})
	var ids []taskgraph.TaskID
	add := func(id taskgraph.TaskID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, id := range doc.Tasks {
		add(id)
	}
	for id, succ := range doc.Successors {
		add(id)
		for _, s := range succ {
			add(s)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		body.AppendNewline()
		block := body.AppendNewBlock("task", []string{id.String()})
		succ := doc.Successors[id]
		if len(succ) == 0 {
			continue
		}
		vals := make([]cty.Value, len(succ))
		for i, s := range succ {
			vals[i] = cty.NumberUIntVal(uint64(s))
		}
		block.Body().SetAttributeValue("successors", cty.ListVal(vals))
	}
	return f.Bytes()
}
