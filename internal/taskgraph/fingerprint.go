package taskgraph

import (
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"
)

type canonicalTask struct {
	ID         TaskID   `json:"id"`
	Successors []TaskID `json:"successors"`
}

// Canonicalize returns a stable JSON encoding of the graph. Tasks are sorted
// by identifier and each successor list is sorted, so two graphs that differ
// only in edge insertion order canonicalize identically. Duplicate edges are
// kept because they change successor-rank profiles.
func (g *Graph) Canonicalize() ([]byte, error) {
	ids := g.Tasks()
	tasks := make([]canonicalTask, 0, len(ids))
	for _, id := range ids {
		succ := sortedCopy(g.successors[id])
		tasks = append(tasks, canonicalTask{ID: id, Successors: succ})
	}
	return json.Marshal(tasks)
}

// Fingerprint returns the hex blake3 digest of the canonical form.
func (g *Graph) Fingerprint() (string, error) {
	canonical, err := g.Canonicalize()
	if err != nil {
		return "", fmt.Errorf("canonicalize graph: %w", err)
	}

	hasher := blake3.New()
	if _, err := hasher.Write(canonical); err != nil {
		return "", fmt.Errorf("hash graph: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
