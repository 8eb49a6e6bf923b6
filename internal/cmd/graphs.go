package cmd

import (
	"path/filepath"
	"strings"

	"github.com/felixgeelhaar/coffman/internal/graphfile"
	"github.com/felixgeelhaar/coffman/internal/log"
	"github.com/felixgeelhaar/coffman/internal/taskgraph"
)

// loadedGraph is a parsed graph file ready for ranking.
type loadedGraph struct {
	Source      string
	Name        string
	Graph       *taskgraph.Graph
	Fingerprint string
}

// loadGraphs expands args and parses every graph file, stopping at the
// first failure.
func loadGraphs(args []string, logger *log.Logger) ([]loadedGraph, error) {
	paths, err := graphfile.Discover(args)
	if err != nil {
		return nil, loadError(firstMissing(args), err)
	}

	graphs := make([]loadedGraph, 0, len(paths))
	for _, path := range paths {
		g, err := loadGraph(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("graph loaded", "source", path, "tasks", g.Graph.NumberOfTasks(), "fingerprint", g.Fingerprint)
		graphs = append(graphs, g)
	}
	return graphs, nil
}

func loadGraph(path string) (loadedGraph, error) {
	doc, err := graphfile.Load(path)
	if err != nil {
		return loadedGraph{}, loadError(path, err)
	}

	g := doc.Graph()
	fp, err := g.Fingerprint()
	if err != nil {
		return loadedGraph{}, loadError(path, err)
	}

	return loadedGraph{Source: path, Name: doc.Name, Graph: g, Fingerprint: fp}, nil
}

// firstMissing names the argument a Discover error most likely refers to.
func firstMissing(args []string) string {
	for _, a := range args {
		if _, err := graphfile.Discover([]string{a}); err != nil {
			return a
		}
	}
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "text"
	}
}
