package taskgraph

// DetectCycle reports the first cycle found by a depth-first walk over the
// tasks in ascending order, or nil if the graph is acyclic.
//
// The labeler does not call this; it exists so tools can explain why a graph
// cannot be ranked.
func (g *Graph) DetectCycle() error {
	const (
		white = iota
		grey
		black
	)

	color := make(map[TaskID]int, len(g.tasks))

	var visit func(id TaskID, path []TaskID) error
	visit = func(id TaskID, path []TaskID) error {
		color[id] = grey
		path = append(path, id)

		for _, next := range g.successors[id] {
			switch color[next] {
			case white:
				if err := visit(next, path); err != nil {
					return err
				}
			case grey:
				// Trim the path to the part that closes the loop.
				start := 0
				for i, p := range path {
					if p == next {
						start = i
						break
					}
				}
				cycle := make([]TaskID, 0, len(path)-start+1)
				cycle = append(cycle, path[start:]...)
				cycle = append(cycle, next)
				return &CycleError{Path: cycle}
			}
		}

		color[id] = black
		return nil
	}

	for _, id := range g.Tasks() {
		if color[id] == white {
			if err := visit(id, nil); err != nil {
				return err
			}
		}
	}
	return nil
}
