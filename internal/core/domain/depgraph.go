package domain

import "github.com/google/uuid"

// ResolveDependencies turns a normalized draft task list into its persistable
// form: every task gets a fresh globally unique ID, dependency entries that
// reference a task in the same plan (by its "task-{n}" display reference)
// are rewritten to the new IDs, and entries naming no task in the plan are
// dropped. A plan whose dependency graph contains a cycle is rejected.
func ResolveDependencies(tasks []Task) ([]Task, error) {
	byRef := make(map[string]int, len(tasks))
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		byRef[task.ID] = i
		ids[i] = uuid.NewString()
	}

	resolved := make([]Task, len(tasks))
	adjacency := make([][]int, len(tasks))
	for i, task := range tasks {
		next := task
		next.ID = ids[i]
		next.OrderIndex = i

		deps := make([]string, 0, len(task.Dependencies))
		for _, ref := range task.Dependencies {
			j, ok := byRef[ref]
			if !ok {
				continue
			}
			deps = append(deps, ids[j])
			adjacency[i] = append(adjacency[i], j)
		}
		next.Dependencies = deps
		resolved[i] = next
	}

	if hasCycle(adjacency) {
		return nil, &GenerationFormatError{Reason: "task dependencies form a cycle"}
	}

	return resolved, nil
}

const (
	unvisited = iota
	visiting
	visited
)

func hasCycle(adjacency [][]int) bool {
	state := make([]int, len(adjacency))

	var visit func(int) bool
	visit = func(node int) bool {
		state[node] = visiting
		for _, next := range adjacency[node] {
			switch state[next] {
			case visiting:
				return true
			case unvisited:
				if visit(next) {
					return true
				}
			}
		}
		state[node] = visited
		return false
	}

	for node := range adjacency {
		if state[node] == unvisited && visit(node) {
			return true
		}
	}
	return false
}
