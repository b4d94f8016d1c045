package depgraph

import (
	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// schedule holds the per-node critical-path metrics.
type schedule struct {
	nodes  map[domain.TaskID]*plan.DependencyNode
	finish int
	topo   []domain.TaskID
}

// computeSchedule runs the critical-path method: a forward pass for
// earliest starts, a backward pass for latest starts, then slack and
// criticality. Nodes trapped in a cycle keep zero metrics; they are
// excluded from the topological order.
func computeSchedule(g *graph) *schedule {
	s := &schedule{nodes: make(map[domain.TaskID]*plan.DependencyNode, len(g.order))}

	for _, id := range g.order {
		s.nodes[id] = &plan.DependencyNode{
			TaskID:   id,
			Duration: g.duration(id),
		}
	}

	s.topo = topologicalOrder(g)

	// Forward pass: earliest start is the max over predecessors of
	// their earliest finish plus edge lag, seeded at zero.
	for _, id := range s.topo {
		node := s.nodes[id]
		for _, ei := range g.incoming[id] {
			edge := g.edges[ei]
			pred := s.nodes[edge.From]
			candidate := pred.EarliestStart + pred.Duration + edge.Lag
			if candidate > node.EarliestStart {
				node.EarliestStart = candidate
			}
		}
		if finish := node.EarliestStart + node.Duration; finish > s.finish {
			s.finish = finish
		}
	}

	// Backward pass: latest start from the project finish, seeded at
	// (finish - duration) for nodes with no successors.
	for i := len(s.topo) - 1; i >= 0; i-- {
		node := s.nodes[s.topo[i]]
		latestFinish := s.finish
		for _, ei := range g.outgoing[node.TaskID] {
			edge := g.edges[ei]
			succ := s.nodes[edge.To]
			if candidate := succ.LatestStart - edge.Lag; candidate < latestFinish {
				latestFinish = candidate
			}
		}
		node.LatestStart = latestFinish - node.Duration
		node.Slack = node.LatestStart - node.EarliestStart
		node.Critical = node.Slack == 0
	}

	return s
}

// topologicalOrder returns nodes in dependency order via Kahn's
// algorithm. Nodes that cannot be ordered because of a cycle are
// omitted.
func topologicalOrder(g *graph) []domain.TaskID {
	indegree := make(map[domain.TaskID]int, len(g.order))
	for _, id := range g.order {
		indegree[id] = len(g.incoming[id])
	}

	var queue []domain.TaskID
	for _, id := range g.order {
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	var order []domain.TaskID
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, ei := range g.outgoing[id] {
			to := g.edges[ei].To
			indegree[to]--
			if indegree[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	return order
}

// criticalPath walks the zero-slack chain from a no-predecessor
// critical node to a no-successor critical node, preferring the
// successor whose earliest start equals the current node's earliest
// finish so the chain is contiguous.
func criticalPath(g *graph, s *schedule) []domain.TaskID {
	var start domain.TaskID
	found := false
	for _, id := range s.topo {
		node := s.nodes[id]
		if node.Critical && allNonCritical(g, s, g.incoming[id]) {
			start = id
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	var path []domain.TaskID
	current := start
	for {
		path = append(path, current)
		node := s.nodes[current]
		next, ok := nextCritical(g, s, node)
		if !ok {
			return path
		}
		current = next
	}
}

// allNonCritical reports whether none of the edges' source nodes are
// critical, i.e. the node is a chain head.
func allNonCritical(g *graph, s *schedule, edgeIdxs []int) bool {
	for _, ei := range edgeIdxs {
		if s.nodes[g.edges[ei].From].Critical {
			return false
		}
	}
	return true
}

// nextCritical picks the critical successor that starts exactly at
// this node's earliest finish.
func nextCritical(g *graph, s *schedule, node *plan.DependencyNode) (domain.TaskID, bool) {
	finish := node.EarliestStart + node.Duration
	for _, ei := range g.outgoing[node.TaskID] {
		edge := g.edges[ei]
		succ := s.nodes[edge.To]
		if succ.Critical && succ.EarliestStart == finish+edge.Lag {
			return succ.TaskID, true
		}
	}
	return "", false
}
