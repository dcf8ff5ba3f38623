// Package dag orders tables so that every table comes after the tables its
// foreign keys reference. Nodes keep insertion order, so independent tables
// stay in the order they were added.
package dag

import (
	"fmt"
	"slices"
)

// Node is one table in the graph.
type Node[T any] struct {
	// ID is the table name
	ID string
	// Data holds the caller's value for the table
	Data T
}

// Graph is a directed graph of table dependencies.
type Graph[T any] struct {
	order   []string
	nodes   map[string]*Node[T]
	edges   map[string][]string // referenced -> referencing tables
	parents map[string][]string // referencing -> referenced tables
}

// NewGraph creates an empty graph.
func NewGraph[T any]() *Graph[T] {
	return &Graph[T]{
		nodes:   make(map[string]*Node[T]),
		edges:   make(map[string][]string),
		parents: make(map[string][]string),
	}
}

// AddNode adds a table, replacing the data of an existing one.
func (g *Graph[T]) AddNode(id string, data T) {
	if n, exists := g.nodes[id]; exists {
		n.Data = data
		return
	}
	g.nodes[id] = &Node[T]{ID: id, Data: data}
	g.order = append(g.order, id)
}

// AddEdge records that childID references parentID. Both tables must exist.
// A table referencing itself adds no edge.
func (g *Graph[T]) AddEdge(parentID, childID string) error {
	if _, exists := g.nodes[parentID]; !exists {
		return fmt.Errorf("table %q does not exist", parentID)
	}
	if _, exists := g.nodes[childID]; !exists {
		return fmt.Errorf("table %q does not exist", childID)
	}
	if parentID == childID {
		return nil
	}

	if !slices.Contains(g.edges[parentID], childID) {
		g.edges[parentID] = append(g.edges[parentID], childID)
	}
	if !slices.Contains(g.parents[childID], parentID) {
		g.parents[childID] = append(g.parents[childID], parentID)
	}
	return nil
}

// Has reports whether the table is in the graph.
func (g *Graph[T]) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// GetParents returns the tables id references.
func (g *Graph[T]) GetParents(id string) []string {
	return g.parents[id]
}

// Len returns the number of tables.
func (g *Graph[T]) Len() int {
	return len(g.order)
}

// HasCycle reports whether the graph contains a cycle, along with the cycle path.
func (g *Graph[T]) HasCycle() (bool, []string) {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	path := make(map[string]string)

	var cyclePath []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		visited[id] = true
		recStack[id] = true

		for _, childID := range g.edges[id] {
			if !visited[childID] {
				path[childID] = id
				if dfs(childID) {
					return true
				}
			} else if recStack[childID] {
				cyclePath = []string{childID}
				for curr := id; curr != childID; curr = path[curr] {
					cyclePath = append([]string{curr}, cyclePath...)
				}
				cyclePath = append([]string{childID}, cyclePath...)
				return true
			}
		}

		recStack[id] = false
		return false
	}

	for _, id := range g.order {
		if !visited[id] && dfs(id) {
			return true, cyclePath
		}
	}
	return false, nil
}

// TopologicalSort returns the tables with every referenced table before the
// tables that reference it. Returns an error if the graph contains a cycle.
func (g *Graph[T]) TopologicalSort() ([]*Node[T], error) {
	if hasCycle, cyclePath := g.HasCycle(); hasCycle {
		return nil, fmt.Errorf("foreign key cycle detected: %v", cyclePath)
	}

	visited := make(map[string]bool)
	result := make([]*Node[T], 0, len(g.order))

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, parentID := range g.parents[id] {
			visit(parentID)
		}
		result = append(result, g.nodes[id])
	}

	for _, id := range g.order {
		visit(id)
	}
	return result, nil
}
