/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package graph

// Node is one step of the workflow, labelled for display in the rendered
// graph. Name is the node's unique identifier; Label may be empty, in which
// case Name is used as the display label too.
type Node struct {
	Name  string
	Label string
}

// Edge is one directed transition between two steps, optionally labelled
// with the tag or condition that selects it.
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is the whole structure a DOT emitter renders: a list of nodes and a
// list of directed edges between them. It carries no layout information -
// that is Graphviz's job once the DOT text reaches it.
type Graph struct {
	Name  string
	Nodes []Node
	Edges []Edge
}

// AddNode appends a node, replacing any previous registration of the same
// name.
func (g *Graph) AddNode(name, label string) {
	for i := range g.Nodes {
		if g.Nodes[i].Name == name {
			g.Nodes[i].Label = label
			return
		}
	}
	g.Nodes = append(g.Nodes, Node{Name: name, Label: label})
}

// AddEdge appends a directed edge from -> to, labelled with label.
func (g *Graph) AddEdge(from, to, label string) {
	g.Edges = append(g.Edges, Edge{From: from, To: to, Label: label})
}
