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

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes g to w as a Graphviz "digraph" - a faithful text
// rendering of nodes and edges, no layout engine and no styling beyond
// node labels. The root name defaults to "autotrail" when Graph.Name is
// empty.
func WriteDOT(w io.Writer, g *Graph) error {
	name := g.Name
	if name == "" {
		name = "autotrail"
	}

	if _, err := fmt.Fprintf(w, "digraph %s {\n", quoteID(name)); err != nil {
		return err
	}

	for _, n := range g.Nodes {
		label := n.Label
		if label == "" {
			label = n.Name
		}
		if _, err := fmt.Fprintf(w, "\t%s [label=%s];\n", quoteID(n.Name), quoteLabel(label)); err != nil {
			return err
		}
	}

	for _, e := range g.Edges {
		if e.Label == "" {
			if _, err := fmt.Fprintf(w, "\t%s -> %s;\n", quoteID(e.From), quoteID(e.To)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "\t%s -> %s [label=%s];\n", quoteID(e.From), quoteID(e.To), quoteLabel(e.Label)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "}\n")
	return err
}

// quoteID renders an identifier as a DOT double-quoted string, which is
// always valid DOT regardless of what characters the step name contains.
func quoteID(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// quoteLabel is identical to quoteID; kept as a separate name so the two
// call sites read as "this is a label" vs "this is an identifier" even
// though DOT quoting rules are the same for both.
func quoteLabel(s string) string {
	return quoteID(s)
}
