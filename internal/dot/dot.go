// Package dot reads the restricted DOT subset the analyzer emits: quoted
// node statements with a label attribute, and quoted directed edges.
// It is deliberately not a full DOT grammar.
package dot

import (
	"os"
	"regexp"
	"strings"
)

// NodeDecl is one recognized node statement.
type NodeDecl struct {
	ID    string
	Label string
}

// EdgeDecl is one recognized directed edge statement.
type EdgeDecl struct {
	From string
	To   string
}

// Document holds the declarations recognized in one graph description,
// in the order they appeared.
type Document struct {
	Nodes []NodeDecl
	Edges []EdgeDecl
}

var (
	nodeRe = regexp.MustCompile(`"([^"]+)"\s*\[label="([^"]+)"\]`)
	edgeRe = regexp.MustCompile(`"([^"]+)"\s*->\s*"([^"]+)"`)
)

// Parse scans text line by line. The node pattern is tried first and a
// line yields at most one declaration; either pattern may sit anywhere
// inside a longer line. Lines matching neither (graph headers, closing
// braces, comments, other attributes) are skipped. There is no error
// path: unparseable input degrades to an empty Document.
func Parse(text string) Document {
	var doc Document
	for _, line := range strings.Split(text, "\n") {
		if m := nodeRe.FindStringSubmatch(line); m != nil {
			doc.Nodes = append(doc.Nodes, NodeDecl{ID: m[1], Label: m[2]})
			continue
		}
		if m := edgeRe.FindStringSubmatch(line); m != nil {
			doc.Edges = append(doc.Edges, EdgeDecl{From: m[1], To: m[2]})
		}
	}
	return doc
}

// ParseFile reads path and parses its contents. I/O is the only way
// this can fail.
func ParseFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Parse(string(data)), nil
}
