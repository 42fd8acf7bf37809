// Package yamlfile contains the filesystem adapters for every YAML document
// shape the toolkit touches: append-only canonical files, review part files,
// quarantine mirrors and the canonical data tree edited by the backporter.
// All order-sensitive work goes through yaml.Node trees so that key order in
// human-edited files survives a round trip.
package yamlfile

import "gopkg.in/yaml.v3"

// scalar builds a plain string scalar node.
func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// quoted builds a double-quoted string scalar node, the style the review and
// data-tree files are written in.
func quoted(v string) *yaml.Node {
	n := scalar(v)
	n.Style = yaml.DoubleQuotedStyle
	return n
}

// mappingValue returns the value node for key inside a mapping node, or nil.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// hasKey reports whether a mapping node carries the key.
func hasKey(m *yaml.Node, key string) bool {
	return mappingValue(m, key) != nil
}

// appendPair appends a key/value pair to a mapping node.
func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}

// documentMapping extracts the top-level mapping from a parsed document,
// creating an empty one for empty files.
func documentMapping(doc *yaml.Node) *yaml.Node {
	if doc == nil || len(doc.Content) == 0 {
		return &yaml.Node{Kind: yaml.MappingNode}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return &yaml.Node{Kind: yaml.MappingNode}
	}
	return root
}
