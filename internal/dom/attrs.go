// SPDX-License-Identifier: Apache-2.0

package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Attrs is a detached copy of the editor-owned attributes of one node.
// Because it is a copy, it stays valid after the node is removed from the tree.
type Attrs []html.Attribute

// Capture copies every attribute of n whose key starts with one of prefixes.
// A nil node or an empty prefix list yields nil.
func Capture(n *html.Node, prefixes []string) Attrs {
	if n == nil || len(prefixes) == 0 {
		return nil
	}
	var out Attrs
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		for _, p := range prefixes {
			if p != "" && strings.HasPrefix(a.Key, p) {
				out = append(out, html.Attribute{Key: a.Key, Val: a.Val})
				break
			}
		}
	}
	return out
}

// Merge returns a followed by b, with b winning on duplicate keys.
func (a Attrs) Merge(b Attrs) Attrs {
	if len(b) == 0 {
		return a
	}
	out := make(Attrs, 0, len(a)+len(b))
	out = append(out, a...)
	for _, attr := range b {
		out = out.with(attr)
	}
	return out
}

func (a Attrs) with(attr html.Attribute) Attrs {
	for i := range a {
		if a[i].Key == attr.Key {
			a[i].Val = attr.Val
			return a
		}
	}
	return append(a, attr)
}

// ApplyTo writes every attribute onto n, overwriting existing values.
// Applying the same Attrs twice leaves n unchanged the second time.
func (a Attrs) ApplyTo(n *html.Node) int {
	if n == nil {
		return 0
	}
	for _, attr := range a {
		SetAttr(n, attr.Key, attr.Val)
	}
	return len(a)
}

// Get returns the value stored for key.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}
