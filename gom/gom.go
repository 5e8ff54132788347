// Package gom adapts alpx attribute maps to gomponents nodes.
//
// Projects rendering HTML with maragu.dev/gomponents instead of templ
// can splice any alpx output into an element:
//
//	html.Button(
//	    gom.Attrs(alpx.OnClick().Prevent().Attrs("save()")),
//	    gomponents.Text("Save"),
//	)
package gom

import (
	"fmt"
	"sort"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Attrs converts an attribute map to a group of gomponents attribute
// nodes.
//
// String values become name="value" attributes. Boolean true becomes
// a presence-only attribute (x-cloak); boolean false omits the
// attribute entirely, matching templ's spread behavior. Other value
// types use their fmt.Sprint form. Keys are emitted in sorted order
// so rendered markup is deterministic.
func Attrs(attrs templ.Attributes) g.Node {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	nodes := make(g.Group, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case string:
			nodes = append(nodes, g.Attr(k, v))
		case bool:
			if v {
				nodes = append(nodes, g.Attr(k))
			}
		default:
			nodes = append(nodes, g.Attr(k, fmt.Sprint(v)))
		}
	}
	return nodes
}
