// Package alpx provides fluent builders for Alpine.js directives in
// server-rendered Go applications using Templ templates.
//
// alpx produces templ.Attributes maps - it never renders HTML itself.
// Builders assemble the directive key (prefix, base name, dot-separated
// modifiers) and the terminal call attaches the expression value:
//
//	<button { alpx.OnClick().Prevent().Once().Attrs("submit()")... }>
//
// # Core Concepts
//
// Every builder is an immutable value. Modifier methods return a new
// Attr, leaving the receiver untouched, so a partially configured
// builder can be reused and forked freely:
//
//	keydown := alpx.OnKeydown().Ctrl()
//	save := keydown.Enter().Attrs("save()")
//	quit := keydown.Escape().Attrs("quit()")
//
// The terminal Attrs call produces a single-entry templ.Attributes.
// Merge combines the output of several builders into one element's
// attribute set (later entries win on key collision):
//
//	alpx.Merge(
//	    alpx.Data(alpx.Obj().Set("email", "")),
//	    alpx.OnSubmit().Prevent().Attrs("send()"),
//	    alpx.OnKeydown().Escape().Attrs("cancel()"),
//	)
//
// # Component State
//
// Data accepts either a raw expression string or structured state.
// Structured state is serialized to JavaScript object notation rather
// than JSON: keys are unquoted and strings use single quotes, which
// avoids double-quote escaping inside HTML attributes:
//
//	alpx.Data(alpx.Obj().
//	    Set("count", 0).
//	    Set("items", []any{}).
//	    Set("increment", alpx.JS("function() { this.count++ }")))
//	// x-data="{ count: 0, items: [], increment: function() { this.count++ } }"
//
// JS marks a value as executable expression text to be emitted verbatim
// and unquoted. Everything else is formatted by type: strings are
// entity-escaped and single-quoted, numbers and booleans emit their
// literal form, slices render as single-quoted lists, and nested
// Obj values recurse.
//
// # Events, Bindings, and Models
//
// Typed constructors cover the common names (OnClick, BindClass,
// ModelNumber, ...) for discoverability. Unknown names are never
// errors - the open-ended constructors synthesize the directive from
// any name, converting underscores to hyphens:
//
//	alpx.On("custom_event").Attrs("handle($event)")   // @custom-event
//	alpx.Bind("aria_label").Attrs("label")            // x-bind:aria-label
//	alpx.X("intersect", "visible = true")             // x-intersect
//
// OnRaw and BindRaw bypass hyphenation for names that contain special
// characters and must be passed through exactly.
//
// # Design Rationale
//
// The system favors plain values over framework machinery:
//   - Builders are immutable values (no hidden state, safe to share)
//   - Output is a plain templ.Attributes map (spreadable, mergeable)
//   - Unknown directive and modifier names pass through (Alpine
//     plugins add both; validating here would fight the ecosystem)
//   - Escaping beyond the object-notation rules is left to the HTML
//     serializer that consumes the attribute map
//
// The alpx/gom subpackage adapts attribute maps to gomponents nodes
// for projects on that templating stack.
package alpx
