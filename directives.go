package alpx

import "github.com/a-h/templ"

// X produces an arbitrary x-prefixed directive.
//
// The name is converted from underscore form to hyphen form, so
// plugin directives work without enumeration:
//
//	alpx.X("intersect", "shown = true")  // x-intersect="shown = true"
//
// Unknown directive names are never an error; this is the
// extensibility point for the Alpine plugin ecosystem. The named
// helpers below cover the built-in directives.
func X(name string, expr string) templ.Attributes {
	return templ.Attributes{"x-" + hyphenate(name): expr}
}

// Data declares component state (x-data).
//
// A string is attached verbatim as the state expression. Anything
// else (typically an Object or map[string]any) is serialized to
// JavaScript object notation first:
//
//	alpx.Data("dropdown")                          // x-data="dropdown"
//	alpx.Data(alpx.Obj().Set("open", false))       // x-data="{ open: false }"
func Data(state any) templ.Attributes {
	if expr, ok := state.(string); ok {
		return templ.Attributes{"x-data": expr}
	}
	return templ.Attributes{"x-data": Serialize(state)}
}

// Text sets the element's text content (x-text).
func Text(expr string) templ.Attributes {
	return templ.Attributes{"x-text": expr}
}

// HTML sets the element's inner HTML (x-html).
func HTML(expr string) templ.Attributes {
	return templ.Attributes{"x-html": expr}
}

// Show toggles element visibility with CSS (x-show).
func Show(expr string) templ.Attributes {
	return templ.Attributes{"x-show": expr}
}

// If conditionally renders the element in the DOM (x-if).
func If(expr string) templ.Attributes {
	return templ.Attributes{"x-if": expr}
}

// For loops over items (x-for).
func For(expr string) templ.Attributes {
	return templ.Attributes{"x-for": expr}
}

// Ref registers the element under $refs (x-ref).
func Ref(name string) templ.Attributes {
	return templ.Attributes{"x-ref": name}
}

// Init runs an expression when the component initializes (x-init).
func Init(expr string) templ.Attributes {
	return templ.Attributes{"x-init": expr}
}

// Effect re-runs an expression whenever its dependencies change (x-effect).
func Effect(expr string) templ.Attributes {
	return templ.Attributes{"x-effect": expr}
}

// Teleport renders the element under the target selector (x-teleport).
func Teleport(target string) templ.Attributes {
	return templ.Attributes{"x-teleport": target}
}

// Transition applies enter/leave transitions (x-transition).
// Pass an empty string for the default transition.
func Transition(expr string) templ.Attributes {
	return templ.Attributes{"x-transition": expr}
}

// Cloak hides the element until Alpine initializes (x-cloak).
// Presence-only: the attribute renders with no value.
func Cloak() templ.Attributes {
	return templ.Attributes{"x-cloak": true}
}

// Ignore excludes the element's subtree from Alpine (x-ignore).
// Presence-only, like Cloak.
func Ignore() templ.Attributes {
	return templ.Attributes{"x-ignore": true}
}
