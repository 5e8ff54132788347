package alpx

import "github.com/a-h/templ"

// Model produces a plain two-way binding (x-model) on the given
// state property.
//
//	<input { alpx.Model("email")... }>
func Model(expr string) templ.Attributes {
	return templ.Attributes{"x-model": expr}
}

// modelAttr starts a modifier chain on x-model. The base is empty:
// the modifiers attach directly to the directive name
// (x-model.number, not x-model.something.number).
func modelAttr(mods ...string) Attr {
	return Attr{prefix: "x-model", mods: mods}
}

// ModelNumber coerces the bound value to a number.
//
//	alpx.ModelNumber().Attrs("age")  // x-model.number="age"
func ModelNumber() Attr { return modelAttr("number") }

// ModelLazy syncs on change instead of on every input event.
func ModelLazy() Attr { return modelAttr("lazy") }

// ModelTrim strips whitespace from the bound value.
func ModelTrim() Attr { return modelAttr("trim") }

// ModelDebounce delays model updates by ms milliseconds of quiet.
func ModelDebounce(ms int) Attr { return modelAttr().Debounce(ms) }

// ModelThrottle limits model updates to once per ms milliseconds.
func ModelThrottle(ms int) Attr { return modelAttr().Throttle(ms) }
