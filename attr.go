package alpx

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Attr is an immutable builder for a single Alpine directive with
// modifiers.
//
// An Attr carries the directive prefix ("@", "x-bind:", "x-model"),
// the base name ("click", "class", ...) and an ordered modifier list.
// Every modifier method returns a new Attr; the receiver is never
// mutated, so builders can be stored and forked:
//
//	kd := alpx.OnKeydown().Ctrl()
//	save := kd.Enter().Attrs("save()")   // @keydown.ctrl.enter
//	quit := kd.Escape().Attrs("quit()")  // @keydown.ctrl.escape
//
// Obtain an Attr from one of the constructors (On, Bind, ModelNumber,
// ...) rather than constructing it directly.
type Attr struct {
	prefix string
	base   string
	mods   []string
}

// Key returns the directive key this builder currently renders to,
// without attaching a value. Useful for debugging and tests.
func (a Attr) Key() string {
	var b strings.Builder
	if a.base != "" {
		b.WriteString(a.prefix)
		b.WriteString(a.base)
	} else {
		// Model-style builders have an empty base; the prefix's
		// trailing separator must not dangle before the modifiers.
		b.WriteString(strings.TrimSuffix(a.prefix, ":"))
	}
	for _, m := range a.mods {
		b.WriteByte('.')
		b.WriteString(m)
	}
	return b.String()
}

// Attrs renders the directive into a single-entry attribute map.
//
// The value is attached verbatim - alpx performs no escaping here.
// The HTML serializer consuming the map (templ, gomponents) applies
// attribute escaping when it writes markup.
//
//	alpx.OnClick().Prevent().Attrs("open = !open")
//	// templ.Attributes{"@click.prevent": "open = !open"}
func (a Attr) Attrs(value string) templ.Attributes {
	return templ.Attributes{a.Key(): value}
}

// Mod appends custom modifiers, converting each name from
// underscore form to hyphen form.
//
// Names are not validated against the directive family: Alpine
// plugins introduce modifiers freely, and an invalid combination is a
// template bug, not something this layer can detect. Duplicates are
// kept and order is preserved, since both are significant to Alpine.
func (a Attr) Mod(names ...string) Attr {
	mods := make([]string, 0, len(a.mods)+len(names))
	mods = append(mods, a.mods...)
	for _, n := range names {
		mods = append(mods, hyphenate(n))
	}
	return Attr{prefix: a.prefix, base: a.base, mods: mods}
}

// Debounce delays handler invocation until ms milliseconds of quiet.
//
// The value is passed through unvalidated; Alpine ignores
// nonsensical durations.
func (a Attr) Debounce(ms int) Attr {
	return a.Mod("debounce", strconv.Itoa(ms)+"ms")
}

// Throttle limits handler invocation to once per ms milliseconds.
//
// The value is passed through unvalidated, as with Debounce.
func (a Attr) Throttle(ms int) Attr {
	return a.Mod("throttle", strconv.Itoa(ms)+"ms")
}

// Prevent calls preventDefault() before the handler runs.
func (a Attr) Prevent() Attr { return a.Mod("prevent") }

// Stop calls stopPropagation() before the handler runs.
func (a Attr) Stop() Attr { return a.Mod("stop") }

// Once removes the listener after its first invocation.
func (a Attr) Once() Attr { return a.Mod("once") }

// Self fires only when event.target is the element itself.
func (a Attr) Self() Attr { return a.Mod("self") }

// Window attaches the listener to the window object.
func (a Attr) Window() Attr { return a.Mod("window") }

// Document attaches the listener to the document object.
func (a Attr) Document() Attr { return a.Mod("document") }

// Outside fires when the event originates outside the element.
func (a Attr) Outside() Attr { return a.Mod("outside") }

// Away is the legacy alias for Outside.
func (a Attr) Away() Attr { return a.Mod("away") }

// Passive registers a passive listener (never calls preventDefault).
func (a Attr) Passive() Attr { return a.Mod("passive") }

// Capture registers the listener for the capture phase.
func (a Attr) Capture() Attr { return a.Mod("capture") }

// Enter restricts a key event to the Enter key.
func (a Attr) Enter() Attr { return a.Mod("enter") }

// Escape restricts a key event to the Escape key.
func (a Attr) Escape() Attr { return a.Mod("escape") }

// Space restricts a key event to the Space key.
func (a Attr) Space() Attr { return a.Mod("space") }

// Tab restricts a key event to the Tab key.
func (a Attr) Tab() Attr { return a.Mod("tab") }

// Up restricts a key event to the arrow-up key.
func (a Attr) Up() Attr { return a.Mod("up") }

// Down restricts a key event to the arrow-down key.
func (a Attr) Down() Attr { return a.Mod("down") }

// Left restricts a key event to the arrow-left key.
func (a Attr) Left() Attr { return a.Mod("left") }

// Right restricts a key event to the arrow-right key.
func (a Attr) Right() Attr { return a.Mod("right") }

// Shift requires the Shift key to be held.
func (a Attr) Shift() Attr { return a.Mod("shift") }

// Ctrl requires the Control key to be held.
func (a Attr) Ctrl() Attr { return a.Mod("ctrl") }

// Alt requires the Alt key to be held.
func (a Attr) Alt() Attr { return a.Mod("alt") }

// Meta requires the Meta/Command key to be held.
func (a Attr) Meta() Attr { return a.Mod("meta") }

// Cmd is the alias for Meta.
func (a Attr) Cmd() Attr { return a.Mod("cmd") }

// hyphenate converts a Go-style underscore name to the hyphenated
// form used in HTML attributes.
func hyphenate(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
