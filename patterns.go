package alpx

import (
	"fmt"

	"github.com/a-h/templ"
)

// Prebuilt attribute sets for common Alpine UI patterns. Each helper
// is plain composition of the core builders; use them as starting
// points and Merge in overrides where needed.

// Toggle declares an open/closed widget root with state
// { open: false }. Pair with ToggleButton and TogglePanel on
// descendant elements.
func Toggle() templ.Attributes {
	return Data(Obj().Set("open", false))
}

// ToggleButton flips the enclosing Toggle's open state on click.
func ToggleButton() templ.Attributes {
	return OnClick().Attrs("open = !open")
}

// TogglePanel shows its element while the enclosing Toggle is open,
// hidden until Alpine initializes to avoid a flash of content.
func TogglePanel() templ.Attributes {
	return Merge(Show("open"), Cloak())
}

// Dropdown declares a dropdown root: open/closed state that closes
// on outside click and on Escape anywhere in the window.
func Dropdown() templ.Attributes {
	return Merge(
		Data(Obj().Set("open", false)),
		OnClick().Outside().Attrs("open = false"),
		OnKeydown().Escape().Window().Attrs("open = false"),
	)
}

// Modal returns attributes for a modal panel bound to the given
// state property: visible while the property is truthy, closed by
// Escape from anywhere.
func Modal(state string) templ.Attributes {
	return Merge(
		Show(state),
		OnKeydown().Escape().Window().Attrs(fmt.Sprintf("%s = false", state)),
		Cloak(),
	)
}

// Tabs declares a tab-group root with the given tab initially active.
func Tabs(initial string) templ.Attributes {
	return Data(Obj().Set("tab", initial))
}

// TabButton activates the named tab on click.
func TabButton(name string) templ.Attributes {
	return OnClick().Attrs(fmt.Sprintf("tab = '%s'", name))
}

// TabPanel shows its element while the named tab is active.
func TabPanel(name string) templ.Attributes {
	return Merge(Show(fmt.Sprintf("tab === '%s'", name)), Cloak())
}
