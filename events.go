package alpx

// On returns a builder for an event listener directive (@event).
//
// The name is converted from underscore form to hyphen form, so
// custom and plugin events work without enumeration:
//
//	alpx.On("refresh_feed").Attrs("reload()")  // @refresh-feed
//
// Unknown event names are never an error. The typed constructors
// below cover the common DOM events for discoverability.
func On(event string) Attr {
	return Attr{prefix: "@", base: hyphenate(event)}
}

// OnRaw returns an event listener builder using the name exactly as
// given, with no hyphenation. Use for event names that legitimately
// contain special characters (namespaced plugin events, dots).
func OnRaw(event string) Attr {
	return Attr{prefix: "@", base: event}
}

// OnClick listens for the click event.
func OnClick() Attr { return On("click") }

// OnDblClick listens for the dblclick event.
func OnDblClick() Attr { return On("dblclick") }

// OnInput listens for the input event.
func OnInput() Attr { return On("input") }

// OnChange listens for the change event.
func OnChange() Attr { return On("change") }

// OnSubmit listens for the submit event.
func OnSubmit() Attr { return On("submit") }

// OnKeydown listens for the keydown event.
func OnKeydown() Attr { return On("keydown") }

// OnKeyup listens for the keyup event.
func OnKeyup() Attr { return On("keyup") }

// OnKeypress listens for the keypress event.
func OnKeypress() Attr { return On("keypress") }

// OnFocus listens for the focus event.
func OnFocus() Attr { return On("focus") }

// OnBlur listens for the blur event.
func OnBlur() Attr { return On("blur") }

// OnMouseenter listens for the mouseenter event.
func OnMouseenter() Attr { return On("mouseenter") }

// OnMouseleave listens for the mouseleave event.
func OnMouseleave() Attr { return On("mouseleave") }

// OnMouseover listens for the mouseover event.
func OnMouseover() Attr { return On("mouseover") }

// OnMouseout listens for the mouseout event.
func OnMouseout() Attr { return On("mouseout") }

// OnScroll listens for the scroll event.
func OnScroll() Attr { return On("scroll") }

// OnResize listens for the resize event.
func OnResize() Attr { return On("resize") }

// OnLoad listens for the load event.
func OnLoad() Attr { return On("load") }
