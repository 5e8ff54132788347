package alpx

// Bind returns a builder for a bound attribute (x-bind:name).
//
// The name is converted from underscore form to hyphen form, so any
// attribute can be bound without enumeration:
//
//	alpx.Bind("aria_expanded").Attrs("open")  // x-bind:aria-expanded
func Bind(name string) Attr {
	return Attr{prefix: "x-bind:", base: hyphenate(name)}
}

// BindRaw returns a bound-attribute builder using the name exactly as
// given, with no hyphenation.
func BindRaw(name string) Attr {
	return Attr{prefix: "x-bind:", base: name}
}

// BindClass binds the class attribute.
func BindClass() Attr { return Bind("class") }

// BindStyle binds the style attribute.
func BindStyle() Attr { return Bind("style") }

// BindHref binds the href attribute.
func BindHref() Attr { return Bind("href") }

// BindSrc binds the src attribute.
func BindSrc() Attr { return Bind("src") }

// BindValue binds the value attribute.
func BindValue() Attr { return Bind("value") }

// BindDisabled binds the disabled attribute.
func BindDisabled() Attr { return Bind("disabled") }

// BindChecked binds the checked attribute.
func BindChecked() Attr { return Bind("checked") }

// BindSelected binds the selected attribute.
func BindSelected() Attr { return Bind("selected") }

// BindReadonly binds the readonly attribute.
func BindReadonly() Attr { return Bind("readonly") }
