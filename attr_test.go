package alpx

import "testing"

func TestAttrKey(t *testing.T) {
	tests := []struct {
		name   string
		attr   Attr
		expect string
	}{
		{"plain event", OnClick(), "@click"},
		{"event with modifier", OnClick().Prevent(), "@click.prevent"},
		{"modifier order preserved", OnClick().Prevent().Stop().Once(), "@click.prevent.stop.once"},
		{"key chord", OnKeydown().Ctrl().Enter(), "@keydown.ctrl.enter"},
		{"window scope", OnKeydown().Escape().Window(), "@keydown.escape.window"},
		{"custom event hyphenated", On("refresh_feed"), "@refresh-feed"},
		{"raw event untouched", OnRaw("ns.custom"), "@ns.custom"},
		{"custom modifier hyphenated", OnClick().Mod("camel_case"), "@click.camel-case"},
		{"duplicate modifiers kept", OnClick().Mod("stop", "stop"), "@click.stop.stop"},
		{"debounce", OnInput().Debounce(300), "@input.debounce.300ms"},
		{"throttle", OnScroll().Throttle(500), "@scroll.throttle.500ms"},
		{"debounce is permissive", OnInput().Debounce(-5), "@input.debounce.-5ms"},
		{"bound attribute", BindClass(), "x-bind:class"},
		{"custom binding hyphenated", Bind("aria_expanded"), "x-bind:aria-expanded"},
		{"raw binding untouched", BindRaw("data-x.y"), "x-bind:data-x.y"},
		{"model modifier drops empty base", ModelNumber(), "x-model.number"},
		{"model lazy", ModelLazy(), "x-model.lazy"},
		{"model trim", ModelTrim(), "x-model.trim"},
		{"model debounce", ModelDebounce(300), "x-model.debounce.300ms"},
		{"model throttle", ModelThrottle(100), "x-model.throttle.100ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.Key(); got != tt.expect {
				t.Errorf("Key() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestAttrsRendersSingleEntry(t *testing.T) {
	attrs := OnSubmit().Prevent().Attrs("send()")

	if len(attrs) != 1 {
		t.Fatalf("Attrs() produced %d entries, want 1", len(attrs))
	}
	if got := attrs["@submit.prevent"]; got != "send()" {
		t.Errorf("attrs[@submit.prevent] = %v, want %q", got, "send()")
	}
}

func TestAttrsValueUnmodified(t *testing.T) {
	// The value passes through verbatim - escaping belongs to the
	// HTML serializer consuming the map.
	attrs := OnClick().Attrs(`alert("<hi>")`)

	if got := attrs["@click"]; got != `alert("<hi>")` {
		t.Errorf("attrs[@click] = %v, want value unmodified", got)
	}
}

func TestChainingIsNonDestructive(t *testing.T) {
	base := OnKeydown().Ctrl()

	save := base.Enter()
	quit := base.Escape()

	if got := base.Key(); got != "@keydown.ctrl" {
		t.Errorf("base mutated by forked chains: Key() = %q", got)
	}
	if got := save.Key(); got != "@keydown.ctrl.enter" {
		t.Errorf("save.Key() = %q, want %q", got, "@keydown.ctrl.enter")
	}
	if got := quit.Key(); got != "@keydown.ctrl.escape" {
		t.Errorf("quit.Key() = %q, want %q", got, "@keydown.ctrl.escape")
	}
}

func TestModDoesNotShareBackingArray(t *testing.T) {
	base := OnClick().Mod("a")

	b1 := base.Mod("b")
	b2 := base.Mod("c")

	if got := b1.Key(); got != "@click.a.b" {
		t.Errorf("b1.Key() = %q, want %q", got, "@click.a.b")
	}
	if got := b2.Key(); got != "@click.a.c" {
		t.Errorf("b2.Key() = %q, want %q", got, "@click.a.c")
	}
}

func TestMerge(t *testing.T) {
	merged := Merge(
		Data("widget"),
		OnClick().Attrs("open = !open"),
		Data("override"),
	)

	if len(merged) != 2 {
		t.Fatalf("Merge() produced %d entries, want 2", len(merged))
	}
	if got := merged["x-data"]; got != "override" {
		t.Errorf("merged[x-data] = %v, want later map to win", got)
	}
	if got := merged["@click"]; got != "open = !open" {
		t.Errorf("merged[@click] = %v, want %q", got, "open = !open")
	}
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	first := Data("a")
	second := Data("b")

	Merge(first, second)

	if got := first["x-data"]; got != "a" {
		t.Errorf("Merge modified its input: %v", got)
	}
}

func TestMergeEmpty(t *testing.T) {
	merged := Merge()
	if len(merged) != 0 {
		t.Errorf("Merge() with no inputs produced %d entries, want 0", len(merged))
	}
}
