package alpx

import "testing"

func TestDirectives(t *testing.T) {
	tests := []struct {
		name   string
		attrs  map[string]any
		key    string
		expect any
	}{
		{"text", Text("count"), "x-text", "count"},
		{"html", HTML("body"), "x-html", "body"},
		{"show", Show("open"), "x-show", "open"},
		{"if", If("loaded"), "x-if", "loaded"},
		{"for", For("item in items"), "x-for", "item in items"},
		{"ref", Ref("field"), "x-ref", "field"},
		{"init", Init("load()"), "x-init", "load()"},
		{"effect", Effect("console.log(count)"), "x-effect", "console.log(count)"},
		{"teleport", Teleport("body"), "x-teleport", "body"},
		{"transition with expr", Transition("duration.500ms"), "x-transition", "duration.500ms"},
		{"transition default", Transition(""), "x-transition", ""},
		{"model", Model("email"), "x-model", "email"},
		{"custom directive hyphenated", X("custom_widget", "setup()"), "x-custom-widget", "setup()"},
		{"data with expression string", Data("dropdown"), "x-data", "dropdown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.attrs) != 1 {
				t.Fatalf("got %d entries, want 1", len(tt.attrs))
			}
			if got := tt.attrs[tt.key]; got != tt.expect {
				t.Errorf("attrs[%s] = %v, want %v", tt.key, got, tt.expect)
			}
		})
	}
}

func TestDataSerializesStructuredState(t *testing.T) {
	attrs := Data(Obj().Set("count", 0).Set("open", false))

	want := "{ count: 0, open: false }"
	if got := attrs["x-data"]; got != want {
		t.Errorf("attrs[x-data] = %v, want %q", got, want)
	}
}

func TestPresenceOnlyDirectives(t *testing.T) {
	for name, attrs := range map[string]map[string]any{
		"x-cloak":  Cloak(),
		"x-ignore": Ignore(),
	} {
		if got := attrs[name]; got != true {
			t.Errorf("attrs[%s] = %v, want boolean true sentinel", name, got)
		}
	}
}
