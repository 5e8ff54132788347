package alpx

import "github.com/a-h/templ"

// Merge unions several attribute maps into one.
//
// Later maps win on key collision, so overrides read left to right:
//
//	alpx.Merge(
//	    alpx.Data(alpx.Obj().Set("open", false)),
//	    alpx.OnClick().Attrs("open = !open"),
//	    alpx.OnClick().Outside().Attrs("open = false"),
//	)
//
// The result is a fresh map; the inputs are not modified.
func Merge(maps ...templ.Attributes) templ.Attributes {
	merged := templ.Attributes{}
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
