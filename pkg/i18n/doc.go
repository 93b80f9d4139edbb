// Package i18n provides message localization backed by YAML or JSON
// translation files.
//
// Translations are grouped per language and addressed with dot separated
// keys. A Bundle is loaded once from a Source and is safe for concurrent
// reads afterwards.
//
//	bundle, err := i18n.New(ctx, i18n.Map(map[string]map[string]any{
//		"en": {
//			"greeting": "Hello, %{name}!",
//			"apples": map[string]any{
//				"zero":  "no apples",
//				"one":   "one apple",
//				"other": "%{count} apples",
//			},
//		},
//	}))
//
//	bundle.T("en", "greeting", "name", "World") // "Hello, World!"
//	bundle.N("en", "apples", 3)                 // "3 apples"
//
// Translation files map a language code to a tree of messages:
//
//	en:
//	  greeting: "Hello, %{name}!"
//	  menu:
//	    file: File
//	nl:
//	  greeting: "Hallo, %{name}!"
//
// Values are substituted into %{param} placeholders by name. Placeholders
// without a matching parameter are left untouched.
package i18n
