package vdom

import "strings"

// attr creates an attribute with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Attribute creates an arbitrary attribute. value may be a reactive.Node.
func Attribute(key string, value any) Attr { return attr(key, value) }

// Global attributes

// ID sets the element id.
func ID(id any) Attr { return attr("id", id) }

// Class sets the class attribute. Multiple static classes are joined
// with spaces; a single argument may be a reactive.Node.
func Class(classes ...any) Attr {
	if len(classes) == 1 {
		return attr("class", classes[0])
	}
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if s := Stringify(c); s != "" {
			parts = append(parts, s)
		}
	}
	return attr("class", strings.Join(parts, " "))
}

// Style sets the inline style attribute.
func Style(style any) Attr { return attr("style", style) }

// Data sets a data-* attribute.
func Data(key string, value any) Attr { return attr("data-"+key, value) }

// TitleAttr sets the title attribute (tooltip).
func TitleAttr(title any) Attr { return attr("title", title) }

// Hidden hides the element while v is truthy.
func Hidden(v any) Attr { return attr("hidden", v) }

// Role sets the ARIA role.
func Role(role string) Attr { return attr("role", role) }

// ARIA attributes. Booleans render as "true" or "false".

func AriaLabel(label any) Attr       { return attr("aria-label", label) }
func AriaHidden(hidden any) Attr     { return attr("aria-hidden", hidden) }
func AriaExpanded(expanded any) Attr { return attr("aria-expanded", expanded) }
func AriaDisabled(disabled any) Attr { return attr("aria-disabled", disabled) }
func AriaSelected(selected any) Attr { return attr("aria-selected", selected) }
func AriaModal(modal any) Attr       { return attr("aria-modal", modal) }
func AriaBusy(busy any) Attr         { return attr("aria-busy", busy) }
func AriaLive(mode string) Attr      { return attr("aria-live", mode) }

// Link attributes

func Href(url any) Attr       { return attr("href", url) }
func Target(target string) Attr { return attr("target", target) }
func Rel(rel string) Attr     { return attr("rel", rel) }

// Form attributes

func Name(name string) Attr        { return attr("name", name) }
func Type(t string) Attr           { return attr("type", t) }
func Placeholder(text any) Attr    { return attr("placeholder", text) }
func For(id string) Attr           { return attr("for", id) }
func Min(value any) Attr           { return attr("min", value) }
func Max(value any) Attr           { return attr("max", value) }
func Step(value any) Attr          { return attr("step", value) }
func FormAction(url string) Attr   { return attr("formaction", url) }
func FormMethod(method string) Attr { return attr("formmethod", method) }

// Value sets the value. It is applied as a host property so that it
// tracks what the user typed.
func Value(value any) Attr { return attr("value", value) }

// Checked sets the checked state as a host property.
func Checked(v any) Attr { return attr("checked", v) }

// Selected sets the selected state as a host property.
func Selected(v any) Attr { return attr("selected", v) }

// Boolean attributes, present while v is truthy.

func Disabled(v any) Attr  { return attr("disabled", v) }
func Readonly(v any) Attr  { return attr("readonly", v) }
func Required(v any) Attr  { return attr("required", v) }
func Multiple(v any) Attr  { return attr("multiple", v) }
func Autofocus(v any) Attr { return attr("autofocus", v) }

// Media attributes

func Src(url any) Attr { return attr("src", url) }
func Alt(text any) Attr { return attr("alt", text) }

// booleanAttrs are attributes that don't need a value.
// When true, they're set as just the attribute name.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"itemscope":       true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"nomodule":        true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr returns true if the attribute is a boolean attribute.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// propertyAttrs are applied as host properties rather than attributes.
var propertyAttrs = map[string]bool{
	"value":    true,
	"checked":  true,
	"selected": true,
}

// IsPropertyAttr returns true if the attribute is set as a host property.
func IsPropertyAttr(name string) bool {
	return propertyAttrs[name]
}
