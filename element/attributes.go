package element

import "strings"

func attr(key string, value any) Attr { return Attr{Key: key, Value: value} }

// Identity attributes.

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute as a literal CSS string. Named to
// avoid colliding with the Style element constructor.
func StyleAttr(style string) Attr { return attr("style", style) }

// Style sets the style attribute from a property-to-value map, e.g.
// Style(map[string]string{"color": "red"}).
func Style(style map[string]string) Attr { return attr("style", style) }

// ClassName sets the class attribute, mirroring the className prop
// name JSX-interop authoring tooling emits.
func ClassName(classes ...string) Attr { return attr("className", strings.Join(classes, " ")) }

// Key sets the reconciliation key used to match list children across
// renders.
func Key(key string) Attr { return attr("key", key) }

// Ref attaches r so the reconciler assigns the live dom.Node into it
// once this element is mounted, and clears it on unmount.
func Ref(r any) Attr { return attr("ref", r) }

// Data attributes.

// Data creates a data-* attribute: Data("id", "123") sets data-id="123".
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes.

func Role(role string) Attr                { return attr("role", role) }
func AriaLabel(label string) Attr          { return attr("aria-label", label) }
func AriaHidden(hidden bool) Attr          { return attr("aria-hidden", hidden) }
func AriaExpanded(expanded bool) Attr      { return attr("aria-expanded", expanded) }
func AriaDescribedBy(id string) Attr       { return attr("aria-describedby", id) }
func AriaLabelledBy(id string) Attr        { return attr("aria-labelledby", id) }
func AriaLive(mode string) Attr            { return attr("aria-live", mode) }
func AriaControls(id string) Attr          { return attr("aria-controls", id) }
func AriaCurrent(value string) Attr        { return attr("aria-current", value) }
func AriaDisabled(disabled bool) Attr      { return attr("aria-disabled", disabled) }
func AriaChecked(checked bool) Attr        { return attr("aria-checked", checked) }
func AriaSelected(selected bool) Attr      { return attr("aria-selected", selected) }

// Form attributes.

func Type(t string) Attr             { return attr("type", t) }
func Name(name string) Attr          { return attr("name", name) }
func Value(value string) Attr        { return attr("value", value) }
func Placeholder(text string) Attr   { return attr("placeholder", text) }
func Disabled(disabled bool) Attr    { return attr("disabled", disabled) }
func ReadOnly(readonly bool) Attr    { return attr("readonly", readonly) }
func Required(required bool) Attr    { return attr("required", required) }
func Checked(checked bool) Attr      { return attr("checked", checked) }
func Selected(selected bool) Attr    { return attr("selected", selected) }
func Multiple(multiple bool) Attr    { return attr("multiple", multiple) }
func Autofocus(autofocus bool) Attr  { return attr("autofocus", autofocus) }
func MaxLength(n int) Attr           { return attr("maxlength", n) }
func MinLength(n int) Attr           { return attr("minlength", n) }
func Min(v string) Attr              { return attr("min", v) }
func Max(v string) Attr              { return attr("max", v) }
func Step(v string) Attr             { return attr("step", v) }
func Pattern(pattern string) Attr    { return attr("pattern", pattern) }
func For(id string) Attr             { return attr("for", id) }
// FormAttr sets the form attribute, distinct from the Form element
// constructor in html.go.
func FormAttr(id string) Attr        { return attr("form", id) }
func Autocomplete(mode string) Attr  { return attr("autocomplete", mode) }

// Link/media attributes.

func Href(href string) Attr     { return attr("href", href) }
func Target(target string) Attr { return attr("target", target) }
func Rel(rel string) Attr       { return attr("rel", rel) }
func Src(src string) Attr       { return attr("src", src) }
func Alt(alt string) Attr       { return attr("alt", alt) }
func Width(w int) Attr          { return attr("width", w) }
func Height(h int) Attr         { return attr("height", h) }
func Loading(mode string) Attr  { return attr("loading", mode) }

// Table attributes.

func Colspan(n int) Attr { return attr("colspan", n) }
func Rowspan(n int) Attr { return attr("rowspan", n) }

// Tabindex sets the tabindex attribute.
func Tabindex(n int) Attr { return attr("tabindex", n) }

// TitleAttr sets the (tooltip) title attribute, distinct from the Title
// element constructor in html.go.
func TitleAttr(title string) Attr { return attr("title", title) }
