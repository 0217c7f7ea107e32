package element

// Document structure.

func Html(args ...any) Element  { return H("html", args...) }
func Head(args ...any) Element  { return H("head", args...) }
func Body(args ...any) Element  { return H("body", args...) }
func Title(args ...any) Element { return H("title", args...) }
func Meta(args ...any) Element  { return H("meta", args...) }
func Link(args ...any) Element  { return H("link", args...) }
func Base(args ...any) Element  { return H("base", args...) }

// Sectioning.

func Header(args ...any) Element  { return H("header", args...) }
func Footer(args ...any) Element  { return H("footer", args...) }
func Main(args ...any) Element    { return H("main", args...) }
func Nav(args ...any) Element     { return H("nav", args...) }
func Section(args ...any) Element { return H("section", args...) }
func Article(args ...any) Element { return H("article", args...) }
func Aside(args ...any) Element   { return H("aside", args...) }
func H1(args ...any) Element      { return H("h1", args...) }
func H2(args ...any) Element      { return H("h2", args...) }
func H3(args ...any) Element      { return H("h3", args...) }
func H4(args ...any) Element      { return H("h4", args...) }
func H5(args ...any) Element      { return H("h5", args...) }
func H6(args ...any) Element      { return H("h6", args...) }

// Text content.

func Div(args ...any) Element        { return H("div", args...) }
func P(args ...any) Element          { return H("p", args...) }
func Span(args ...any) Element       { return H("span", args...) }
func Pre(args ...any) Element        { return H("pre", args...) }
func Blockquote(args ...any) Element { return H("blockquote", args...) }
func Ul(args ...any) Element         { return H("ul", args...) }
func Ol(args ...any) Element         { return H("ol", args...) }
func Li(args ...any) Element         { return H("li", args...) }
func Dl(args ...any) Element         { return H("dl", args...) }
func Dt(args ...any) Element         { return H("dt", args...) }
func Dd(args ...any) Element         { return H("dd", args...) }
func Hr(args ...any) Element         { return H("hr", args...) }
func Figure(args ...any) Element     { return H("figure", args...) }
func Figcaption(args ...any) Element { return H("figcaption", args...) }

// Inline text.

func A(args ...any) Element      { return H("a", args...) }
func Strong(args ...any) Element { return H("strong", args...) }
func Em(args ...any) Element     { return H("em", args...) }
func B(args ...any) Element      { return H("b", args...) }
func I(args ...any) Element      { return H("i", args...) }
func U(args ...any) Element      { return H("u", args...) }
func Small(args ...any) Element  { return H("small", args...) }
func Mark(args ...any) Element   { return H("mark", args...) }
func Code(args ...any) Element   { return H("code", args...) }
func Br(args ...any) Element     { return H("br", args...) }
func Sub(args ...any) Element    { return H("sub", args...) }
func Sup(args ...any) Element    { return H("sup", args...) }
func Label(args ...any) Element  { return H("label", args...) }

// Forms.

func Form(args ...any) Element     { return H("form", args...) }
func Input(args ...any) Element    { return H("input", args...) }
func Textarea(args ...any) Element { return H("textarea", args...) }
func Button(args ...any) Element   { return H("button", args...) }
func Select(args ...any) Element   { return H("select", args...) }
func Optgroup(args ...any) Element { return H("optgroup", args...) }
func Option(args ...any) Element   { return H("option", args...) }
func Fieldset(args ...any) Element { return H("fieldset", args...) }
func Legend(args ...any) Element   { return H("legend", args...) }

// Tables.

func Table(args ...any) Element   { return H("table", args...) }
func Thead(args ...any) Element   { return H("thead", args...) }
func Tbody(args ...any) Element   { return H("tbody", args...) }
func Tfoot(args ...any) Element   { return H("tfoot", args...) }
func Tr(args ...any) Element      { return H("tr", args...) }
func Th(args ...any) Element      { return H("th", args...) }
func Td(args ...any) Element      { return H("td", args...) }
func Caption(args ...any) Element { return H("caption", args...) }

// Media and embedded content.

func Img(args ...any) Element    { return H("img", args...) }
func Audio(args ...any) Element  { return H("audio", args...) }
func Video(args ...any) Element  { return H("video", args...) }
func Source(args ...any) Element { return H("source", args...) }
func Canvas(args ...any) Element { return H("canvas", args...) }
func Svg(args ...any) Element    { return H("svg", args...) }
func Iframe(args ...any) Element { return H("iframe", args...) }

// void elements cannot have children; vtree.Build consults this and
// builds no children for these tags.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag is a void element per the HTML
// spec, i.e. one the reconciler must never try to give children.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}
