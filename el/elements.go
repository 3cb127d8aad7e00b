// Tag constructors. Each builds a jsx.Element for the matching HTML tag.
package el

// Document structure
func Html(args ...any) *Element    { return New("html", args...) }
func Head(args ...any) *Element    { return New("head", args...) }
func Body(args ...any) *Element    { return New("body", args...) }
func Title(args ...any) *Element   { return New("title", args...) }
func Meta(args ...any) *Element    { return New("meta", args...) }
func LinkEl(args ...any) *Element  { return New("link", args...) }
func Base(args ...any) *Element    { return New("base", args...) }
func Script(args ...any) *Element  { return New("script", args...) }
func StyleEl(args ...any) *Element { return New("style", args...) }

// Sections
func Header(args ...any) *Element  { return New("header", args...) }
func Footer(args ...any) *Element  { return New("footer", args...) }
func Main(args ...any) *Element    { return New("main", args...) }
func Nav(args ...any) *Element     { return New("nav", args...) }
func Section(args ...any) *Element { return New("section", args...) }
func Article(args ...any) *Element { return New("article", args...) }
func Aside(args ...any) *Element   { return New("aside", args...) }
func H1(args ...any) *Element      { return New("h1", args...) }
func H2(args ...any) *Element      { return New("h2", args...) }
func H3(args ...any) *Element      { return New("h3", args...) }
func H4(args ...any) *Element      { return New("h4", args...) }
func H5(args ...any) *Element      { return New("h5", args...) }
func H6(args ...any) *Element      { return New("h6", args...) }

// Grouping
func Div(args ...any) *Element        { return New("div", args...) }
func P(args ...any) *Element          { return New("p", args...) }
func Pre(args ...any) *Element        { return New("pre", args...) }
func Blockquote(args ...any) *Element { return New("blockquote", args...) }
func Ol(args ...any) *Element         { return New("ol", args...) }
func Ul(args ...any) *Element         { return New("ul", args...) }
func Li(args ...any) *Element         { return New("li", args...) }
func Dl(args ...any) *Element         { return New("dl", args...) }
func Dt(args ...any) *Element         { return New("dt", args...) }
func Dd(args ...any) *Element         { return New("dd", args...) }
func Figure(args ...any) *Element     { return New("figure", args...) }
func Figcaption(args ...any) *Element { return New("figcaption", args...) }
func Hr(args ...any) *Element         { return New("hr", args...) }

// Text-level
func A_(args ...any) *Element     { return New("a", args...) }
func Span(args ...any) *Element   { return New("span", args...) }
func Em(args ...any) *Element     { return New("em", args...) }
func Strong(args ...any) *Element { return New("strong", args...) }
func Small(args ...any) *Element  { return New("small", args...) }
func Code(args ...any) *Element   { return New("code", args...) }
func Kbd(args ...any) *Element    { return New("kbd", args...) }
func Sub(args ...any) *Element    { return New("sub", args...) }
func Sup(args ...any) *Element    { return New("sup", args...) }
func B(args ...any) *Element      { return New("b", args...) }
func I(args ...any) *Element      { return New("i", args...) }
func U(args ...any) *Element      { return New("u", args...) }
func Mark(args ...any) *Element   { return New("mark", args...) }
func Time(args ...any) *Element   { return New("time", args...) }
func Br(args ...any) *Element     { return New("br", args...) }
func Wbr(args ...any) *Element    { return New("wbr", args...) }

// Embedded content
func Img(args ...any) *Element    { return New("img", args...) }
func Iframe(args ...any) *Element { return New("iframe", args...) }
func Video(args ...any) *Element  { return New("video", args...) }
func Audio(args ...any) *Element  { return New("audio", args...) }
func Source(args ...any) *Element { return New("source", args...) }
func Canvas(args ...any) *Element { return New("canvas", args...) }
func Svg(args ...any) *Element    { return New("svg", args...) }

// Tables
func Table(args ...any) *Element   { return New("table", args...) }
func Thead(args ...any) *Element   { return New("thead", args...) }
func Tbody(args ...any) *Element   { return New("tbody", args...) }
func Tfoot(args ...any) *Element   { return New("tfoot", args...) }
func Tr(args ...any) *Element      { return New("tr", args...) }
func Th(args ...any) *Element      { return New("th", args...) }
func Td(args ...any) *Element      { return New("td", args...) }
func Caption(args ...any) *Element { return New("caption", args...) }

// Forms
func Form(args ...any) *Element     { return New("form", args...) }
func Label(args ...any) *Element    { return New("label", args...) }
func Input(args ...any) *Element    { return New("input", args...) }
func Button(args ...any) *Element   { return New("button", args...) }
func Select(args ...any) *Element   { return New("select", args...) }
func Option(args ...any) *Element   { return New("option", args...) }
func Optgroup(args ...any) *Element { return New("optgroup", args...) }
func Textarea(args ...any) *Element { return New("textarea", args...) }
func Fieldset(args ...any) *Element { return New("fieldset", args...) }
func Legend(args ...any) *Element   { return New("legend", args...) }
func Datalist(args ...any) *Element { return New("datalist", args...) }
func Output(args ...any) *Element   { return New("output", args...) }
func Progress(args ...any) *Element { return New("progress", args...) }
func Meter(args ...any) *Element    { return New("meter", args...) }

// Interactive
func Details(args ...any) *Element  { return New("details", args...) }
func Summary(args ...any) *Element  { return New("summary", args...) }
func Dialog(args ...any) *Element   { return New("dialog", args...) }
func Template(args ...any) *Element { return New("template", args...) }
func Slot(args ...any) *Element     { return New("slot", args...) }
