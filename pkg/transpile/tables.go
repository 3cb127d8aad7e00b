package transpile

import "strings"

// elementNames lists the el constructors that build plain HTML tags.
// The tag is the lowercase of the name except where noted in init.
var elementNames = []string{
	"Html", "Head", "Body", "Title", "Meta", "Base", "Script",
	"Header", "Footer", "Main", "Nav", "Section", "Article", "Aside",
	"H1", "H2", "H3", "H4", "H5", "H6",
	"Div", "P", "Pre", "Blockquote", "Ol", "Ul", "Li", "Dl", "Dt", "Dd",
	"Figure", "Figcaption", "Hr",
	"Span", "Em", "Strong", "Small", "Code", "Kbd", "Sub", "Sup",
	"B", "I", "U", "Mark", "Time", "Br", "Wbr",
	"Img", "Iframe", "Video", "Audio", "Source", "Canvas", "Svg",
	"Table", "Thead", "Tbody", "Tfoot", "Tr", "Th", "Td", "Caption",
	"Form", "Label", "Input", "Button", "Select", "Option", "Optgroup",
	"Textarea", "Fieldset", "Legend", "Datalist", "Output", "Progress",
	"Meter", "Details", "Summary", "Dialog", "Template", "Slot",
}

var elementTags = map[string]string{}

func init() {
	for _, name := range elementNames {
		elementTags[name] = strings.ToLower(name)
	}
	elementTags["A_"] = "a"
	elementTags["LinkEl"] = "link"
	elementTags["StyleEl"] = "style"
}

// attrKeys maps single-argument attribute helpers to their HTML key.
var attrKeys = map[string]string{
	"Class": "class", "ID": "id", "Href": "href", "Src": "src",
	"Alt": "alt", "Title_": "title", "Type": "type", "Name": "name",
	"Value": "value", "Placeholder": "placeholder", "Rel": "rel",
	"Target": "target", "Style": "style", "Lang": "lang",
	"Charset": "charset", "Content": "content", "Role": "role",
	"TabIndex": "tabindex", "Width": "width", "Height": "height",
	"For": "for", "Action": "action", "Method": "method",
	"Min": "min", "Max": "max", "Step": "step",
}

// boolAttrKeys maps zero-argument boolean attribute helpers.
var boolAttrKeys = map[string]string{
	"Checked": "checked", "Disabled": "disabled", "Selected": "selected",
	"Required": "required", "ReadOnly": "readonly",
	"Autofocus": "autofocus", "Multiple": "multiple",
	"Defer": "defer", "Async": "async",
}

// helperCalls maps el helpers to their client runtime counterparts.
var helperCalls = map[string]string{
	"Textf":    "Textf",
	"Raw":      "Raw",
	"Fragment": "F",
	"Nothing":  "Nothing",
	"If":       "If",
	"IfElse":   "IfElse",
	"When":     "When",
	"Range":    "Range",
	"Repeat":   "Repeat",
}

// reactiveCalls maps server reactive primitives to the client
// re-exports a transpiled module binds against.
var reactiveCalls = map[string]string{
	"NewSignal":    "State",
	"CreateEffect": "Effect",
	"NewDerived":   "DeriveFrom",
	"OnMount":      "OnMount",
	"OnCleanup":    "OnCleanup",
	"CSS":          "CSS",
	"Batch":        "Batch",
	"Untracked":    "Untracked",
}

// kebabCase converts an exported Go identifier to dash-separated
// lowercase: CounterButton becomes counter-button.
func kebabCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
