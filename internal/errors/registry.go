package errors

type template struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry holds every stable error code.
//
// V1xx config, V2xx build, V3xx transpile, V4xx render, V5xx live.
var registry = map[string]template{
	"V100": {
		Category:   CategoryConfig,
		Message:    "velta.json not found",
		Suggestion: "run 'velta init' or create velta.json in the project root",
	},
	"V101": {
		Category:   CategoryConfig,
		Message:    "velta.json is not valid JSON",
		Suggestion: "check the file for trailing commas or unquoted keys",
	},
	"V102": {
		Category: CategoryConfig,
		Message:  "invalid configuration value",
	},

	"V200": {
		Category: CategoryBuild,
		Message:  "could not prepare the output directory",
	},
	"V201": {
		Category: CategoryBuild,
		Message:  "copying static assets failed",
	},
	"V202": {
		Category: CategoryBuild,
		Message:  "compressing asset failed",
	},
	"V203": {
		Category: CategoryBuild,
		Message:  "writing the asset manifest failed",
	},
	"V204": {
		Category:   CategoryBuild,
		Message:    "publishing to S3 failed",
		Suggestion: "check bucket name, region and credentials",
	},

	"V300": {
		Category:   CategoryTranspile,
		Message:    "component source does not parse",
		Suggestion: "the transpiler needs valid Go source; run gofmt on the component",
	},
	"V301": {
		Category: CategoryTranspile,
		Message:  "component uses a server-only construct",
	},

	"V400": {
		Category: CategoryRender,
		Message:  "page render failed",
	},

	"V500": {
		Category: CategoryLive,
		Message:  "live channel frame could not be encoded",
	},
	"V501": {
		Category: CategoryLive,
		Message:  "live channel frame could not be decoded",
	},
}
