package output

import "github.com/temirov/codeclip/internal/filter"

// fenceLanguages maps lower-case file extensions to Markdown fence info strings.
var fenceLanguages = map[string]string{
	"bash":       "bash",
	"c":          "c",
	"cc":         "cpp",
	"cfg":        "ini",
	"clj":        "clojure",
	"cpp":        "cpp",
	"cs":         "csharp",
	"css":        "css",
	"dart":       "dart",
	"dockerfile": "dockerfile",
	"ex":         "elixir",
	"exs":        "elixir",
	"go":         "go",
	"gradle":     "groovy",
	"h":          "c",
	"hpp":        "cpp",
	"hs":         "haskell",
	"html":       "html",
	"ini":        "ini",
	"java":       "java",
	"js":         "javascript",
	"json":       "json",
	"jsx":        "jsx",
	"kt":         "kotlin",
	"kts":        "kotlin",
	"lua":        "lua",
	"m":          "objectivec",
	"md":         "markdown",
	"mjs":        "javascript",
	"php":        "php",
	"pl":         "perl",
	"proto":      "protobuf",
	"ps1":        "powershell",
	"py":         "python",
	"r":          "r",
	"rb":         "ruby",
	"rs":         "rust",
	"sass":       "sass",
	"scala":      "scala",
	"scss":       "scss",
	"sh":         "bash",
	"sql":        "sql",
	"svelte":     "svelte",
	"swift":      "swift",
	"tf":         "hcl",
	"toml":       "toml",
	"ts":         "typescript",
	"tsx":        "tsx",
	"vue":        "vue",
	"xml":        "xml",
	"yaml":       "yaml",
	"yml":        "yaml",
	"zig":        "zig",
	"zsh":        "bash",
}

// fenceLanguage returns the fence info string for fileName, or "" when the
// extension is unknown.
func fenceLanguage(fileName string) string {
	return fenceLanguages[filter.Extension(fileName)]
}
