package frontend

import (
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
)

// DefaultStandard is the language standard used when none is configured.
// Matches the front-end arguments the tool has always passed.
const DefaultStandard = "c++11"

// stdToLanguage maps language standard revisions to grammar names.
var stdToLanguage = map[string]string{
	"c89":   "c",
	"c99":   "c",
	"c11":   "c",
	"c17":   "c",
	"c++03": "cpp",
	"c++11": "cpp",
	"c++14": "cpp",
	"c++17": "cpp",
	"c++20": "cpp",
}

// langToGrammar maps grammar names to tree-sitter Language objects.
// Lazily initialized on first call via sync.Once.
var (
	langToGrammar map[string]*sitter.Language
	grammarsOnce  sync.Once
)

func initGrammars() {
	grammarsOnce.Do(func() {
		langToGrammar = map[string]*sitter.Language{
			"c":   c.GetLanguage(),
			"cpp": cpp.GetLanguage(),
		}
	})
}

// GrammarForStandard returns the tree-sitter Language for a language
// standard revision such as "c99" or "c++11". Returns (nil, false) if the
// standard is not recognized.
func GrammarForStandard(std string) (*sitter.Language, bool) {
	initGrammars()
	lang, ok := stdToLanguage[std]
	if !ok {
		return nil, false
	}
	return langToGrammar[lang], true
}
