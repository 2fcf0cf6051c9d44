package patterns

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/codequest/internal/entities"
)

var (
	// python `def name(` and go `func name(` / `func (r T) name(`
	definitionRe = regexp.MustCompile(`\bdef\s+(\w+)\s*\(|\bfunc\s+(?:\([^)]*\)\s*)?(\w+)\s*\(`)
	baseCaseRe   = regexp.MustCompile(`\bif\b[^\n]*[:{]\s*return\b`)
	loopBreakRe  = regexp.MustCompile(`(?s)\b(?:for|while)\b.*?\bbreak\b`)
	// matched against the text between a bracket and its partner
	listCompRe   = regexp.MustCompile(`(?s)\bfor\b.*\bin\b`)
	tryExceptRe  = regexp.MustCompile(`(?s)\btry\b.*?\bexcept\b`)
	whileRe      = regexp.MustCompile(`\bwhile\b[^\n]*:`)
)

// Lexical classifies code with regular expressions over the raw text
type Lexical struct{}

// NewLexical creates a lexical classifier
func NewLexical() *Lexical {
	return &Lexical{}
}

// Classify implements Classifier
func (l *Lexical) Classify(code string) entities.PatternFlags {
	return entities.PatternFlags{
		HasRecursion: hasRecursion(code),
		HasBaseCase:  baseCaseRe.MatchString(code),
		HasLoopBreak: loopBreakRe.MatchString(code),
		HasListComp:  hasListComp(code),
		HasTryExcept: tryExceptRe.MatchString(code),
		HasWhileLoop: whileRe.MatchString(code),
	}
}

// hasRecursion reports whether any defined function name appears as name( more than
// once, the definition included
func hasRecursion(code string) bool {
	for _, m := range definitionRe.FindAllStringSubmatch(code, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		if name == "" {
			continue
		}

		callRe := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\(`)
		if len(callRe.FindAllStringIndex(code, -1)) > 1 {
			return true
		}
	}
	return false
}

// HasTrySafetyNet is the coarse check used to soften self damage on failed runs: the
// text contains both a `try:` and an `except:` marker.
func HasTrySafetyNet(code string) bool {
	return strings.Contains(code, "try:") && strings.Contains(code, "except:")
}

// HasLoopConstruct reports whether the text contains a for or while construct
func HasLoopConstruct(code string) bool {
	return loopKeywordRe.MatchString(code)
}

var loopKeywordRe = regexp.MustCompile(`\b(?:for|while)\b`)

// hasListComp looks for a bracketed span containing "for ... in". Brackets are paired
// by depth so subscripts inside the comprehension don't end it early.
func hasListComp(code string) bool {
	for start := 0; start < len(code); start++ {
		if code[start] != '[' {
			continue
		}
		if end := closingBracket(code, start); end > 0 && listCompRe.MatchString(code[start+1:end]) {
			return true
		}
	}
	return false
}

// closingBracket returns the index of the ']' pairing with code[open], or -1
func closingBracket(code string, open int) int {
	depth := 0
	for i := open; i < len(code); i++ {
		switch code[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
