// Package patterns detects structural features in submitted code.
//
// Two classifiers share one interface. Lexical is a fast text scan that accepts false
// positives on adversarial input. Syntax walks a tree-sitter parse of Python source.
// Combat resolution only depends on the Classifier contract, so either can be swapped in.
package patterns

import (
	"github.com/KirkDiggler/codequest/internal/entities"
)

//go:generate mockgen -destination=mock/mock_classifier.go -package=patternsmock github.com/KirkDiggler/codequest/internal/engine/patterns Classifier

// Classifier turns a code submission into pattern flags. Implementations are pure.
type Classifier interface {
	Classify(code string) entities.PatternFlags
}

// Kind names a classifier implementation in configuration
type Kind string

// Classifier kinds
const (
	KindLexical Kind = "lexical"
	KindSyntax  Kind = "syntax"
)

// New returns the classifier for a kind, defaulting to Lexical
func New(kind Kind) Classifier {
	if kind == KindSyntax {
		return NewSyntax()
	}
	return NewLexical()
}
