package patterns

import (
	"context"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/KirkDiggler/codequest/internal/entities"
)

// Syntax classifies Python source by walking its tree-sitter syntax tree. Code that
// does not parse cleanly still yields flags for the parts tree-sitter recovered.
type Syntax struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// NewSyntax creates a tree-sitter backed classifier
func NewSyntax() *Syntax {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	return &Syntax{parser: parser}
}

// Classify implements Classifier
func (s *Syntax) Classify(code string) entities.PatternFlags {
	src := []byte(code)

	s.mu.Lock()
	tree, err := s.parser.ParseCtx(context.Background(), nil, src)
	s.mu.Unlock()
	if err != nil {
		return entities.PatternFlags{}
	}
	defer tree.Close()

	w := &walker{src: src}
	w.walk(tree.RootNode(), "")
	return w.flags
}

type walker struct {
	src   []byte
	flags entities.PatternFlags
}

func (w *walker) text(n *sitter.Node) string {
	return string(w.src[n.StartByte():n.EndByte()])
}

// walk visits n; fn is the name of the innermost enclosing function definition
func (w *walker) walk(n *sitter.Node, fn string) {
	switch n.Type() {
	case "function_definition":
		if name := n.ChildByFieldName("name"); name != nil {
			fn = w.text(name)
		}
	case "call":
		if fn != "" {
			if callee := n.ChildByFieldName("function"); callee != nil &&
				callee.Type() == "identifier" && w.text(callee) == fn {
				w.flags.HasRecursion = true
			}
		}
	case "if_statement":
		if body := n.ChildByFieldName("consequence"); body != nil && hasDirectChild(body, "return_statement") {
			w.flags.HasBaseCase = true
		}
	case "for_statement", "while_statement":
		if n.Type() == "while_statement" {
			w.flags.HasWhileLoop = true
		}
		if body := n.ChildByFieldName("body"); body != nil && containsBreak(body) {
			w.flags.HasLoopBreak = true
		}
	case "list_comprehension":
		w.flags.HasListComp = true
	case "try_statement":
		if hasDirectChild(n, "except_clause") {
			w.flags.HasTryExcept = true
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		w.walk(n.NamedChild(i), fn)
	}
}

func hasDirectChild(n *sitter.Node, nodeType string) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == nodeType {
			return true
		}
	}
	return false
}

// containsBreak looks for a break that belongs to the loop owning n, so nested loops
// and function definitions are not descended into
func containsBreak(n *sitter.Node) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "break_statement":
			return true
		case "for_statement", "while_statement", "function_definition", "class_definition":
			continue
		}
		if containsBreak(child) {
			return true
		}
	}
	return false
}
