package yaegi

import (
	"regexp"
	"strings"
)

type chunkKind int

const (
	chunkStatement chunkKind = iota
	chunkImport
	chunkDecl
)

// chunk is one top level piece of a submission. Declarations are kept one per chunk
// so they can be replaced by name; consecutive statements are merged.
type chunk struct {
	kind chunkKind
	// key identifies a declaration, e.g. "func:total" or "func:Stack.Push"
	key string
	src string
	// imports holds normalized import specs for import chunks
	imports []string
}

var (
	funcKeyRe   = regexp.MustCompile(`^func\s+(?:\(\s*(?:\w+\s+)?\*?(\w+)[^)]*\)\s*)?(\w+)`)
	simpleKeyRe = regexp.MustCompile(`^(type|var|const)\s+(\w+)`)
	importSpec  = regexp.MustCompile(`(?:([\w.]+)\s+)?"([^"]+)"`)
)

var declKeywords = map[string]chunkKind{
	"import": chunkImport,
	"func":   chunkDecl,
	"type":   chunkDecl,
	"var":    chunkDecl,
	"const":  chunkDecl,
}

// splitChunks cuts gofmt shaped source at unindented lines. Lines starting with a
// closing brace or paren continue the previous chunk. A package clause is dropped.
func splitChunks(code string) []chunk {
	var (
		out     []chunk
		current *chunk
		lines   []string
	)

	flush := func() {
		if current == nil {
			return
		}
		current.src = strings.TrimRight(strings.Join(lines, "\n"), "\n")
		if current.kind == chunkImport {
			current.imports = parseImports(current.src)
		}
		if strings.TrimSpace(current.src) != "" {
			out = append(out, *current)
		}
		current = nil
		lines = nil
	}

	for _, line := range strings.Split(code, "\n") {
		if startsTopLevel(line) {
			word := firstWord(line)
			if word == "package" {
				flush()
				continue
			}

			kind, isDecl := declKeywords[word]
			if !isDecl {
				kind = chunkStatement
			}
			if current == nil || kind != chunkStatement || current.kind != chunkStatement {
				flush()
				current = &chunk{kind: kind, key: declKey(line)}
			}
		} else if current == nil {
			current = &chunk{kind: chunkStatement}
		}
		lines = append(lines, line)
	}
	flush()

	return out
}

func startsTopLevel(line string) bool {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return false
	}
	return !strings.HasPrefix(line, "}") && !strings.HasPrefix(line, ")") && !strings.HasPrefix(line, "//")
}

func firstWord(line string) string {
	end := strings.IndexFunc(line, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	if end < 0 {
		return line
	}
	return line[:end]
}

func declKey(line string) string {
	if m := funcKeyRe.FindStringSubmatch(line); m != nil {
		if m[1] != "" {
			return "func:" + m[1] + "." + m[2]
		}
		return "func:" + m[2]
	}
	if m := simpleKeyRe.FindStringSubmatch(line); m != nil {
		return m[1] + ":" + m[2]
	}
	// grouped var/const/type blocks are never replaced
	return ""
}

func parseImports(src string) []string {
	src = strings.TrimPrefix(strings.TrimSpace(src), "import")

	var specs []string
	for _, m := range importSpec.FindAllStringSubmatch(src, -1) {
		if m[1] != "" {
			specs = append(specs, m[1]+` "`+m[2]+`"`)
			continue
		}
		specs = append(specs, `"`+m[2]+`"`)
	}
	return specs
}

// importPath extracts the path from a normalized spec
func importPath(spec string) string {
	if m := importSpec.FindStringSubmatch(spec); m != nil {
		return m[2]
	}
	return spec
}
