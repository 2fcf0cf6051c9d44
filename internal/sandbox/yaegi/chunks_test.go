package yaegi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChunks(t *testing.T) {
	code := `package main

import (
	"fmt"
	str "strings"
)

// Stack is a stack
type Stack struct{ items []int }

func (s *Stack) Push(v int) { s.items = append(s.items, v) }

func total(nums []int) int {
	return 0
}

x := total(nil)
if x == 0 {
	fmt.Println(str.ToUpper("ok"))
} else {
	fmt.Println("no")
}
var y = 2`

	chunks := splitChunks(code)

	var kinds []chunkKind
	var keys []string
	for _, c := range chunks {
		kinds = append(kinds, c.kind)
		keys = append(keys, c.key)
	}

	assert.Equal(t, []chunkKind{chunkImport, chunkDecl, chunkDecl, chunkDecl, chunkStatement, chunkDecl}, kinds)
	assert.Equal(t, []string{"", "type:Stack", "func:Stack.Push", "func:total", "", "var:y"}, keys)

	require.Len(t, chunks[0].imports, 2)
	assert.Equal(t, `"fmt"`, chunks[0].imports[0])
	assert.Equal(t, `str "strings"`, chunks[0].imports[1])
	assert.Contains(t, chunks[4].src, "} else {")
}

func TestSplitChunksSingleImport(t *testing.T) {
	chunks := splitChunks(`import "fmt"`)
	require.Len(t, chunks, 1)
	assert.Equal(t, []string{`"fmt"`}, chunks[0].imports)
	assert.Equal(t, "fmt", importPath(chunks[0].imports[0]))
	assert.Equal(t, "strings", importPath(`str "strings"`))
}

func TestMergeImports(t *testing.T) {
	merged := mergeImports([]string{`"fmt"`}, []string{`"fmt"`, `"strings"`})
	assert.Equal(t, []string{`"fmt"`, `"strings"`}, merged)
}
