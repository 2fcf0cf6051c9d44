package patterns_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/codequest/internal/engine/patterns"
	"github.com/KirkDiggler/codequest/internal/entities"
)

const (
	factorialSrc = `def factorial(n):
    if n <= 1:
        return 1
    return n * factorial(n - 1)
`
	searchSrc = `def first_negative(nums):
    for n in nums:
        if n < 0:
            found = n
            break
    return found
`
	squaresSrc = `def squares(n):
    return [i * i for i in range(n)]
`
	safeDivideSrc = `def safe_divide(a, b):
    try:
        return a / b
    except ZeroDivisionError:
        return None
`
	countdownSrc = `def countdown(n):
    while n > 0:
        n -= 1
    return n
`
	plainSrc = `x = 1
print(x + 2)
`
)

type ClassifierTestSuite struct {
	suite.Suite
}

type classifyCase struct {
	name string
	code string
	want entities.PatternFlags
}

// cases both classifiers agree on
func sharedCases() []classifyCase {
	return []classifyCase{
		{
			name: "recursion with base case",
			code: factorialSrc,
			want: entities.PatternFlags{HasRecursion: true, HasBaseCase: true},
		},
		{
			name: "loop with break",
			code: searchSrc,
			want: entities.PatternFlags{HasLoopBreak: true},
		},
		{
			name: "list comprehension",
			code: squaresSrc,
			want: entities.PatternFlags{HasListComp: true},
		},
		{
			name: "list comprehension with subscript",
			code: "firsts = [row[0] for row in grid]\n",
			want: entities.PatternFlags{HasListComp: true},
		},
		{
			name: "try except",
			code: safeDivideSrc,
			want: entities.PatternFlags{HasTryExcept: true},
		},
		{
			name: "while loop",
			code: countdownSrc,
			want: entities.PatternFlags{HasWhileLoop: true},
		},
		{
			name: "nothing detected",
			code: plainSrc,
			want: entities.PatternFlags{},
		},
		{
			name: "definition alone is not recursion",
			code: "def helper(x):\n    return x * 2\n",
			want: entities.PatternFlags{},
		},
	}
}

func (s *ClassifierTestSuite) TestLexical() {
	c := patterns.NewLexical()
	for _, tc := range sharedCases() {
		s.Run(tc.name, func() {
			s.Equal(tc.want, c.Classify(tc.code))
		})
	}
}

func (s *ClassifierTestSuite) TestSyntax() {
	c := patterns.NewSyntax()
	for _, tc := range sharedCases() {
		s.Run(tc.name, func() {
			s.Equal(tc.want, c.Classify(tc.code))
		})
	}
}

func (s *ClassifierTestSuite) TestLexicalGoRecursion() {
	code := `func fib(n int) int {
	if n < 2 { return n }
	return fib(n-1) + fib(n-2)
}`
	flags := patterns.NewLexical().Classify(code)
	s.True(flags.HasRecursion)
	s.True(flags.HasBaseCase)
}

func (s *ClassifierTestSuite) TestLexicalListCompBrackets() {
	testCases := []struct {
		name string
		code string
		want bool
	}{
		{name: "nested subscripts", code: "cells = [grid[r][c] for r in rows]", want: true},
		{name: "nested comprehension", code: "m = [[0 for _ in row] for row in grid]", want: true},
		{name: "list then loop", code: "a = [1]\nfor x in xs:\n    print(b[0])", want: false},
		{name: "unclosed bracket", code: "a = [x for x in", want: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, patterns.NewLexical().Classify(tc.code).HasListComp)
		})
	}
}

func (s *ClassifierTestSuite) TestLexicalAcceptsFalsePositives() {
	// the text scan has no notion of strings or comments
	flags := patterns.NewLexical().Classify(`msg = "try this, except that"`)
	s.True(flags.HasTryExcept)

	flags = patterns.NewSyntax().Classify(`msg = "try this, except that"`)
	s.False(flags.HasTryExcept)
}

func (s *ClassifierTestSuite) TestSyntaxIgnoresBreakInNestedFunction() {
	code := `for x in xs:
    def inner():
        while True:
            break
    inner()
`
	flags := patterns.NewSyntax().Classify(code)
	s.True(flags.HasWhileLoop)
	// the inner while owns the break
	s.True(flags.HasLoopBreak)

	code = `for x in xs:
    def inner():
        pass
`
	s.False(patterns.NewSyntax().Classify(code).HasLoopBreak)
}

func (s *ClassifierTestSuite) TestNew() {
	s.IsType(&patterns.Lexical{}, patterns.New(patterns.KindLexical))
	s.IsType(&patterns.Syntax{}, patterns.New(patterns.KindSyntax))
	s.IsType(&patterns.Lexical{}, patterns.New(""))
}

func (s *ClassifierTestSuite) TestSafetyNet() {
	s.True(patterns.HasTrySafetyNet("try:\n  x()\nexcept:\n  pass"))
	s.False(patterns.HasTrySafetyNet("try:\n  x()\nexcept ValueError:\n  pass"))
	s.False(patterns.HasTrySafetyNet("x()"))
}

func (s *ClassifierTestSuite) TestLoopConstruct() {
	s.True(patterns.HasLoopConstruct("for i in x: pass"))
	s.True(patterns.HasLoopConstruct("while True: pass"))
	s.False(patterns.HasLoopConstruct("formula = 1"))
}

func TestClassifierTestSuite(t *testing.T) {
	suite.Run(t, new(ClassifierTestSuite))
}
