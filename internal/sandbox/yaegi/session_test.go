package yaegi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/codequest/internal/sandbox/yaegi"
)

type SessionTestSuite struct {
	suite.Suite
	session *yaegi.Session
	ctx     context.Context
}

func (s *SessionTestSuite) SetupTest() {
	var err error
	s.session, err = yaegi.NewSession(nil)
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *SessionTestSuite) TearDownTest() {
	s.Require().NoError(s.session.Close())
}

func (s *SessionTestSuite) TestCapturesStdout() {
	res, err := s.session.Execute(s.ctx, "import \"fmt\"\nfmt.Println(\"hello\")")
	s.Require().NoError(err)
	s.True(res.Success, res.Error)
	s.Equal("hello\n", res.Output)
}

func (s *SessionTestSuite) TestDeclarationsPersist() {
	_, err := s.session.Execute(s.ctx, "func double(x int) int { return x * 2 }")
	s.Require().NoError(err)

	res, err := s.session.Execute(s.ctx, "import \"fmt\"\nfmt.Println(double(21))")
	s.Require().NoError(err)
	s.True(res.Success, res.Error)
	s.Equal("42\n", res.Output)
}

func (s *SessionTestSuite) TestCompileErrorFailsSubmission() {
	res, err := s.session.Execute(s.ctx, "func broken( {")
	s.Require().NoError(err)
	s.False(res.Success)
	s.NotEmpty(res.Error)
}

func (s *SessionTestSuite) TestForbiddenImports() {
	testCases := []struct {
		name string
		code string
	}{
		{name: "single", code: "import \"os\"\nos.Exit(1)"},
		{name: "block", code: "import (\n\t\"fmt\"\n\t\"os/exec\"\n)"},
		{name: "aliased", code: "import sys \"syscall\""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			res, err := s.session.Execute(s.ctx, tc.code)
			s.Require().NoError(err)
			s.False(res.Success)
			s.Contains(res.Error, "forbidden imports")
		})
	}
}

func (s *SessionTestSuite) TestIndentedImportStillBlocked() {
	code := " import \"os\"\n" +
		"func readHost() string { b, _ := os.ReadFile(\"/etc/hostname\"); return \"read:\" + string(b) }\n" +
		"println(readHost())"

	res, err := s.session.Execute(s.ctx, code)
	s.Require().NoError(err)
	s.False(res.Success)
	s.NotContains(res.Output, "read:")

	res, err = s.session.Execute(s.ctx, "println(readHost())")
	s.Require().NoError(err)
	s.False(res.Success)
}

func (s *SessionTestSuite) TestResetDropsDeclarations() {
	_, err := s.session.Execute(s.ctx, "var secret = 7")
	s.Require().NoError(err)

	s.Require().NoError(s.session.Reset(s.ctx))

	res, err := s.session.Execute(s.ctx, "secret")
	s.Require().NoError(err)
	s.False(res.Success)
}

func (s *SessionTestSuite) TestRedeclarationReplacesEarlierDefinition() {
	_, err := s.session.Execute(s.ctx, "func answer() int { return 1 }")
	s.Require().NoError(err)

	res, err := s.session.Execute(s.ctx, "func answer() int { return 42 }")
	s.Require().NoError(err)
	s.True(res.Success, res.Error)

	res, err = s.session.Execute(s.ctx, "import \"fmt\"\nfmt.Println(answer())")
	s.Require().NoError(err)
	s.Equal("42\n", res.Output)
}

func (s *SessionTestSuite) TestMixedImportsDeclarationsAndStatements() {
	code := `import "fmt"

func total(nums []int) int {
	sum := 0
	for _, n := range nums {
		sum += n
	}
	return sum
}

if total([]int{1, 2, 3}) == 6 {
	fmt.Println("CORRECT")
} else {
	fmt.Println("WRONG")
}`

	res, err := s.session.Execute(s.ctx, code)
	s.Require().NoError(err)
	s.True(res.Success, res.Error)
	s.Equal("CORRECT\n", res.Output)
}

func (s *SessionTestSuite) TestClosedSession() {
	s.Require().NoError(s.session.Close())

	_, err := s.session.Execute(s.ctx, "x := 1")
	s.Error(err)
}

func (s *SessionTestSuite) TestCustomWhitelist() {
	session, err := yaegi.NewSession(&yaegi.Config{AllowedPackages: []string{"strings"}})
	s.Require().NoError(err)

	res, err := session.Execute(s.ctx, "import \"fmt\"")
	s.Require().NoError(err)
	s.False(res.Success)
	s.Contains(res.Error, "fmt")
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
