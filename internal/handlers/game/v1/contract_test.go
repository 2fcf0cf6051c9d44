package v1_test

import (
	"os"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	gamev1 "github.com/KirkDiggler/codequest/internal/handlers/game/v1"
)

const protoPath = "../../../../proto/codequest/v1/game.proto"

var (
	rpcRe     = regexp.MustCompile(`rpc\s+(\w+)\((\w+)\)\s+returns\s+\((\w+)\)`)
	messageRe = regexp.MustCompile(`message\s+(\w+)\s*\{([^}]*)\}`)
	fieldRe   = regexp.MustCompile(`(?m)^\s*(?:repeated\s+)?(?:map<[^>]+>|\w+)\s+(\w+)\s*=\s*\d+;`)
)

type rpcDecl struct {
	request  string
	response string
}

// ContractTestSuite keeps the service stubs in step with game.proto
type ContractTestSuite struct {
	suite.Suite
	rpcs     map[string]rpcDecl
	messages map[string][]string
}

func TestContractTestSuite(t *testing.T) {
	suite.Run(t, new(ContractTestSuite))
}

func (s *ContractTestSuite) SetupSuite() {
	data, err := os.ReadFile(protoPath)
	s.Require().NoError(err)
	src := string(data)

	s.rpcs = map[string]rpcDecl{}
	for _, m := range rpcRe.FindAllStringSubmatch(src, -1) {
		s.rpcs[m[1]] = rpcDecl{request: m[2], response: m[3]}
	}

	s.messages = map[string][]string{}
	for _, m := range messageRe.FindAllStringSubmatch(src, -1) {
		var fields []string
		for _, f := range fieldRe.FindAllStringSubmatch(m[2], -1) {
			fields = append(fields, f[1])
		}
		sort.Strings(fields)
		s.messages[m[1]] = fields
	}
}

func (s *ContractTestSuite) TestDescriptorListsEveryRPC() {
	var registered []string
	for _, m := range gamev1.GameServiceDesc.Methods {
		registered = append(registered, m.MethodName)
	}

	var declared []string
	for name := range s.rpcs {
		declared = append(declared, name)
	}

	s.ElementsMatch(declared, registered)
	s.Equal("codequest/v1/game.proto", gamev1.GameServiceDesc.Metadata)
}

func (s *ContractTestSuite) TestServerSignaturesMatch() {
	server := reflect.TypeOf((*gamev1.GameServiceServer)(nil)).Elem()
	s.Equal(len(s.rpcs), server.NumMethod())

	for name, decl := range s.rpcs {
		s.Run(name, func() {
			method, ok := server.MethodByName(name)
			s.Require().True(ok)
			s.Equal(decl.request, method.Type.In(1).Elem().Name())
			s.Equal(decl.response, method.Type.Out(0).Elem().Name())
		})
	}
}

func (s *ContractTestSuite) TestMessageFieldsMatchJSON() {
	server := reflect.TypeOf((*gamev1.GameServiceServer)(nil)).Elem()

	for name := range s.rpcs {
		method, _ := server.MethodByName(name)
		for _, t := range []reflect.Type{method.Type.In(1).Elem(), method.Type.Out(0).Elem()} {
			s.Run(name+"/"+t.Name(), func() {
				want, ok := s.messages[t.Name()]
				s.Require().True(ok, "message %s is not declared", t.Name())
				s.Equal(want, jsonFields(t))
			})
		}
	}
}

func jsonFields(t reflect.Type) []string {
	var out []string
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
