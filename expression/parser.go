// Package expression provides the expression parser handed to flow builders.
//
// Parsing only: an Expression records its source and the root variables it
// references. Evaluation belongs to the flow engine.
package expression

import (
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/sghaida/flowsvc/binding"
)

var logger = loggo.GetLogger("flowsvc.expression")

const (
	// FactoryType is the container type name of the parser factory.
	FactoryType = "expression.DefaultExpressionParserFactory"
	// FactoryMethod is the accessor invoked on FactoryType.
	FactoryMethod = "GetExpressionParser"
	// ParserType is the container type name of Parser.
	ParserType = "expression.Parser"
)

// ExpressionParser turns expression text into an Expression.
type ExpressionParser interface {
	ParseExpression(text string) (*Expression, error)
}

// Expression is a parsed, unevaluated expression.
type Expression struct {
	Source    string
	Variables []string

	syntax hclsyntax.Expression
}

// Syntax returns the parsed syntax tree.
func (e *Expression) Syntax() hclsyntax.Expression { return e.syntax }

// Parser is the default ExpressionParser.
type Parser struct {
	conversion binding.ConversionService
}

// GetExpressionParser returns a parser bound to cs. A nil cs gets a fresh
// default conversion service.
func GetExpressionParser(cs binding.ConversionService) *Parser {
	if cs == nil {
		cs = binding.NewDefaultConversionService()
	}
	return &Parser{conversion: cs}
}

// ConversionService returns the service results are converted with.
func (p *Parser) ConversionService() binding.ConversionService { return p.conversion }

// ParseExpression implements ExpressionParser.
//
// Text wrapped in "#{...}" or "${...}" is unwrapped first.
func (p *Parser) ParseExpression(text string) (*Expression, error) {
	src := unwrapDelimiters(strings.TrimSpace(text))
	if src == "" {
		return nil, errors.NotValidf("empty expression")
	}
	expr, diags := hclsyntax.ParseExpression([]byte(src), "expression", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, errors.Annotatef(diags, "parsing expression %q", text)
	}

	seen := make(map[string]struct{})
	var vars []string
	for _, tr := range expr.Variables() {
		name := tr.RootName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		vars = append(vars, name)
	}
	sort.Strings(vars)

	logger.Tracef("parsed expression %q (variables %v)", src, vars)
	return &Expression{Source: src, Variables: vars, syntax: expr}, nil
}

// String implements fmt.Stringer.
func (p *Parser) String() string { return ParserType }

func unwrapDelimiters(s string) string {
	for _, open := range []string{"#{", "${"} {
		if strings.HasPrefix(s, open) && strings.HasSuffix(s, "}") {
			return strings.TrimSpace(s[len(open) : len(s)-1])
		}
	}
	return s
}
