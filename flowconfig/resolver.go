package flowconfig

import (
	"github.com/juju/loggo"

	"github.com/sghaida/flowsvc/beans"
	"github.com/sghaida/flowsvc/binding"
	"github.com/sghaida/flowsvc/engine"
	"github.com/sghaida/flowsvc/expression"
	"github.com/sghaida/flowsvc/mvc"
)

var logger = loggo.GetLogger("flowsvc.flowconfig")

// ParseFlowBuilderServices resolves one element into an engine.FlowBuilderServices
// definition.
//
// Each service attribute with text becomes a named reference. Without text:
//   - conversion-service: a new default conversion service
//   - expression-parser: built from whatever conversion-service resolved to
//   - view-factory-creator: a nested default view-factory-creator definition
//   - development: left unset
//
// It never fails; unknown names and malformed values surface when the
// definition is materialized.
func ParseFlowBuilderServices(el Element) *beans.Definition {
	b := beans.NewBuilder(engine.FlowBuilderServicesType).ID(el.ID)

	cs := resolveConversionService(el.Attributes)
	b.AddPropertyValue(engine.PropConversionService, cs)
	b.AddPropertyValue(engine.PropExpressionParser, resolveExpressionParser(el.Attributes, cs))
	b.AddPropertyValue(engine.PropViewFactoryCreator, resolveViewFactoryCreator(el.Attributes))
	if dev, ok := resolveDevelopment(el.Attributes); ok {
		b.AddPropertyValue(engine.PropDevelopment, dev)
	}

	def := b.Definition()
	logger.Debugf("resolved %s from %s", def, sourceOf(el))
	return def
}

func resolveConversionService(attrs Attributes) beans.Value {
	if name, ok := attrs.Text(AttrConversionService); ok {
		return beans.Ref(name)
	}
	return beans.Val(binding.NewDefaultConversionService())
}

// resolveExpressionParser needs the already resolved conversion service: a
// reference defers parser construction to build time, a concrete service
// builds the parser now.
func resolveExpressionParser(attrs Attributes, conversionService beans.Value) beans.Value {
	if name, ok := attrs.Text(AttrExpressionParser); ok {
		return beans.Ref(name)
	}
	switch cs := conversionService.(type) {
	case beans.Reference:
		return beans.NewBuilder(expression.FactoryType).
			SetFactoryMethod(expression.FactoryMethod).
			AddConstructorArg(cs).
			Definition()
	case beans.Concrete:
		svc, _ := cs.Value.(binding.ConversionService)
		return beans.Val(expression.GetExpressionParser(svc))
	default:
		// A nested definition: build the parser from it at build time.
		return beans.NewBuilder(expression.FactoryType).
			SetFactoryMethod(expression.FactoryMethod).
			AddConstructorArg(conversionService).
			Definition()
	}
}

func resolveViewFactoryCreator(attrs Attributes) beans.Value {
	if name, ok := attrs.Text(AttrViewFactoryCreator); ok {
		return beans.Ref(name)
	}
	return beans.NewBuilder(mvc.MvcViewFactoryCreatorType).Definition()
}

func resolveDevelopment(attrs Attributes) (beans.Value, bool) {
	text, ok := attrs.Text(AttrDevelopment)
	if !ok {
		return nil, false
	}
	return beans.Val(text), true
}

func sourceOf(el Element) string {
	if el.Source == "" {
		return "<inline>"
	}
	return el.Source
}
