package engine

import (
	"errors"
	"strconv"

	"github.com/sghaida/flowsvc/binding"
	"github.com/sghaida/flowsvc/di"
	"github.com/sghaida/flowsvc/expression"
	"github.com/sghaida/flowsvc/mvc"
)

// Register teaches c every type a flow-builder-services definition can name.
func Register(c *di.Container) *di.Container {
	return c.
		Register(FlowBuilderServicesType, di.TypeSpec{
			New: func() (any, error) { return &FlowBuilderServices{}, nil },
			Set: func(target any, property string, value any) error {
				return target.(*FlowBuilderServices).SetProperty(property, value)
			},
			Init: func(target any) error {
				return target.(*FlowBuilderServices).Validate()
			},
		}).
		Register(binding.DefaultConversionServiceType, di.TypeSpec{
			New: func() (any, error) { return binding.NewDefaultConversionService(), nil },
		}).
		Register(expression.FactoryType, di.TypeSpec{
			Factories: map[string]di.FactoryFunc{
				expression.FactoryMethod: getExpressionParser,
			},
		}).
		Register(expression.ParserType, di.TypeSpec{
			New: func() (any, error) { return expression.GetExpressionParser(nil), nil },
		}).
		Register(mvc.MvcViewFactoryCreatorType, di.TypeSpec{
			New: func() (any, error) { return mvc.NewMvcViewFactoryCreator(), nil },
			Set: setViewFactoryCreatorProperty,
		})
}

// NewContainer returns a container over reg with every flow type registered.
func NewContainer(reg di.Registry) *di.Container {
	return Register(di.NewContainer(reg))
}

var errFactoryArgs = errors.New("want exactly one conversion service argument")

func getExpressionParser(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, errFactoryArgs
	}
	if args[0] == nil {
		return expression.GetExpressionParser(nil), nil
	}
	cs, ok := args[0].(binding.ConversionService)
	if !ok {
		return nil, WrongPropertyTypeError{Property: "conversionService", Want: "binding.ConversionService"}
	}
	return expression.GetExpressionParser(cs), nil
}

func setViewFactoryCreatorProperty(target any, property string, value any) error {
	c := target.(*mvc.MvcViewFactoryCreator)
	s, ok := value.(string)
	if !ok {
		return WrongPropertyTypeError{Property: property, Want: "string"}
	}
	switch property {
	case "viewPrefix":
		c.ViewPrefix = s
	case "viewSuffix":
		c.ViewSuffix = s
	default:
		return errors.New("engine: view factory creator has no property " + strconv.Quote(property))
	}
	return nil
}
