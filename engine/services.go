// Package engine holds the services record flow builders are configured with.
package engine

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/sghaida/flowsvc/binding"
	"github.com/sghaida/flowsvc/expression"
)

// FlowBuilderServicesType is the container type name of FlowBuilderServices.
const FlowBuilderServicesType = "engine.FlowBuilderServices"

// Property names on a FlowBuilderServices definition.
const (
	PropConversionService  = "conversionService"
	PropExpressionParser   = "expressionParser"
	PropViewFactoryCreator = "viewFactoryCreator"
	PropDevelopment        = "development"
)

// ViewFactoryCreator creates view factories for view states.
type ViewFactoryCreator interface {
	ViewIDByConvention(viewStateID string) string
}

// FlowBuilderServices is the set of collaborators shared by flow builders.
type FlowBuilderServices struct {
	ConversionService  binding.ConversionService
	ExpressionParser   expression.ExpressionParser
	ViewFactoryCreator ViewFactoryCreator

	// Development enables development-time behavior such as flow reloading.
	Development bool
}

// MissingServiceError is returned by Validate for an unset collaborator.
type MissingServiceError struct{ Property string }

// Error implements the error interface.
func (e MissingServiceError) Error() string {
	return "engine: flow builder services: " + strconv.Quote(e.Property) + " is required"
}

// Validate checks that every collaborator is set.
func (s *FlowBuilderServices) Validate() error {
	switch {
	case s.ConversionService == nil:
		return MissingServiceError{Property: PropConversionService}
	case s.ExpressionParser == nil:
		return MissingServiceError{Property: PropExpressionParser}
	case s.ViewFactoryCreator == nil:
		return MissingServiceError{Property: PropViewFactoryCreator}
	}
	return nil
}

// ErrUnknownProperty is returned when setting a property FlowBuilderServices
// does not have.
var ErrUnknownProperty = errors.New("engine: unknown property")

// WrongPropertyTypeError is returned when a property value has the wrong type.
type WrongPropertyTypeError struct {
	Property string
	Want     string
}

// Error implements the error interface.
func (e WrongPropertyTypeError) Error() string {
	return "engine: " + strconv.Quote(e.Property) + " must be a " + e.Want
}

// SetProperty applies one resolved property value.
//
// The development property accepts a bool, or text coercible to one.
func (s *FlowBuilderServices) SetProperty(name string, value any) error {
	switch name {
	case PropConversionService:
		cs, ok := value.(binding.ConversionService)
		if !ok {
			return WrongPropertyTypeError{Property: name, Want: "binding.ConversionService"}
		}
		s.ConversionService = cs
	case PropExpressionParser:
		ep, ok := value.(expression.ExpressionParser)
		if !ok {
			return WrongPropertyTypeError{Property: name, Want: "expression.ExpressionParser"}
		}
		s.ExpressionParser = ep
	case PropViewFactoryCreator:
		vfc, ok := value.(ViewFactoryCreator)
		if !ok {
			return WrongPropertyTypeError{Property: name, Want: "engine.ViewFactoryCreator"}
		}
		s.ViewFactoryCreator = vfc
	case PropDevelopment:
		if text, ok := value.(string); ok {
			value = strings.TrimSpace(text)
		}
		dev, err := cast.ToBoolE(value)
		if err != nil {
			return err
		}
		s.Development = dev
	default:
		return ErrUnknownProperty
	}
	return nil
}
