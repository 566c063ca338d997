package di

import (
	"errors"
	"strconv"
)

var (
	// ErrNilDefinition is returned when Materialize is given a nil definition.
	ErrNilDefinition = errors.New("di: nil definition")

	// ErrNilRegistry is returned by ResolveAs when no registry is supplied.
	ErrNilRegistry = errors.New("di: nil registry")

	errNoConstructor = errors.New("type has no constructor")
	errNoSetter      = errors.New("type accepts no properties")
)

// MissingBeanError is returned when a named reference is not in the registry.
type MissingBeanError struct{ Name string }

// Error implements the error interface.
func (e MissingBeanError) Error() string {
	// Example: di: bean "conversionService" missing
	return "di: bean " + strconv.Quote(e.Name) + " missing"
}

// WrongTypeError is returned when a bean (or a materialized definition) is not
// of the requested type.
type WrongTypeError struct {
	// Name is the bean name, or the type name for anonymous definitions.
	Name string

	// GotType is reflect.TypeOf(raw).String() for the value found.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeError) Error() string {
	// Example: di: bean "cs1" has wrong type (*mvc.MvcViewFactoryCreator)
	return "di: bean " + strconv.Quote(e.Name) + " has wrong type (" + e.GotType + ")"
}

// UnknownTypeError is returned when a definition names a type the container
// was never taught to build.
type UnknownTypeError struct{ TypeName string }

// Error implements the error interface.
func (e UnknownTypeError) Error() string {
	return "di: unknown type " + strconv.Quote(e.TypeName)
}

// UnknownFactoryMethodError is returned when a factory invocation names a
// method the type does not register.
type UnknownFactoryMethodError struct {
	TypeName string
	Method   string
}

// Error implements the error interface.
func (e UnknownFactoryMethodError) Error() string {
	return "di: type " + strconv.Quote(e.TypeName) + " has no factory method " + strconv.Quote(e.Method)
}

// PropertyError wraps a failure to resolve or apply one property.
type PropertyError struct {
	TypeName string
	Property string
	Err      error
}

// Error implements the error interface.
func (e PropertyError) Error() string {
	return "di: " + e.TypeName + "." + e.Property + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e PropertyError) Unwrap() error { return e.Err }

// ConstructionError wraps a failure of a constructor or factory method.
// Method is empty for plain construction.
type ConstructionError struct {
	TypeName string
	Method   string
	Err      error
}

// Error implements the error interface.
func (e ConstructionError) Error() string {
	target := e.TypeName
	if e.Method != "" {
		target += "." + e.Method
	}
	return "di: building " + target + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e ConstructionError) Unwrap() error { return e.Err }
