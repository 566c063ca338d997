package di

import (
	"reflect"

	"github.com/juju/loggo"

	"github.com/sghaida/flowsvc/beans"
)

var logger = loggo.GetLogger("flowsvc.di")

// FactoryFunc builds a value from already resolved arguments.
type FactoryFunc func(args ...any) (any, error)

// TypeSpec teaches a Container how to build one type name.
//
// There is no reflection-based injection: every property is applied by Set.
type TypeSpec struct {
	// New constructs an instance before properties are applied. Types that are
	// only reachable through factory methods leave it nil.
	New func() (any, error)

	// Set applies one resolved property value to target.
	Set func(target any, property string, value any) error

	// Init runs after all properties are applied.
	Init func(target any) error

	// Factories maps factory-method names to their implementations.
	Factories map[string]FactoryFunc
}

// Container materializes bean definitions.
//
// References are looked up in the registry; nested definitions are built
// depth first. A Container holds no per-build state and may be reused.
type Container struct {
	reg   Registry
	types map[string]TypeSpec
}

// NewContainer returns a container resolving references against reg.
// A nil reg behaves like an empty registry.
func NewContainer(reg Registry) *Container {
	if reg == nil {
		reg = NewMapRegistry()
	}
	return &Container{reg: reg, types: make(map[string]TypeSpec)}
}

// Register adds (or replaces) the TypeSpec for typeName.
func (c *Container) Register(typeName string, spec TypeSpec) *Container {
	c.types[typeName] = spec
	return c
}

// Registered reports whether typeName has a TypeSpec.
func (c *Container) Registered(typeName string) bool {
	_, ok := c.types[typeName]
	return ok
}

// Materialize builds the object described by def.
func (c *Container) Materialize(def *beans.Definition) (any, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}
	spec, ok := c.types[def.TypeName]
	if !ok {
		return nil, UnknownTypeError{TypeName: def.TypeName}
	}
	if def.FactoryMethod != "" {
		return c.invoke(def, spec)
	}
	return c.construct(def, spec)
}

func (c *Container) construct(def *beans.Definition, spec TypeSpec) (any, error) {
	if spec.New == nil {
		return nil, ConstructionError{TypeName: def.TypeName, Err: errNoConstructor}
	}
	target, err := spec.New()
	if err != nil {
		return nil, ConstructionError{TypeName: def.TypeName, Err: err}
	}
	logger.Tracef("constructed %s", def)

	for _, p := range def.Properties() {
		val, err := c.resolve(def, p.Value)
		if err != nil {
			return nil, PropertyError{TypeName: def.TypeName, Property: p.Name, Err: err}
		}
		if spec.Set == nil {
			return nil, PropertyError{TypeName: def.TypeName, Property: p.Name, Err: errNoSetter}
		}
		if err := spec.Set(target, p.Name, val); err != nil {
			return nil, PropertyError{TypeName: def.TypeName, Property: p.Name, Err: err}
		}
	}

	if spec.Init != nil {
		if err := spec.Init(target); err != nil {
			return nil, ConstructionError{TypeName: def.TypeName, Err: err}
		}
	}
	return target, nil
}

func (c *Container) invoke(def *beans.Definition, spec TypeSpec) (any, error) {
	fn, ok := spec.Factories[def.FactoryMethod]
	if !ok || fn == nil {
		return nil, UnknownFactoryMethodError{TypeName: def.TypeName, Method: def.FactoryMethod}
	}
	args := make([]any, 0, len(def.ConstructorArgs))
	for _, a := range def.ConstructorArgs {
		v, err := c.resolve(def, a)
		if err != nil {
			return nil, ConstructionError{TypeName: def.TypeName, Method: def.FactoryMethod, Err: err}
		}
		args = append(args, v)
	}
	out, err := fn(args...)
	if err != nil {
		return nil, ConstructionError{TypeName: def.TypeName, Method: def.FactoryMethod, Err: err}
	}
	logger.Tracef("invoked %s", def)
	return out, nil
}

// resolve turns a Value into a live value. owner is passed to the registry.
func (c *Container) resolve(owner *beans.Definition, v beans.Value) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case beans.Reference:
		val, ok, err := c.reg.Resolve(owner, x.Name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, MissingBeanError{Name: x.Name}
		}
		logger.Tracef("resolved reference %q", x.Name)
		return val, nil
	case beans.Concrete:
		return x.Value, nil
	case *beans.Definition:
		return c.Materialize(x)
	default:
		return nil, UnknownTypeError{TypeName: reflect.TypeOf(v).String()}
	}
}

// MaterializeAs materializes def and asserts the result to T.
func MaterializeAs[T any](c *Container, def *beans.Definition) (T, error) {
	var zero T
	raw, err := c.Materialize(def)
	if err != nil {
		return zero, err
	}
	typed, ok := raw.(T)
	if !ok {
		name := def.ID
		if name == "" {
			name = def.TypeName
		}
		return zero, WrongTypeError{Name: name, GotType: typeString(raw)}
	}
	return typed, nil
}

// ResolveAs looks name up in reg and asserts the result to T.
//
// It returns:
//   - MissingBeanError if the name is not registered
//   - WrongTypeError if the bean is not a T
func ResolveAs[T any](reg Registry, name string) (T, error) {
	var zero T
	if reg == nil {
		return zero, ErrNilRegistry
	}
	raw, ok, err := reg.Resolve(nil, name)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, MissingBeanError{Name: name}
	}
	typed, ok := raw.(T)
	if !ok {
		return zero, WrongTypeError{Name: name, GotType: typeString(raw)}
	}
	return typed, nil
}

func typeString(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
