// Package beans describes objects a container should build, without building them.
//
// A Definition names a type, an optional factory method with constructor
// arguments, and an ordered list of properties. Each property (and each
// constructor argument) holds a Value, which is one of:
//
//   - Reference: resolve the component registered under a name at build time
//   - Concrete: an already constructed value, used as is
//   - *Definition: a nested definition, built when its owner is built
//
// Definitions are plain data. Nothing here talks to a registry or constructs
// anything; see package di for materialization.
package beans

import "strconv"

// Kind discriminates the Value variants.
type Kind int

const (
	// KindReference is a named reference (Reference).
	KindReference Kind = iota + 1
	// KindConcrete is an immediate value (Concrete).
	KindConcrete
	// KindDefinition is a nested definition constructed from its type.
	KindDefinition
	// KindFactoryInvocation is a nested definition built by calling a factory method.
	KindFactoryInvocation
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindReference:
		return "reference"
	case KindConcrete:
		return "concrete"
	case KindDefinition:
		return "definition"
	case KindFactoryInvocation:
		return "factory-invocation"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a property or constructor-argument slot.
//
// The set of implementations is closed: Reference, Concrete and *Definition.
type Value interface {
	Kind() Kind
	isValue()
}

// Reference is resolved by name when the owning definition is materialized.
type Reference struct {
	Name string
}

// Ref is shorthand for Reference{Name: name}.
func Ref(name string) Reference { return Reference{Name: name} }

// Kind implements Value.
func (Reference) Kind() Kind { return KindReference }
func (Reference) isValue()   {}

// Concrete carries a value that needs no further resolution.
type Concrete struct {
	Value any
}

// Val is shorthand for Concrete{Value: v}.
func Val(v any) Concrete { return Concrete{Value: v} }

// Kind implements Value.
func (Concrete) Kind() Kind { return KindConcrete }
func (Concrete) isValue()   {}

// AsReference returns v as a Reference if it is one.
func AsReference(v Value) (Reference, bool) {
	r, ok := v.(Reference)
	return r, ok
}

// AsConcrete returns v as a Concrete if it is one.
func AsConcrete(v Value) (Concrete, bool) {
	c, ok := v.(Concrete)
	return c, ok
}

// AsDefinition returns v as a nested *Definition if it is one.
func AsDefinition(v Value) (*Definition, bool) {
	d, ok := v.(*Definition)
	return d, ok && d != nil
}
