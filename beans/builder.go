package beans

// Builder assembles a Definition.
//
// Builder methods return the builder for chaining. Setting a property twice
// replaces the earlier value and keeps its original position.
type Builder struct {
	def *Definition
}

// NewBuilder starts a definition of typeName.
func NewBuilder(typeName string) *Builder {
	return &Builder{def: &Definition{TypeName: typeName}}
}

// ID sets the name the built object is registered under.
func (b *Builder) ID(id string) *Builder {
	b.def.ID = id
	return b
}

// AddPropertyValue stores v under name.
func (b *Builder) AddPropertyValue(name string, v Value) *Builder {
	b.def.set(name, v)
	return b
}

// AddPropertyReference stores a Reference to beanName under name.
func (b *Builder) AddPropertyReference(name, beanName string) *Builder {
	return b.AddPropertyValue(name, Reference{Name: beanName})
}

// SetFactoryMethod turns the definition into a factory invocation.
func (b *Builder) SetFactoryMethod(method string) *Builder {
	b.def.FactoryMethod = method
	return b
}

// AddConstructorArg appends a constructor (or factory method) argument.
func (b *Builder) AddConstructorArg(v Value) *Builder {
	b.def.ConstructorArgs = append(b.def.ConstructorArgs, v)
	return b
}

// Property reads back a property set so far.
func (b *Builder) Property(name string) (Value, bool) {
	return b.def.Property(name)
}

// Definition returns the definition being built.
//
// The same pointer is returned on every call; further builder calls keep
// mutating it.
func (b *Builder) Definition() *Definition {
	return b.def
}
