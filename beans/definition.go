package beans

import "fmt"

// Property is a named Value on a Definition.
type Property struct {
	Name  string
	Value Value
}

// Definition describes one object to be built by a container.
//
// Properties keep insertion order; the container applies them in that order.
type Definition struct {
	// ID is the name the built object is registered under. Empty for nested
	// (anonymous) definitions.
	ID string

	// TypeName selects the constructor (or factory) registered in the container.
	TypeName string

	// FactoryMethod, when set, means "call TypeName.FactoryMethod(ConstructorArgs...)"
	// instead of constructing TypeName and applying properties.
	FactoryMethod   string
	ConstructorArgs []Value

	props []Property
	index map[string]int
}

// Kind implements Value.
func (d *Definition) Kind() Kind {
	if d != nil && d.FactoryMethod != "" {
		return KindFactoryInvocation
	}
	return KindDefinition
}

func (*Definition) isValue() {}

// Property returns the value stored under name.
func (d *Definition) Property(name string) (Value, bool) {
	if d == nil || d.index == nil {
		return nil, false
	}
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.props[i].Value, true
}

// HasProperty reports whether name has been set.
func (d *Definition) HasProperty(name string) bool {
	_, ok := d.Property(name)
	return ok
}

// Properties returns a copy of the properties in insertion order.
func (d *Definition) Properties() []Property {
	if d == nil || len(d.props) == 0 {
		return nil
	}
	out := make([]Property, len(d.props))
	copy(out, d.props)
	return out
}

// Clone returns a deep copy of the definition tree. Concrete values are shared.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	cp := &Definition{
		ID:            d.ID,
		TypeName:      d.TypeName,
		FactoryMethod: d.FactoryMethod,
	}
	for _, a := range d.ConstructorArgs {
		cp.ConstructorArgs = append(cp.ConstructorArgs, cloneValue(a))
	}
	for _, p := range d.props {
		cp.set(p.Name, cloneValue(p.Value))
	}
	return cp
}

// String implements fmt.Stringer.
func (d *Definition) String() string {
	if d == nil {
		return "<nil definition>"
	}
	if d.FactoryMethod != "" {
		return fmt.Sprintf("%s.%s(%d args)", d.TypeName, d.FactoryMethod, len(d.ConstructorArgs))
	}
	if d.ID != "" {
		return fmt.Sprintf("%s %q (%d properties)", d.TypeName, d.ID, len(d.props))
	}
	return fmt.Sprintf("%s (%d properties)", d.TypeName, len(d.props))
}

func (d *Definition) set(name string, v Value) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[name]; ok {
		d.props[i].Value = v
		return
	}
	d.index[name] = len(d.props)
	d.props = append(d.props, Property{Name: name, Value: v})
}

func cloneValue(v Value) Value {
	if nested, ok := v.(*Definition); ok {
		return nested.Clone()
	}
	return v
}
