package beans_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/flowsvc/beans"
)

type named struct{}

func (named) String() string { return "named-value" }

func TestValueKinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, beans.KindReference, beans.Ref("a").Kind())
	assert.Equal(t, beans.KindConcrete, beans.Val(1).Kind())
	assert.Equal(t, beans.KindDefinition, beans.NewBuilder("t").Definition().Kind())
	assert.Equal(t, beans.KindFactoryInvocation, beans.NewBuilder("t").SetFactoryMethod("Make").Definition().Kind())

	assert.Equal(t, "reference", beans.KindReference.String())
	assert.Equal(t, "factory-invocation", beans.KindFactoryInvocation.String())
	assert.Equal(t, "kind(99)", beans.Kind(99).String())
}

func TestAsHelpers(t *testing.T) {
	t.Parallel()

	r, ok := beans.AsReference(beans.Ref("x"))
	require.True(t, ok)
	assert.Equal(t, "x", r.Name)

	_, ok = beans.AsReference(beans.Val("x"))
	assert.False(t, ok)

	c, ok := beans.AsConcrete(beans.Val(3))
	require.True(t, ok)
	assert.Equal(t, 3, c.Value)

	d, ok := beans.AsDefinition(beans.NewBuilder("t").Definition())
	require.True(t, ok)
	assert.Equal(t, "t", d.TypeName)

	var nilDef *beans.Definition
	_, ok = beans.AsDefinition(nilDef)
	assert.False(t, ok)
}

func TestBuilder_PropertiesKeepOrderAndReplaceInPlace(t *testing.T) {
	t.Parallel()

	b := beans.NewBuilder("t").
		ID("id1").
		AddPropertyReference("a", "beanA").
		AddPropertyValue("b", beans.Val(2)).
		AddPropertyValue("a", beans.Val(1))

	v, ok := b.Property("a")
	require.True(t, ok)
	assert.Equal(t, beans.Val(1), v)

	def := b.Definition()
	assert.Equal(t, "id1", def.ID)
	assert.Equal(t, []beans.Property{
		{Name: "a", Value: beans.Val(1)},
		{Name: "b", Value: beans.Val(2)},
	}, def.Properties())

	_, ok = def.Property("c")
	assert.False(t, ok)
	assert.False(t, def.HasProperty("c"))
	assert.True(t, def.HasProperty("b"))
}

func TestDefinition_NilSafe(t *testing.T) {
	t.Parallel()

	var d *beans.Definition
	_, ok := d.Property("a")
	assert.False(t, ok)
	assert.Nil(t, d.Properties())
	assert.Nil(t, d.Clone())
	assert.Equal(t, "<nil definition>", d.String())
	assert.Equal(t, beans.KindDefinition, d.Kind())
}

func TestDefinition_PropertiesIsACopy(t *testing.T) {
	t.Parallel()

	def := beans.NewBuilder("t").AddPropertyValue("a", beans.Val(1)).Definition()
	props := def.Properties()
	props[0].Value = beans.Val(2)

	v, _ := def.Property("a")
	assert.Equal(t, beans.Val(1), v)
}

func TestDefinition_CloneIsDeep(t *testing.T) {
	t.Parallel()

	nested := beans.NewBuilder("inner").AddPropertyValue("x", beans.Val(1)).Definition()
	def := beans.NewBuilder("outer").
		ID("o").
		SetFactoryMethod("Make").
		AddConstructorArg(beans.Ref("arg")).
		AddPropertyValue("inner", nested).
		Definition()

	cp := def.Clone()
	if diff := cmp.Diff(beans.DescribeDefinition(def), beans.DescribeDefinition(cp)); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	innerCopy, _ := cp.Property("inner")
	require.NotSame(t, nested, innerCopy)

	nested.ID = "changed"
	d, _ := beans.AsDefinition(innerCopy)
	assert.Empty(t, d.ID)
}

func TestDefinition_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "t (0 properties)", beans.NewBuilder("t").Definition().String())
	assert.Equal(t, `t "x" (1 properties)`, beans.NewBuilder("t").ID("x").AddPropertyValue("a", beans.Val(1)).Definition().String())
	assert.Equal(t, "f.Get(1 args)", beans.NewBuilder("f").SetFactoryMethod("Get").AddConstructorArg(beans.Ref("r")).Definition().String())
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	def := beans.NewBuilder("outer").
		ID("o").
		AddPropertyReference("ref", "r1").
		AddPropertyValue("text", beans.Val("true")).
		AddPropertyValue("stringer", beans.Val(named{})).
		AddPropertyValue("opaque", beans.Val(struct{ A int }{1})).
		AddPropertyValue("nested", beans.NewBuilder("inner").SetFactoryMethod("Get").AddConstructorArg(beans.Ref("r2")).Definition()).
		Definition()

	want := map[string]any{
		"type": "outer",
		"id":   "o",
		"properties": map[string]any{
			"ref":      map[string]any{"ref": "r1"},
			"text":     map[string]any{"value": "true"},
			"stringer": map[string]any{"value": "named-value"},
			"opaque":   map[string]any{"value": "struct { A int }"},
			"nested": map[string]any{
				"type":           "inner",
				"factory-method": "Get",
				"args":           []any{map[string]any{"ref": "r2"}},
			},
		},
	}
	if diff := cmp.Diff(want, beans.Describe(def)); diff != "" {
		t.Fatalf("describe mismatch (-want +got):\n%s", diff)
	}

	assert.Nil(t, beans.Describe(nil))
	assert.Nil(t, beans.DescribeDefinition(nil))
}
