package flowconfig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/flowsvc/beans"
	"github.com/sghaida/flowsvc/binding"
	"github.com/sghaida/flowsvc/engine"
	"github.com/sghaida/flowsvc/expression"
	"github.com/sghaida/flowsvc/mvc"
)

func parse(attrs Attributes) *beans.Definition {
	return ParseFlowBuilderServices(NewElement(attrs, ""))
}

func TestParse_AllAbsent(t *testing.T) {
	t.Parallel()

	def := parse(nil)
	assert.Equal(t, engine.FlowBuilderServicesType, def.TypeName)
	assert.Empty(t, def.ID)

	csVal, ok := def.Property(engine.PropConversionService)
	require.True(t, ok)
	cs, ok := beans.AsConcrete(csVal)
	require.True(t, ok)
	defaultCS, ok := cs.Value.(*binding.DefaultConversionService)
	require.True(t, ok)

	epVal, ok := def.Property(engine.PropExpressionParser)
	require.True(t, ok)
	ep, ok := beans.AsConcrete(epVal)
	require.True(t, ok, "parser built directly from the default conversion service")
	parser, ok := ep.Value.(*expression.Parser)
	require.True(t, ok)
	assert.Same(t, defaultCS, parser.ConversionService())

	vfcVal, ok := def.Property(engine.PropViewFactoryCreator)
	require.True(t, ok)
	vfc, ok := beans.AsDefinition(vfcVal)
	require.True(t, ok)
	assert.Equal(t, mvc.MvcViewFactoryCreatorType, vfc.TypeName)
	assert.Equal(t, beans.KindDefinition, vfc.Kind())

	assert.False(t, def.HasProperty(engine.PropDevelopment))

	names := make([]string, 0, 3)
	for _, p := range def.Properties() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{engine.PropConversionService, engine.PropExpressionParser, engine.PropViewFactoryCreator}, names)
}

func TestParse_ConversionServiceReference(t *testing.T) {
	t.Parallel()

	def := parse(Attributes{AttrConversionService: "cs1"})

	csVal, _ := def.Property(engine.PropConversionService)
	assert.Equal(t, beans.Ref("cs1"), csVal)

	epVal, _ := def.Property(engine.PropExpressionParser)
	assert.Equal(t, beans.KindFactoryInvocation, epVal.Kind())

	want := map[string]any{
		"type":           expression.FactoryType,
		"factory-method": expression.FactoryMethod,
		"args":           []any{map[string]any{"ref": "cs1"}},
	}
	if diff := cmp.Diff(want, beans.Describe(epVal)); diff != "" {
		t.Fatalf("expression parser mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ExpressionParserReference(t *testing.T) {
	t.Parallel()

	for _, attrs := range []Attributes{
		{AttrExpressionParser: "ep1"},
		{AttrExpressionParser: "ep1", AttrConversionService: "cs1"},
	} {
		def := parse(attrs)
		epVal, ok := def.Property(engine.PropExpressionParser)
		require.True(t, ok)
		assert.Equal(t, beans.Ref("ep1"), epVal)
	}
}

func TestParse_ViewFactoryCreatorReference(t *testing.T) {
	t.Parallel()

	def := parse(Attributes{AttrViewFactoryCreator: "vfc"})
	v, _ := def.Property(engine.PropViewFactoryCreator)
	assert.Equal(t, beans.Ref("vfc"), v)
}

func TestParse_Development(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attrs   Attributes
		want    beans.Value
		wantSet bool
	}{
		{name: "true", attrs: Attributes{AttrDevelopment: "true"}, want: beans.Val("true"), wantSet: true},
		{name: "false_is_set", attrs: Attributes{AttrDevelopment: "false"}, want: beans.Val("false"), wantSet: true},
		{name: "raw_text_kept", attrs: Attributes{AttrDevelopment: "yes please"}, want: beans.Val("yes please"), wantSet: true},
		{name: "absent", attrs: Attributes{}, wantSet: false},
		{name: "blank", attrs: Attributes{AttrDevelopment: "  "}, wantSet: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parse(tt.attrs).Property(engine.PropDevelopment)
			assert.Equal(t, tt.wantSet, ok)
			if tt.wantSet {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParse_BlankAttributesFallBackToDefaults(t *testing.T) {
	t.Parallel()

	def := parse(Attributes{
		AttrConversionService:  "",
		AttrExpressionParser:   " \t",
		AttrViewFactoryCreator: "\n",
	})

	csVal, _ := def.Property(engine.PropConversionService)
	assert.Equal(t, beans.KindConcrete, csVal.Kind())
	epVal, _ := def.Property(engine.PropExpressionParser)
	assert.Equal(t, beans.KindConcrete, epVal.Kind())
	vfcVal, _ := def.Property(engine.PropViewFactoryCreator)
	assert.Equal(t, beans.KindDefinition, vfcVal.Kind())
}

func TestParse_ReferenceNamesVerbatim(t *testing.T) {
	t.Parallel()

	def := parse(Attributes{AttrConversionService: " cs1 "})
	v, _ := def.Property(engine.PropConversionService)
	assert.Equal(t, beans.Ref(" cs1 "), v)
}

func TestParse_ID(t *testing.T) {
	t.Parallel()

	def := parse(Attributes{AttrID: "flowBuilderServices"})
	assert.Equal(t, "flowBuilderServices", def.ID)
}

func TestParse_IndependentDefinitions(t *testing.T) {
	t.Parallel()

	a := parse(nil)
	b := parse(nil)
	csA, _ := a.Property(engine.PropConversionService)
	csB, _ := b.Property(engine.PropConversionService)
	assert.NotSame(t, csA.(beans.Concrete).Value, csB.(beans.Concrete).Value)
}

// resolveExpressionParser consumes whatever the conversion-service step produced.
func TestResolveExpressionParser_UsesResolvedConversionService(t *testing.T) {
	t.Parallel()

	t.Run("concrete", func(t *testing.T) {
		t.Parallel()
		cs := binding.NewDefaultConversionService()
		got := resolveExpressionParser(Attributes{}, beans.Val(cs))
		c, ok := beans.AsConcrete(got)
		require.True(t, ok)
		assert.Same(t, cs, c.Value.(*expression.Parser).ConversionService())
	})

	t.Run("reference", func(t *testing.T) {
		t.Parallel()
		got := resolveExpressionParser(Attributes{}, beans.Ref("cs9"))
		d, ok := beans.AsDefinition(got)
		require.True(t, ok)
		assert.Equal(t, expression.FactoryMethod, d.FactoryMethod)
		require.Len(t, d.ConstructorArgs, 1)
		assert.Equal(t, beans.Ref("cs9"), d.ConstructorArgs[0])
	})

	t.Run("nested_definition", func(t *testing.T) {
		t.Parallel()
		nested := beans.NewBuilder(binding.DefaultConversionServiceType).Definition()
		got := resolveExpressionParser(Attributes{}, nested)
		d, ok := beans.AsDefinition(got)
		require.True(t, ok)
		require.Len(t, d.ConstructorArgs, 1)
		assert.Same(t, nested, d.ConstructorArgs[0])
	})

	t.Run("explicit_attribute_wins", func(t *testing.T) {
		t.Parallel()
		got := resolveExpressionParser(Attributes{AttrExpressionParser: "ep"}, beans.Ref("cs9"))
		assert.Equal(t, beans.Ref("ep"), got)
	})
}

func TestAttributesText(t *testing.T) {
	t.Parallel()

	a := Attributes{"x": "v", "blank": "   ", "empty": ""}

	v, ok := a.Text("x")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	for _, k := range []string{"blank", "empty", "missing"} {
		_, ok := a.Text(k)
		assert.False(t, ok, k)
	}
}
