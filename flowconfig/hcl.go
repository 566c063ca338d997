package flowconfig

import (
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/juju/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

var hclSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: ElementName, LabelNames: []string{AttrID}},
	},
}

// LoadHCL reads flow-builder-services blocks from HCL source:
//
//	flow-builder-services "services" {
//	  conversion-service = "conversionService"
//	  development        = true
//	}
//
// The block label becomes the id. Attribute values are evaluated without
// variables and converted to strings; null counts as absent. Other top-level
// content is ignored.
func LoadHCL(src []byte, filename string) ([]Element, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Annotatef(diags, "parsing HCL %s", filename)
	}
	content, _, diags := file.Body.PartialContent(hclSchema)
	if diags.HasErrors() {
		return nil, errors.Annotatef(diags, "decoding HCL %s", filename)
	}

	out := make([]Element, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		attrs, err := hclAttributes(block)
		if err != nil {
			return nil, errors.Annotatef(err, "%s block %q in %s", ElementName, block.Labels[0], filename)
		}
		attrs[AttrID] = block.Labels[0]
		out = append(out, NewElement(attrs, filename+":"+strconv.Itoa(block.DefRange.Start.Line)))
	}
	logger.Tracef("found %d %s blocks in %s", len(out), ElementName, filename)
	return out, nil
}

func hclAttributes(block *hcl.Block) (Attributes, error) {
	raw, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	attrs := make(Attributes, len(raw))
	for name, attr := range raw {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		if val.IsNull() {
			continue
		}
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, errors.Annotatef(err, "attribute %q", name)
		}
		attrs[name] = str.AsString()
	}
	return attrs, nil
}
