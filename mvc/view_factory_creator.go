// Package mvc holds the default view-factory-creator.
package mvc

// MvcViewFactoryCreatorType is the container type name of MvcViewFactoryCreator.
const MvcViewFactoryCreatorType = "mvc.MvcViewFactoryCreator"

// MvcViewFactoryCreator maps view states to view ids.
//
// With no prefix or suffix a view state's id is used as its view id.
type MvcViewFactoryCreator struct {
	ViewPrefix string
	ViewSuffix string
}

// NewMvcViewFactoryCreator returns a creator with no prefix or suffix.
func NewMvcViewFactoryCreator() *MvcViewFactoryCreator {
	return &MvcViewFactoryCreator{}
}

// ViewIDByConvention returns the view id for a view state that names none.
func (c *MvcViewFactoryCreator) ViewIDByConvention(viewStateID string) string {
	return c.ViewPrefix + viewStateID + c.ViewSuffix
}

// String implements fmt.Stringer.
func (c *MvcViewFactoryCreator) String() string { return MvcViewFactoryCreatorType }
