// Package flowconfig turns flow-builder-services configuration into bean
// definitions.
//
// A flow-builder-services element carries four optional attributes:
//
//	<flow-builder-services
//	    conversion-service="beanName"
//	    expression-parser="beanName"
//	    view-factory-creator="beanName"
//	    development="true|false" />
//
// ParseFlowBuilderServices resolves one element into an
// engine.FlowBuilderServices definition. Named services become references
// resolved later by the container; missing ones get defaults. The same
// element can be written as XML, YAML or HCL (LoadXML, LoadYAML, LoadHCL).
//
// Resolution has no side effects and cannot fail. Missing beans and malformed
// values are reported when the definition is materialized (see package di).
package flowconfig
