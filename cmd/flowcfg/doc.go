// Command flowcfg inspects flow-builder-services configuration.
//
// It reads an XML, YAML or HCL file, resolves every flow-builder-services
// element into a bean definition, and then either prints the definitions or
// builds them.
//
// Describe
//
//	flowcfg describe -config webflow-config.xml
//
// prints the resolved definitions as YAML: which services are named
// references, which are defaults, and which are built by a factory.
//
// Check
//
//	flowcfg check -config webflow-config.xml -bean conversionService=conversion
//
// builds each definition against a registry holding the beans given with
// -bean (name=kind, kind one of conversion, parser, views) and prints one line
// per definition. Unknown references and malformed values show up here, not
// during describe. The exit status is non-zero if any definition fails.
//
// Logging
//
// Logging is configured with a loggo specification, taken from -log or the
// FLOWCFG_LOGGING_CONFIG environment variable (default "<root>=WARNING").
package main
