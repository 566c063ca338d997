// Package flowsvc resolves flow-builder-services configuration into explicit,
// buildable definitions.
//
// A flow-builder-services element names (or omits) the collaborators every
// flow builder shares: a conversion service, an expression parser, a
// view-factory-creator, and a development flag. Resolution is two-phase:
//
//   - describe: flowconfig reads the element (XML, YAML or HCL) and produces a
//     beans.Definition, with named references for configured services and
//     defaults for the rest
//   - build: di.Container materializes the definition against a registry of
//     named beans, surfacing missing beans and malformed values as typed errors
//
// Wiring stays explicit: types are taught to the container one by one
// (engine.Register), with no reflection-based injection.
//
// See subpackages:
//   - beans: definition model (Reference, Concrete, nested Definition)
//   - flowconfig: element loaders and the resolver
//   - di: registry and container
//   - engine: FlowBuilderServices and its container registrations
//   - binding, expression, mvc: the default collaborators
//   - cmd/flowcfg: describe/check command
package flowsvc
