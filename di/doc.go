// Package di materializes bean definitions into live objects.
//
// Definitions (package beans) describe what to build; a Container builds them:
//
//   - Reference values are looked up by name in a Registry
//   - Concrete values are used as is
//   - nested definitions are constructed (New, then Set per property, then Init)
//     or produced by a registered factory method
//
// The container is taught each type explicitly through a TypeSpec. There is no
// reflection-based injection and no automatic graph resolution; the registry is
// read-only and supplied by the caller.
//
// Failures that a configuration parser cannot see (a reference to a bean that
// does not exist, a value of the wrong type, a malformed boolean) surface here,
// as typed errors:
//
//	svc, err := di.MaterializeAs[*engine.FlowBuilderServices](c, def)
//	var missing di.MissingBeanError
//	if errors.As(err, &missing) { ... }
//
// Import
//
//	"github.com/sghaida/flowsvc/di"
package di
