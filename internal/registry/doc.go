// Package registry provides the central "glue" for the plugin system.
//
// The Registry stores the registration record of every compiled-in plugin,
// keyed by the string identifiers used in manifests (e.g., "blur.gauss"), and
// the module descriptions derived from the plugin types. It also holds the
// parsed manifests that adjust titles, priorities and parameter metadata.
//
// During application startup, the registry is populated, manifests are
// overlaid, and the result is validated to ensure that the Go code and the
// public-facing manifests are in sync and that every declared parameter
// constraint can be coerced to its field type.
package registry
