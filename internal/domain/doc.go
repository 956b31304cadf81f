// Package domain contains the core model for kml2waypoints.
//
// The domain is I/O-agnostic: it does not read files, parse YAML or talk to
// the terminal. Infra/adapters map into/from these types.
package domain
