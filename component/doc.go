// Package component defines the lifecycle contract shared by the long-lived
// pieces of a caption daemon: the session registry, the telemetry
// providers, and anything cmd/captiond wires around them.
//
// Components are registered in dependency order with a Registry, started in
// that order and stopped in reverse.
//
// # Interfaces
//
//   - Component: Start/Stop plus Health
//   - Describable: optional one-line startup summary
package component
