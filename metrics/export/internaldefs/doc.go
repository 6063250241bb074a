// Package internaldefs holds the shared metric definitions consumed by the
// otel and prometheus exporters. It is internal to the export tree: both
// exporters must agree on names and help strings, and neither should own
// them.
package internaldefs
