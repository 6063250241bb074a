// Package otel bridges estatekit metric snapshots into an OpenTelemetry
// meter via observable counters. The exporter pulls a snapshot on every
// collection; the core never pushes.
package otel
