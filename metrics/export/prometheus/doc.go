// Package prometheus renders estatekit metric snapshots in Prometheus text
// exposition format without pulling in a client library; the counter set is
// small and the format is stable.
package prometheus
