package internaldefs

import (
	estatekit "github.com/estateops/estatekit"
)

// CounterDef defines a public type used by estatekit APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   estatekit.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the session core.
var CounterDefs = []CounterDef{
	{ID: estatekit.MetricLoginSuccess, Name: "estatekit_login_success_total", Help: "Successful login operations."},
	{ID: estatekit.MetricLoginFailure, Name: "estatekit_login_failure_total", Help: "Failed login operations."},
	{ID: estatekit.MetricRegisterSuccess, Name: "estatekit_register_success_total", Help: "Successful register operations."},
	{ID: estatekit.MetricRegisterFailure, Name: "estatekit_register_failure_total", Help: "Failed register operations."},
	{ID: estatekit.MetricLogout, Name: "estatekit_logout_total", Help: "Logout operations."},
	{ID: estatekit.MetricRefreshSuccess, Name: "estatekit_refresh_success_total", Help: "Successful user refreshes."},
	{ID: estatekit.MetricRefreshFailure, Name: "estatekit_refresh_failure_total", Help: "Failed user refreshes."},
	{ID: estatekit.MetricRefreshSkipped, Name: "estatekit_refresh_skipped_total", Help: "User refreshes skipped because no token was present."},
	{ID: estatekit.MetricSessionRestored, Name: "estatekit_session_restored_total", Help: "Sessions restored from persisted storage."},
	{ID: estatekit.MetricSessionIntegrityFailure, Name: "estatekit_session_integrity_failure_total", Help: "Login responses rejected for missing required fields."},
	{ID: estatekit.MetricRequestSuccess, Name: "estatekit_request_success_total", Help: "Requests completing with a 2xx status."},
	{ID: estatekit.MetricRequestHTTPError, Name: "estatekit_request_http_error_total", Help: "Requests completing with a non-2xx status."},
	{ID: estatekit.MetricRequestNetworkError, Name: "estatekit_request_network_error_total", Help: "Requests failing at the transport layer."},
	{ID: estatekit.MetricResponseWrapped, Name: "estatekit_response_wrapped_total", Help: "Responses arriving double-wrapped in a data carrier."},
}

// EventsDroppedName is the counter name for dispatcher backpressure drops.
const EventsDroppedName = "estatekit_events_dropped_total"

// EventsDroppedHelp is an exported constant or variable used by the session core.
const EventsDroppedHelp = "Dropped session lifecycle events due to dispatcher backpressure."
