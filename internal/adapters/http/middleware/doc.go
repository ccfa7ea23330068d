// Package middleware holds the inbound request pipeline of the task API.
// bootstrap installs it in this order, outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → chi Timeout → routes
//
// Recovery, OpenTelemetry and Logging share one status recorder per request.
package middleware
