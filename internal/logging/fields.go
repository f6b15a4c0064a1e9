package logging

import "log/slog"

// Structured log field keys shared by every package.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldTool       = "tool"
	FieldTeam       = "team"
	FieldPosition   = "position"
	FieldSessionID  = "session_id"
	FieldAttempt    = "attempt"
	FieldError      = "error"
	FieldOutcome    = "outcome"
	FieldClientIP   = "client_ip"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
