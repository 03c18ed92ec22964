package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldUserAgent  = "user_agent"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"
	FieldReason      = "reason"

	FieldSource   = "source"
	FieldFile     = "file"
	FieldLines    = "lines"
	FieldAccepted = "accepted"
	FieldRejected = "rejected"
	FieldMerged   = "merged"
)
