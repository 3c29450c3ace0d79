package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID     = "run_id"
	FieldSource    = "source"
	FieldBatchSize = "batch_size"
	FieldCommitted = "committed"
	FieldLinesRead = "lines_read"
	FieldUnparsed  = "unparsed"
	FieldIPAddress = "ip_address"
	FieldQueryName = "query"
	FieldStorePath = "store_path"
	FieldGeoDBPath = "geo_db_path"
)
