package logging

// Standardized field names for structured logging.
const (
	FieldFile        = "file_path"
	FieldOperation   = "operation"
	FieldDate        = "date"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldCount       = "count"
	FieldFormat      = "format"
	FieldOutputFile  = "output_file"
	FieldDuration    = "duration_ms"
	FieldDeleted     = "deleted"
	FieldReportCount = "report_count"
	FieldExportID    = "export_id"
)
