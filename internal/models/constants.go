package models

// Ledger file layout
const (
	DefaultLedgerFile = "finance_data.csv"
	ColumnDate        = "date"
	ColumnAmount      = "amount"
	ColumnCategory    = "category"
	ColumnDescription = "description"
)

// Columns is the canonical header row of the ledger file
var Columns = []string{ColumnDate, ColumnAmount, ColumnCategory, ColumnDescription}

// File permissions
const (
	PermissionLedgerFile = 0644
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
