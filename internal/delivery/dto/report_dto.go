package dto

// ReportTable is the flat, ordered record set handed to the reporting
// collaborator. The core never formats or prints it.
type ReportTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}
