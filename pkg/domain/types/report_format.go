package types

import "github.com/m-mizutani/goerr/v2"

// ReportFormat represents the output encoding of a compliance report
type ReportFormat string

const (
	ReportFormatPDF   ReportFormat = "pdf"
	ReportFormatExcel ReportFormat = "excel"
	ReportFormatJSON  ReportFormat = "json"
)

// IsValid checks if the report format is valid
func (f ReportFormat) IsValid() bool {
	switch f {
	case ReportFormatPDF,
		ReportFormatExcel,
		ReportFormatJSON:
		return true
	default:
		return false
	}
}

// Ext returns the file extension for the report format
func (f ReportFormat) Ext() string {
	switch f {
	case ReportFormatPDF:
		return "pdf"
	case ReportFormatExcel:
		return "xlsx"
	case ReportFormatJSON:
		return "json"
	default:
		return ""
	}
}

// ContentType returns the MIME type for the report format
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportFormatPDF:
		return "application/pdf"
	case ReportFormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ReportFormatJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// String returns the string representation of the report format
func (f ReportFormat) String() string {
	return string(f)
}

// ParseReportFormat parses a string into a ReportFormat. An unsupported
// value is a client error, not a server fault.
func ParseReportFormat(s string) (ReportFormat, error) {
	format := ReportFormat(s)
	if !format.IsValid() {
		return "", goerr.New("unsupported report format", goerr.V("format", s))
	}
	return format, nil
}
