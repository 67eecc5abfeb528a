// Package report renders a scored assessment into one of three output
// encodings: a paginated PDF document, a multi-sheet XLSX workbook, or a
// JSON snapshot. Rendering is stateless; concurrent renders share nothing.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

// reportType identifies the report family in generated metadata
const reportType = "NIST AI RMF Compliance Report"

// Input is the fully resolved content of one report. All three encodings
// render the same logical fields.
type Input struct {
	Assessment   *model.Assessment
	Assessor     *model.User
	Organization *model.Organization
	GeneratedAt  time.Time
}

// Render encodes the input in the requested format. No partial output is
// returned on failure.
func Render(in Input, format types.ReportFormat) ([]byte, error) {
	if in.Assessment == nil {
		return nil, goerr.New("assessment is required for report rendering")
	}

	switch format {
	case types.ReportFormatPDF:
		return renderPDF(in)
	case types.ReportFormatExcel:
		return renderExcel(in)
	case types.ReportFormatJSON:
		return renderJSON(in)
	default:
		return nil, goerr.New("unsupported report format", goerr.V("format", format))
	}
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// Filename returns the attachment filename for a report on the given
// assessment title: spaces become hyphens, letters are lowercased.
func Filename(title string, format types.ReportFormat) string {
	slug := strings.ToLower(whitespacePattern.ReplaceAllString(title, "-"))
	return fmt.Sprintf("compliance-report-%s.%s", slug, format.Ext())
}

// detailLines returns the eight assessment detail lines shared by the PDF
// and XLSX encodings, in presentation order.
func detailLines(in Input) [][2]string {
	a := in.Assessment
	return [][2]string{
		{"Assessment Title", a.Title},
		{"AI System", a.AISystem.Name},
		{"Organization", in.Organization.Name},
		{"Assessor", in.Assessor.FullName()},
		{"Overall Status", a.OverallStatus.String()},
		{"Overall Risk Score", fmt.Sprintf("%d%%", a.OverallRiskScore)},
		{"Created Date", a.CreatedAt.Format("2006-01-02")},
		{"Last Updated", a.UpdatedAt.Format("2006-01-02")},
	}
}
