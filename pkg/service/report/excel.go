package report

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"

	"github.com/govern-lab/riskframe/pkg/domain/types"
)

const (
	summarySheet   = "Summary"
	frameworkSheet = "Framework Details"
)

func renderExcel(in Input) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // buffer already extracted on success

	f.SetSheetName("Sheet1", summarySheet)
	for i, detail := range detailLines(in) {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &[]interface{}{detail[0], detail[1]}); err != nil {
			return nil, goerr.Wrap(err, "failed to write summary row", goerr.V("cell", cell))
		}
	}

	if _, err := f.NewSheet(frameworkSheet); err != nil {
		return nil, goerr.Wrap(err, "failed to create framework sheet")
	}

	header := []interface{}{
		"Framework Section", "Subcategory ID", "Outcome",
		"Implementation Level", "Notes", "Last Reviewed",
	}
	if err := f.SetSheetRow(frameworkSheet, "A1", &header); err != nil {
		return nil, goerr.Wrap(err, "failed to write framework header")
	}

	rowIdx := 2
	for _, fn := range types.AllFrameworkFunctions() {
		for _, sub := range in.Assessment.Framework.Section(fn).Subcategories {
			lastReviewed := ""
			if !sub.LastReviewed.IsZero() {
				lastReviewed = sub.LastReviewed.Format("2006-01-02")
			}
			row := []interface{}{
				strings.ToUpper(fn.String()),
				sub.SubcategoryID,
				sub.Outcome,
				sub.Implementation.String(),
				sub.Notes,
				lastReviewed,
			}
			cell := fmt.Sprintf("A%d", rowIdx)
			if err := f.SetSheetRow(frameworkSheet, cell, &row); err != nil {
				return nil, goerr.Wrap(err, "failed to write framework row", goerr.V("cell", cell))
			}
			rowIdx++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode XLSX report")
	}
	return buf.Bytes(), nil
}
