package report

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"

	"github.com/govern-lab/riskframe/pkg/domain/model"
)

const registerSheet = "Risk Register"

// RiskRegisterFilename is the attachment filename of the register export
const RiskRegisterFilename = "risk-register.xlsx"

// RenderRiskRegister encodes the register rows as a single-sheet XLSX
// workbook with one column per row field.
func RenderRiskRegister(rows []model.RiskRegisterRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // buffer already extracted on success

	f.SetSheetName("Sheet1", registerSheet)

	header := []interface{}{
		"assessmentTitle", "aiSystemName", "frameworkSection", "subcategoryId",
		"outcome", "currentImplementation", "riskLevel", "assessor",
		"lastReviewed", "notes",
	}
	if err := f.SetSheetRow(registerSheet, "A1", &header); err != nil {
		return nil, goerr.Wrap(err, "failed to write register header")
	}

	for i, row := range rows {
		lastReviewed := ""
		if !row.LastReviewed.IsZero() {
			lastReviewed = row.LastReviewed.Format("2006-01-02")
		}
		values := []interface{}{
			row.AssessmentTitle,
			row.AISystemName,
			row.FrameworkSection,
			row.SubcategoryID,
			row.Outcome,
			row.CurrentImplementation.String(),
			row.RiskLevel.String(),
			row.Assessor,
			lastReviewed,
			row.Notes,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(registerSheet, cell, &values); err != nil {
			return nil, goerr.Wrap(err, "failed to write register row", goerr.V("cell", cell))
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode risk register workbook")
	}
	return buf.Bytes(), nil
}
