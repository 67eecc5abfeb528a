package report

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/govern-lab/riskframe/pkg/domain/model"
	"github.com/govern-lab/riskframe/pkg/domain/types"
)

// Page-break thresholds per component, in points of remaining space
const (
	sectionHeaderThreshold = 100.0
	subcategoryThreshold   = 80.0
	noteLineThreshold      = 60.0
)

func renderPDF(in Input) ([]byte, error) {
	c := newCanvas()

	// Title block
	c.text(50, 18, "B", colorTitle, "NIST AI Risk Management Framework")
	c.advance(25)
	c.text(50, 16, "B", colorTitle, "Compliance Assessment Report")
	c.advance(35)

	// Assessment details
	for _, detail := range detailLines(in) {
		c.line(50, 12, "", colorBody, fmt.Sprintf("%s: %s", detail[0], detail[1]), 20)
	}
	c.advance(20)

	for _, fn := range types.AllFrameworkFunctions() {
		section := in.Assessment.Framework.Section(fn)
		renderPDFSection(c, fn, section)
	}

	data, err := c.output()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode PDF report")
	}
	return data, nil
}

func renderPDFSection(c *canvas, fn types.FrameworkFunction, section model.FrameworkSection) {
	c.ensureSpace(sectionHeaderThreshold)

	c.line(50, 14, "B", colorSection, fmt.Sprintf("%s Framework", strings.ToUpper(fn.String())), 25)

	status := "In Progress"
	if section.Completed {
		status = "Completed"
	}
	c.line(70, 11, "", colorBody, "Status: "+status, 20)

	for _, sub := range section.Subcategories {
		renderPDFSubcategory(c, sub)
	}
	c.advance(20)
}

func renderPDFSubcategory(c *canvas, sub model.SubcategoryRecord) {
	c.ensureSpace(subcategoryThreshold)

	c.line(90, 10, "", colorBody, fmt.Sprintf("%s: %s", sub.SubcategoryID, sub.Outcome), 15)

	implColor, ok := implementationColors[sub.Implementation.String()]
	if !ok {
		implColor = colorBody
	}
	c.line(110, 9, "", implColor, "Implementation: "+sub.Implementation.String(), 15)

	if sub.Notes != "" {
		for _, noteLine := range wrapText(sub.Notes, noteWrapWidth) {
			c.ensureSpace(noteLineThreshold)
			c.line(110, 8, "", colorNote, "Notes: "+noteLine, 12)
		}
	}
	c.advance(10)
}
