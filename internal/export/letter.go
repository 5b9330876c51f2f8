package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// WriteRequestLetter renders a formatted letter asking the applicant to
// supply the listed items. At least one non-empty item is required.
func WriteRequestLetter(w io.Writer, applicantName string, items []string, address string, now time.Time) error {
	var requested []string
	for _, it := range items {
		if it != "" {
			requested = append(requested, it)
		}
	}
	if len(requested) == 0 {
		return fmt.Errorf("letter needs at least one request item")
	}
	if applicantName == "" {
		applicantName = "Applicant"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(14, 165, 233)
	pdf.Text(20, 20, "Blue Croft Finance")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.Text(20, 26, "Specialist Bridging & Development Lending")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 40)
	pdf.CellFormat(0, 6, now.Format("2 January 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetX(20)
	pdf.CellFormat(0, 6, tr(applicantName), "", 1, "L", false, 0, "")
	if address != "" {
		pdf.SetX(20)
		pdf.MultiCell(pageWidth-40, 6, tr("Re: "+address), "", "L", false)
	}
	pdf.Ln(6)

	pdf.SetX(20)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Outstanding Requirements - Loan Application", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(20)
	pdf.MultiCell(pageWidth-40, 6, tr(fmt.Sprintf(
		"Dear %s,\n\nThank you for your bridging finance application. To progress your case to credit committee, we require the following item(s):",
		applicantName)), "", "L", false)
	pdf.Ln(3)

	for i, item := range requested {
		pdf.SetX(25)
		pdf.MultiCell(pageWidth-50, 6, tr(fmt.Sprintf("%d. %s", i+1, item)), "", "L", false)
	}
	pdf.Ln(3)

	pdf.SetX(20)
	pdf.MultiCell(pageWidth-40, 6,
		"Please supply these at your earliest convenience so we can keep your completion date on track. "+
			"If anything is unclear, your case manager will be happy to help.", "", "L", false)
	pdf.Ln(8)

	pdf.SetX(20)
	pdf.CellFormat(0, 6, "Yours sincerely,", "", 1, "L", false, 0, "")
	pdf.Ln(6)
	pdf.SetX(20)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Underwriting Team", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(20)
	pdf.CellFormat(0, 6, "Blue Croft Finance", "", 1, "L", false, 0, "")

	return pdf.Output(w)
}
