package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	dom "Bluecroft/internal/domain"
)

// WriteUnderwritingMemo renders the case as a PDF memo: loan overview,
// borrower profiles, risk assessment, action plan.
func WriteUnderwritingMemo(w io.Writer, c dom.Case, now time.Time) error {
	if c.Metrics == nil || c.RiskReport == nil {
		return fmt.Errorf("case %s has no analysis to export", c.ID)
	}
	m, report := *c.Metrics, *c.RiskReport

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the translator keeps £ intact.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	// Header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(14, 165, 233)
	pdf.Text(20, 20, "Blue Croft Finance")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(20, 14)
	pdf.CellFormat(pageWidth-40, 6, "Underwriting Memo", "", 1, "R", false, 0, "")
	pdf.SetX(20)
	pdf.CellFormat(pageWidth-40, 6, now.Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.SetY(32)

	sectionTitle(pdf, "Executive Summary")
	bodyText(pdf, tr(report.Summary))

	sectionTitle(pdf, "Loan Overview")
	rows := [][2]string{
		{"Applicants", c.AllApplicantNames()},
		{"Address", c.LoanData.PropertyAddress},
		{"Loan Type", string(c.LoanData.LoanType)},
		{"Term", fmt.Sprintf("%d months", c.LoanData.TermMonths)},
		{"Loan Amount", currency(c.LoanData.LoanAmount)},
		{"Property Value", currency(c.LoanData.PropertyValue)},
		{"LTV", fmt.Sprintf("%.2f%%", m.LTV)},
		{"LTC", fmt.Sprintf("%.2f%%", m.LTC)},
		{"Gross Loan", currency(m.GrossLoan)},
		{"Exit Strategy", string(c.LoanData.ExitStrategy)},
		{"Risk Score", fmt.Sprintf("%d/100 - %s", report.Score, riskLabel(report.Score))},
	}
	pdf.SetTextColor(51, 65, 85)
	for _, row := range rows {
		pdf.SetX(20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 7, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(pageWidth-70, 7, tr(row[1]), "", "L", false)
	}
	pdf.Ln(4)

	sectionTitle(pdf, "Borrower Financial Profiles")
	for _, a := range c.LoanData.Applicants {
		name := a.Name
		if name == "" {
			name = "Unnamed Applicant"
		}
		pdf.SetX(20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(pageWidth-40, 7, tr(name), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetX(20)
		pdf.MultiCell(pageWidth-40, 6, tr(fmt.Sprintf(
			"Annual Income: %s   Monthly Expenses: %s   Net Assets: %s",
			currency(a.AnnualIncome), currency(a.MonthlyExpenses),
			currency(a.TotalAssets-a.TotalLiabilities))), "", "L", false)
		pdf.Ln(2)
	}

	sectionTitle(pdf, "Key Risks")
	bulletList(pdf, tr, report.Risks)
	sectionTitle(pdf, "Mitigations")
	bulletList(pdf, tr, report.Mitigations)

	sectionTitle(pdf, "Action Plan")
	for _, step := range report.NextSteps {
		mark := "[ ]"
		if c.IsTaskCompleted(step) {
			mark = "[x]"
		}
		pdf.SetX(20)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(pageWidth-40, 6, mark+" "+tr(step), "", "L", false)
	}

	return pdf.Output(w)
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetX(20)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(51, 65, 85)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetTextColor(0, 0, 0)
}

func bodyText(pdf *gofpdf.Fpdf, text string) {
	pageWidth, _ := pdf.GetPageSize()
	pdf.SetX(20)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(pageWidth-40, 6, text, "", "L", false)
	pdf.Ln(2)
}

func bulletList(pdf *gofpdf.Fpdf, tr func(string) string, items []string) {
	pageWidth, _ := pdf.GetPageSize()
	if len(items) == 0 {
		pdf.SetX(20)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(pageWidth-40, 6, "None recorded.", "", 1, "L", false, 0, "")
		return
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetX(20)
		pdf.MultiCell(pageWidth-40, 6, "- "+tr(item), "", "L", false)
	}
}

func riskLabel(score int) string {
	switch {
	case score >= 80:
		return "Low Risk (Excellent)"
	case score >= 60:
		return "Moderate Risk (Good)"
	case score >= 40:
		return "High Risk (Caution)"
	default:
		return "Critical Risk"
	}
}

func currency(v float64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	s := fmt.Sprintf("%d", int64(v))
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return neg + "£" + string(out)
}
