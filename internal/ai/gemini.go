package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	dom "Bluecroft/internal/domain"
)

const defaultModel = "gemini-2.5-flash"

const systemInstructionParser = `You are a specialized document extraction AI for Blue Croft Finance.
Your job is to extract loan application details from documents (PDFs, images) accurately.
You are capable of performing OCR on scanned documents and images.
You may receive multiple files (e.g., Application Form, Bank Statements, Credit Report). Consolidate the information.
Identify ALL applicants involved.
If a field is not found, make a reasonable estimate based on context or return 0/empty string.
Always return JSON.`

const systemInstructionUnderwriter = `You are a senior credit underwriter at Blue Croft Finance.
Analyze the provided loan metrics and data. Provide a professional, risk-averse assessment.
Focus strictly on the viability of the Exit Strategy.
If the exit is 'Refinance', critically assess if the aggregated income supports it.
If the exit is 'Sale', assess the LTV buffer.

You MUST also provide a specific list of 'nextSteps' for the case manager/employee.
These steps should explicitly include:
1. Requesting information on existing loans (if any).
2. Performing Credit Bureau searches (Credit Score/History).
3. Conducting Bankruptcy & Insolvency searches.
4. Specific document requests relevant to this specific deal (e.g., Schedule of Works, Proof of Funds, Valuation Report).`

// Gemini implements Advisor against the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini dials the Gemini backend with the given API key.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Gemini{client: client, model: model}, nil
}

// ParseDocuments extracts consolidated loan data from uploaded files.
func (g *Gemini) ParseDocuments(ctx context.Context, files []dom.UploadedFile) (ParsedLoanData, error) {
	parts := make([]*genai.Part, 0, len(files)+1)
	for _, f := range files {
		data, err := base64.StdEncoding.DecodeString(f.Data)
		if err != nil {
			return ParsedLoanData{}, fmt.Errorf("%w: %s", ErrInvalidFile, f.Name)
		}
		parts = append(parts, genai.NewPartFromBytes(data, f.Type))
	}
	parts = append(parts, genai.NewPartFromText(`Extract the following fields from these documents (perform OCR if needed).
Consolidate data if multiple files are provided.
Fields:
- Applicants: Array of objects containing Name, Annual Income, Monthly Expenses, Total Assets, Total Liabilities for each person/entity.
- Loan Details: Loan Amount, Property Value, Purchase Price, Refurb Cost, Monthly Interest Rate, Term, Property Address, Loan Type (Bridging/Development/Refurbishment), Exit Strategy.`))

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstructionParser, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    parsedLoanDataSchema(),
		})
	if err != nil {
		return ParsedLoanData{}, fmt.Errorf("parse documents: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return ParsedLoanData{}, errors.New("empty response from model")
	}
	return SanitizeParsedLoanData([]byte(text)), nil
}

// AnalyzeRisk produces the underwriting assessment for the given data.
func (g *Gemini) AnalyzeRisk(ctx context.Context, data dom.LoanData, m dom.CalculatedMetrics) (dom.RiskReport, error) {
	var totalIncome, totalExpenses, totalAssets, totalLiabilities float64
	names := make([]string, 0, len(data.Applicants))
	for _, a := range data.Applicants {
		totalIncome += a.AnnualIncome
		totalExpenses += a.MonthlyExpenses
		totalAssets += a.TotalAssets
		totalLiabilities += a.TotalLiabilities
		name := a.Name
		if name == "" {
			name = "Unknown"
		}
		names = append(names, name)
	}

	prompt := fmt.Sprintf(`Analyze this bridging loan application:

-- Loan Details --
Applicants: %s
Loan Amount: %.0f
LTV: %.2f%%
Loan Type: %s

-- Exit Strategy --
Strategy: %s
Term: %d months

-- Consolidated Financial Profile (All Applicants) --
Total Annual Income: %.0f
Total Monthly Expenses: %.0f
Net Asset Position: %.0f

-- Metrics --
Gross Loan: %.0f

Provide a risk score (0-100), a summary focusing on the Exit Strategy, 3 key risks, 3 mitigations, and 4-5 actionable Next Steps for the employee.`,
		strings.Join(names, ", "), data.LoanAmount, m.LTV, data.LoanType,
		data.ExitStrategy, data.TermMonths,
		totalIncome, totalExpenses, totalAssets-totalLiabilities,
		m.GrossLoan)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstructionUnderwriter, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    riskReportSchema(),
		})
	if err != nil {
		return dom.RiskReport{}, fmt.Errorf("analyze risk: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return dom.RiskReport{}, errors.New("empty response from model")
	}
	return SanitizeRiskReport([]byte(text)), nil
}

// ValueArea looks up the local property market with search grounding.
func (g *Gemini) ValueArea(ctx context.Context, address string) (dom.AreaValuation, error) {
	prompt := fmt.Sprintf(`Search for the average property prices and recent sold prices in the area of: %s.
Provide a concise summary of the local property market values, mentioning typical price ranges for similar properties if possible.`, address)

	// Structured JSON output is not allowed alongside the search tool.
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		})
	if err != nil {
		return dom.AreaValuation{}, fmt.Errorf("area valuation: %w", err)
	}

	out := dom.AreaValuation{Summary: resp.Text()}
	if out.Summary == "" {
		out.Summary = "No summary available."
	}
	seen := map[string]bool{}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || seen[chunk.Web.URI] {
				continue
			}
			seen[chunk.Web.URI] = true
			title := chunk.Web.Title
			if title == "" {
				title = "Source"
			}
			out.Sources = append(out.Sources, dom.ValuationSource{Title: title, URI: chunk.Web.URI})
		}
	}
	return out, nil
}

// Answer responds to a case-manager question with the case as context.
func (g *Gemini) Answer(ctx context.Context, question string, cc ChatContext) (string, error) {
	var ltv float64
	if cc.Metrics != nil {
		ltv = cc.Metrics.LTV
	}
	score, nextSteps, summary := "N/A", "None", "Not generated yet"
	if cc.RiskReport != nil {
		score = fmt.Sprintf("%d", cc.RiskReport.Score)
		if len(cc.RiskReport.NextSteps) > 0 {
			nextSteps = strings.Join(cc.RiskReport.NextSteps, ", ")
		}
		if cc.RiskReport.Summary != "" {
			summary = cc.RiskReport.Summary
		}
	}
	names := make([]string, 0, len(cc.LoanData.Applicants))
	for _, a := range cc.LoanData.Applicants {
		names = append(names, a.Name)
	}

	prompt := fmt.Sprintf(`You are an AI Assistant for Blue Croft Finance.
You are helping an employee analyze a loan.

Current Data:
- Applicants: %s
- Loan: %.0f
- Address: %s
- LTV: %.2f%%
- Risk Score: %s
- Exit: %s
- Next Steps: %s
- Files Uploaded: %s

Previous Analysis Summary: %s

User Question: "%s"

Answer concisely and professionally. If the user asks about specific details not in the summary, explain that you are estimating based on the provided fields or suggest where to look.`,
		strings.Join(names, ", "), cc.LoanData.LoanAmount, cc.LoanData.PropertyAddress,
		ltv, score, cc.LoanData.ExitStrategy, nextSteps, strings.Join(cc.FileNames, ", "),
		summary, question)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	if resp.Text() == "" {
		return "I couldn't generate an answer.", nil
	}
	return resp.Text(), nil
}

func riskReportSchema() *genai.Schema {
	stringArray := &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"score":       {Type: genai.TypeNumber},
			"summary":     {Type: genai.TypeString},
			"risks":       stringArray,
			"mitigations": stringArray,
			"nextSteps":   stringArray,
		},
	}
}

func parsedLoanDataSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"applicants": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":             {Type: genai.TypeString},
						"annualIncome":     {Type: genai.TypeNumber},
						"monthlyExpenses":  {Type: genai.TypeNumber},
						"totalAssets":      {Type: genai.TypeNumber},
						"totalLiabilities": {Type: genai.TypeNumber},
					},
				},
			},
			"loanAmount":          {Type: genai.TypeNumber},
			"propertyValue":       {Type: genai.TypeNumber},
			"purchasePrice":       {Type: genai.TypeNumber},
			"refurbCost":          {Type: genai.TypeNumber},
			"interestRateMonthly": {Type: genai.TypeNumber},
			"termMonths":          {Type: genai.TypeNumber},
			"propertyAddress":     {Type: genai.TypeString},
			"loanType": {Type: genai.TypeString, Enum: []string{
				string(dom.LoanBridging), string(dom.LoanDevelopment), string(dom.LoanRefurbishment),
			}},
			"exitStrategy": {Type: genai.TypeString, Enum: []string{
				string(dom.ExitSale), string(dom.ExitRefinance), string(dom.ExitDevelopmentExit),
				string(dom.ExitCashSettlement), string(dom.ExitOther),
			}},
		},
		Required: []string{"loanAmount", "propertyValue"},
	}
}
