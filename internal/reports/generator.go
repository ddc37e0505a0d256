package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// Generator renders PDF/CSV reports from already-fetched data
type Generator struct{}

// NewGenerator creates a new report generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a report and returns the raw bytes
func (g *Generator) Generate(req CreateReportRequest, checkins []domain.MealCheckIn, wellness []domain.WellnessCheckIn, progress domain.UserProgress) ([]byte, error) {
	switch req.Format {
	case FormatPDF:
		return g.generatePDF(req, checkins, wellness, progress)
	case FormatCSV:
		return g.generateCSV(checkins)
	default:
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}
}

// generateCSV writes one row per meal check-in
func (g *Generator) generateCSV(checkins []domain.MealCheckIn) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "meal_type", "status", "planned_recipe_id", "notes"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, c := range checkins {
		recipeID := ""
		if c.PlannedRecipeID != nil {
			recipeID = *c.PlannedRecipeID
		}
		notes := ""
		if c.Notes != nil {
			notes = *c.Notes
		}

		row := []string{c.Date, string(c.MealType), string(c.Status), recipeID, notes}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// generatePDF renders a one-page summary plus a table of logged meals
func (g *Generator) generatePDF(req CreateReportRequest, checkins []domain.MealCheckIn, wellness []domain.WellnessCheckIn, progress domain.UserProgress) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Meal Plan Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", req.From, req.To))
	pdf.Ln(12)

	summary := g.calculateSummary(checkins, wellness)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Check-ins in period: %d", len(checkins)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Days with at least one check-in: %d", summary.DaysLogged))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Meals following the plan: %d", summary.FollowedPlan))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Current streak: %d days", progress.CurrentStreak))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Longest streak: %d days", progress.LongestStreak))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total healthy days: %d", progress.TotalHealthyDays))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Recipes completed: %d", progress.RecipesCompleted))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Average energy level: %s", formatFloat(summary.AvgEnergy)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Average mood: %s", formatFloat(summary.AvgMood)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Logged meals")
	pdf.Ln(8)

	g.drawCheckinsTable(pdf, checkins)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// Summary holds calculated summary statistics
type Summary struct {
	DaysLogged   int
	FollowedPlan int
	AvgEnergy    *float64
	AvgMood      *float64
}

func (g *Generator) calculateSummary(checkins []domain.MealCheckIn, wellness []domain.WellnessCheckIn) Summary {
	days := make(map[string]struct{})
	followed := 0
	for _, c := range checkins {
		days[c.Date] = struct{}{}
		if c.Status == domain.StatusFollowedPlan {
			followed++
		}
	}

	summary := Summary{
		DaysLogged:   len(days),
		FollowedPlan: followed,
	}

	if len(wellness) > 0 {
		var energy, mood int
		for _, entry := range wellness {
			energy += entry.EnergyLevel
			mood += entry.OverallMood
		}
		avgEnergy := float64(energy) / float64(len(wellness))
		avgMood := float64(mood) / float64(len(wellness))
		summary.AvgEnergy = &avgEnergy
		summary.AvgMood = &avgMood
	}

	return summary
}

// maxTableRows caps the PDF table so the report stays one page
const maxTableRows = 28

func (g *Generator) drawCheckinsTable(pdf *gofpdf.Fpdf, checkins []domain.MealCheckIn) {
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(28, 6, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(28, 6, "Meal", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(94, 6, "Recipe", "1", 0, "L", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	rows := checkins
	if len(rows) > maxTableRows {
		rows = rows[len(rows)-maxTableRows:]
	}
	for _, c := range rows {
		recipeID := "-"
		if c.PlannedRecipeID != nil {
			recipeID = *c.PlannedRecipeID
		}
		pdf.CellFormat(28, 6, c.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 6, string(c.MealType), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, string(c.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(94, 6, recipeID, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
