package interfaces

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	catalogue "loadprofile-cloud/internal/catalogue/domain"
	profile "loadprofile-cloud/internal/profile/domain"
)

// BuildProfilePDF renders a comparison report for the computed scenarios:
// a summary block, a bar chart of per-slot real power, and a per-appliance
// energy table for the full catalogue scenario.
func BuildProfilePDF(results []profile.ScenarioResult, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Daily Load Profile")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format(time.RFC3339)))
	pdf.Ln(8)

	// Scenario summary table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(45, 6, "Scenario", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Appliances", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Energy (kWh/day)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Peak (kW)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Peak Slot", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, result := range results {
		p := result.Profile
		pdf.CellFormat(45, 6, string(result.Scenario), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", p.ApplianceCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.3f", p.TotalDailyEnergyWh/1000), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.3f", p.PeakRealPowerW/1000), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, catalogue.SlotLabel(p.PeakRealSlot), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	drawSlotChart(pdf, results)

	// Per-appliance energy for the unfiltered scenario
	for _, result := range results {
		if result.Scenario != profile.ScenarioAll {
			continue
		}
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, "Appliance Energy (full catalogue)")
		pdf.Ln(7)
		pdf.CellFormat(70, 6, "Appliance", "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, "Priority", "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, "Energy (Wh/day)", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		for _, load := range result.Profile.Appliances {
			if pdf.GetY() > 270 {
				pdf.AddPage()
			}
			pdf.CellFormat(70, 5, load.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 5, string(load.Priority), "1", 0, "L", false, 0, "")
			pdf.CellFormat(45, 5, fmt.Sprintf("%.1f", load.DailyEnergyWh), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawSlotChart renders grouped bars of per-slot real power, one bar group
// per 2-hour interval, one shade per scenario.
func drawSlotChart(pdf *gofpdf.Fpdf, results []profile.ScenarioResult) {
	const (
		chartHeight = 50.0
		chartWidth  = 180.0
		originX     = 15.0
	)
	if len(results) == 0 {
		return
	}

	maxW := 0.0
	for _, result := range results {
		for _, slot := range result.Profile.Slots {
			if slot.RealPowerW > maxW {
				maxW = slot.RealPowerW
			}
		}
	}
	if maxW <= 0 {
		maxW = 1
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, "Real Power by Interval (W)")
	pdf.Ln(7)

	baseY := pdf.GetY() + chartHeight
	groupWidth := chartWidth / float64(catalogue.SlotCount)
	barWidth := (groupWidth - 2) / float64(len(results))
	shades := []int{60, 130, 200}

	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(originX, baseY, originX+chartWidth, baseY)
	for i, result := range results {
		shade := shades[i%len(shades)]
		pdf.SetFillColor(shade, shade, shade)
		for slot := 0; slot < catalogue.SlotCount; slot++ {
			h := chartHeight * result.Profile.Slots[slot].RealPowerW / maxW
			x := originX + float64(slot)*groupWidth + float64(i)*barWidth
			pdf.Rect(x, baseY-h, barWidth, h, "F")
		}
	}

	pdf.SetY(baseY + 1)
	pdf.SetFont("Arial", "", 6)
	for slot := 0; slot < catalogue.SlotCount; slot++ {
		pdf.SetX(originX + float64(slot)*groupWidth)
		pdf.CellFormat(groupWidth, 4, fmt.Sprintf("%02d", (slot*2)%24), "", 0, "C", false, 0, "")
	}
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 8)
	for i, result := range results {
		shade := shades[i%len(shades)]
		pdf.SetFillColor(shade, shade, shade)
		pdf.Rect(pdf.GetX()+2, pdf.GetY()+1, 3, 3, "F")
		pdf.SetX(pdf.GetX() + 6)
		pdf.CellFormat(40, 5, string(result.Scenario), "", 0, "L", false, 0, "")
	}
	pdf.Ln(7)
}

// BuildCatalogueXLSX renders a workbook with the catalogue rows, the
// per-slot series of every scenario, and a scenario summary sheet.
func BuildCatalogueXLSX(records []catalogue.ApplianceRecord, results []profile.ScenarioResult) ([]byte, error) {
	f := excelize.NewFile()
	catalogueSheet := "catalogue"
	seriesSheet := "series"
	summarySheet := "summary"
	f.SetSheetName("Sheet1", catalogueSheet)
	f.NewSheet(seriesSheet)
	f.NewSheet(summarySheet)

	headers := []string{"ID", "Name", "Quantity", "Rated Power (W)", "Duty Cycle (%)", "Power Factor", "Use Time (%)", "Priority", "Room", "Active Slots"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(catalogueSheet, cell, header)
	}
	for i, record := range records {
		row := i + 2
		_ = f.SetCellValue(catalogueSheet, fmt.Sprintf("A%d", row), record.ID)
		_ = f.SetCellValue(catalogueSheet, fmt.Sprintf("B%d", row), record.Name)
		_ = f.SetCellValue(catalogueSheet, fmt.Sprintf("C%d", row), record.Quantity)
		_ = f.SetCellValue(catalogueSheet, fmt.Sprintf("D%d", row), record.RatedPowerW)
		_ = f.SetCellValue(catalogueSheet, fmt.Sprintf("E%d", row), record.DutyCyclePct)
		_ = f.SetCellValue(catalogueSheet, fmt.Sprintf("F%d", row), record.PowerFactor)
		_ = f.SetCellValue(catalogueSheet, fmt.Sprintf("G%d", row), record.UseTimePct)
		_ = f.SetCellValue(catalogueSheet, fmt.Sprintf("H%d", row), string(record.Priority))
		_ = f.SetCellValue(catalogueSheet, fmt.Sprintf("I%d", row), record.Room)
		_ = f.SetCellValue(catalogueSheet, fmt.Sprintf("J%d", row), slotListString(record.ActiveSlots))
	}

	_ = f.SetCellValue(seriesSheet, "A1", "Scenario")
	_ = f.SetCellValue(seriesSheet, "B1", "Interval")
	_ = f.SetCellValue(seriesSheet, "C1", "Real Power (W)")
	_ = f.SetCellValue(seriesSheet, "D1", "Apparent Power (VA)")
	_ = f.SetCellValue(seriesSheet, "E1", "Energy (Wh)")
	row := 2
	for _, result := range results {
		for _, slot := range result.Profile.Slots {
			_ = f.SetCellValue(seriesSheet, fmt.Sprintf("A%d", row), string(result.Scenario))
			_ = f.SetCellValue(seriesSheet, fmt.Sprintf("B%d", row), slot.Label)
			_ = f.SetCellValue(seriesSheet, fmt.Sprintf("C%d", row), slot.RealPowerW)
			_ = f.SetCellValue(seriesSheet, fmt.Sprintf("D%d", row), slot.ApparentPowerVA)
			_ = f.SetCellValue(seriesSheet, fmt.Sprintf("E%d", row), slot.EnergyWh)
			row++
		}
	}

	_ = f.SetCellValue(summarySheet, "A1", "Scenario")
	_ = f.SetCellValue(summarySheet, "B1", "Appliances")
	_ = f.SetCellValue(summarySheet, "C1", "Daily Energy (Wh)")
	_ = f.SetCellValue(summarySheet, "D1", "Peak Real Power (W)")
	_ = f.SetCellValue(summarySheet, "E1", "Peak Real Slot")
	_ = f.SetCellValue(summarySheet, "F1", "Peak Apparent Power (VA)")
	_ = f.SetCellValue(summarySheet, "G1", "Peak Apparent Slot")
	for i, result := range results {
		p := result.Profile
		r := i + 2
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", r), string(result.Scenario))
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", r), p.ApplianceCount)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("C%d", r), p.TotalDailyEnergyWh)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("D%d", r), p.PeakRealPowerW)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("E%d", r), catalogue.SlotLabel(p.PeakRealSlot))
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("F%d", r), p.PeakApparentPowerVA)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("G%d", r), catalogue.SlotLabel(p.PeakApparentSlot))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func slotListString(mask catalogue.SlotMask) string {
	var buf bytes.Buffer
	for slot := 0; slot < catalogue.SlotCount; slot++ {
		if !mask[slot] {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(catalogue.SlotLabel(slot))
	}
	if buf.Len() == 0 {
		return "none"
	}
	return buf.String()
}
