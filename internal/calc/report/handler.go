package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	radar "Radar/internal/calc/radar"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string      `json:"project"`
	Author  string      `json:"author"`
	Title   string      `json:"title"`
	Notes   string      `json:"notes"`
	Params  radar.Input `json:"params"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"radar-report.pdf\"")
	if err := Write(w, input, time.Now()); err != nil {
		if errors.Is(err, radar.ErrNonFinite) {
			w.Header().Del("Content-Disposition")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Printf("report: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// Write evaluates input.Params and renders the report as PDF into out.
func Write(out io.Writer, input Input, now time.Time) error {
	if input.Title == "" {
		input.Title = "Radar Range Equation Report"
	}
	p := radar.New(input.Params)
	ev := p.Evaluate()
	if err := radar.CheckFinite(ev.Params, ev.HorBeamwidth); err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(80, 7, "Quantity", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, "Value", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Unit", "1", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, f := range radar.Fields {
		v, _ := (*radar.Parameters)(&ev.Params).Get(f.Name)
		row(pdf, tr(f.Label), v, tr(f.Unit))
	}
	row(pdf, "Horizontal beamwidth", ev.HorBeamwidth, "deg")
	pdf.Ln(4)

	if len(ev.Skipped) > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Not derivable from the inputs: %v", ev.Skipped))
		pdf.Ln(8)
	}
	pdf.MultiCell(0, 6, "Gain is tabulated as log10 of the linear gain. Peak power is in the unit of the minimum detectable signal.", "", "L", false)
	if input.Notes != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}
	return pdf.Output(out)
}

func row(pdf *gofpdf.Fpdf, label string, v *float64, unit string) {
	val := "-"
	if v != nil {
		val = strconv.FormatFloat(*v, 'g', 6, 64)
	}
	pdf.CellFormat(80, 7, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, val, "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, unit, "1", 1, "L", false, 0, "")
}
