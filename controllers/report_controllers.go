package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"github.com/lastortilhas/restaurant-api/models"
	"github.com/lastortilhas/restaurant-api/utils"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func (rc *ReportController) reservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := rc.DB.Order("date asc, time asc").Find(&reservations).Error
	return reservations, err
}

// ExportReservationsCSV streams every reservation as CSV (admin).
func (rc *ReportController) ExportReservationsCSV(c *gin.Context) {
	reservations, err := rc.reservations()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="reservations.csv"`)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"id", "name", "phone", "email", "date", "time", "guests", "status", "notes"})
	for _, r := range reservations {
		email := ""
		if r.Email != nil {
			email = *r.Email
		}
		notes := ""
		if r.Notes != nil {
			notes = *r.Notes
		}
		w.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			r.Phone,
			email,
			r.Date.Format("2006-01-02"),
			r.Time,
			strconv.Itoa(r.Guests),
			r.Status,
			notes,
		})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		utils.ErrorLogger.Printf("Failed to write reservations CSV: %v", err)
	}
}

// ExportReservationsPDF renders the reservation list as a PDF table
// (admin).
func (rc *ReportController) ExportReservationsPDF(c *gin.Context) {
	reservations, err := rc.reservations()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Las Tortilhas - Reservations")
	pdf.Ln(12)

	headers := []string{"#", "Name", "Phone", "Date", "Time", "Guests", "Status"}
	widths := []float64{12, 48, 36, 26, 18, 18, 28}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range reservations {
		row := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			r.Phone,
			r.Date.Format("2006-01-02"),
			r.Time,
			strconv.Itoa(r.Guests),
			r.Status,
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Ln(4)
	pdf.Cell(0, 8, fmt.Sprintf("%d reservations", len(reservations)))

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="reservations.pdf"`)
	if err := pdf.Output(c.Writer); err != nil {
		utils.ErrorLogger.Printf("Failed to render reservations PDF: %v", err)
	}
}
