package handlers

import (
	"bytes"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"backend/models"
	"backend/repository"
)

// GenerateQuotePDF streams a quote as a PDF document
// @Summary      Generate quote PDF
// @Description  Build the printable quote document, with a QR verification code
// @Tags         Quotes
// @Produce      application/pdf
// @Param        Authorization  header  string  true  "Session ID"
// @Param        id             path    string  true  "Quote ID"
// @Success      200  "PDF file"
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func GenerateQuotePDF(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		quote, err := store.GetQuote(ctx, orgID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		project, err := store.GetProject(ctx, orgID, quote.ProjectID)
		if err != nil {
			respondError(c, err)
			return
		}
		if project.ClientName == "" {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Message: "le projet n'a pas de client renseigné"})
			return
		}
		settings, err := store.GetSettings(ctx, orgID)
		if err != nil {
			respondError(c, err)
			return
		}

		titleCaser := cases.Title(language.French)

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 18)
		pdf.CellFormat(0, 12, "DEVIS", "", 1, "C", false, 0, "")

		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, settings.CompanyName, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		if settings.CompanyAddress != "" {
			pdf.CellFormat(0, 6, settings.CompanyAddress, "", 1, "L", false, 0, "")
		}
		if settings.CompanySiret != "" {
			pdf.CellFormat(0, 6, "SIRET : "+settings.CompanySiret, "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)

		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, "Référence : "+quote.Reference, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, "Projet : "+project.Reference, "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, "Date : "+quote.CreatedAt.Format("02/01/2006"), "", 1, "L", false, 0, "")
		pdf.Ln(4)

		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, "Client", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, titleCaser.String(project.ClientName), "", 1, "L", false, 0, "")
		if project.Address != "" {
			pdf.CellFormat(0, 6, project.Address, "", 1, "L", false, 0, "")
		}
		if project.City != "" {
			pdf.CellFormat(0, 6, project.PostalCode+" "+project.City, "", 1, "L", false, 0, "")
		}
		pdf.Ln(6)

		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Montant : %.2f EUR HT", quote.Amount), "", 1, "L", false, 0, "")
		if quote.Notes != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, quote.Notes, "", "L", false)
		}

		// QR verification code so a printed quote can be checked back against
		// the system by its reference.
		qrPayload := fmt.Sprintf(`{"quote_id":%q,"reference":%q,"amount":%.2f}`, quote.ID, quote.Reference, quote.Amount)
		qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
		if err == nil {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("quote-qr", opts, bytes.NewReader(qrPNG))
			pdf.ImageOptions("quote-qr", 160, 250, 35, 35, false, opts, 0, "")
		}

		pdf.SetY(-20)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 5, "Devis valable 30 jours à compter de sa date d'émission.", "", 1, "C", false, 0, "")

		if pdf.Err() {
			respondError(c, pdf.Error())
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "Devis-"+quote.ID+".pdf"))
		c.Header("Content-Type", "application/pdf")
		if err := pdf.Output(c.Writer); err != nil {
			respondError(c, err)
		}
	}
}
