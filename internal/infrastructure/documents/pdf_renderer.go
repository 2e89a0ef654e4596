package documents

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

const dateLayout = "02/01/2006 15:04"

// PDFRenderer renders a service order as a printable A4 document: header
// with the order number, client block, equipment block, service description
// and the usage-line table.
type PDFRenderer struct{}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderOrder(_ context.Context, order entities.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	r.writeHeader(pdf, order)
	r.writeClientInfo(pdf, order)
	r.writeEquipmentInfo(pdf, order)
	r.writeServiceDescription(pdf, order)
	r.writeUsageLines(pdf, order)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render order %s: %w", order.Number, err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) writeHeader(pdf *gofpdf.Fpdf, order entities.Order) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "SERVICE ORDER", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "No. "+order.Number, "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func (r *PDFRenderer) writeClientInfo(pdf *gofpdf.Fpdf, order entities.Order) {
	r.sectionTitle(pdf, "CLIENT INFORMATION")
	r.field(pdf, "Name", order.ClientName)
	r.field(pdf, "Document", order.ClientDocument)
	r.field(pdf, "Phone", order.ClientPhone)
	r.field(pdf, "Address", order.ClientAddress)
	pdf.Ln(4)
}

func (r *PDFRenderer) writeEquipmentInfo(pdf *gofpdf.Fpdf, order entities.Order) {
	r.sectionTitle(pdf, "EQUIPMENT INFORMATION")
	r.field(pdf, "Equipment", order.Equipment)
	r.field(pdf, "Brand", order.Brand)
	r.field(pdf, "Model", order.Model)
	r.field(pdf, "Serial number", order.SerialNumber)
	pdf.Ln(4)
}

func (r *PDFRenderer) writeServiceDescription(pdf *gofpdf.Fpdf, order entities.Order) {
	r.sectionTitle(pdf, "SERVICE DESCRIPTION")
	r.field(pdf, "Opened at", order.OpenedAt.Format(dateLayout))
	if order.ClosedAt != nil {
		r.field(pdf, "Closed at", order.ClosedAt.Format(dateLayout))
	}
	r.field(pdf, "Status", string(order.Status))
	r.field(pdf, "Reported problem", order.ProblemDescription)
	if order.Resolution != "" {
		r.field(pdf, "Resolution", order.Resolution)
	}
	r.field(pdf, "Total amount", "R$ "+order.TotalAmount.StringFixed(2))
	pdf.Ln(4)
}

func (r *PDFRenderer) writeUsageLines(pdf *gofpdf.Fpdf, order entities.Order) {
	if len(order.UsageLines) == 0 {
		return
	}

	r.sectionTitle(pdf, "PARTS / PRODUCTS USED")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 7, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Quantity", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Line total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range order.UsageLines {
		pdf.CellFormat(80, 7, line.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, strconv.Itoa(line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, "R$ "+line.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, "R$ "+line.LineTotal.StringFixed(2), "1", 1, "R", false, 0, "")
	}
}

func (r *PDFRenderer) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func (r *PDFRenderer) field(pdf *gofpdf.Fpdf, label, value string) {
	pdf.MultiCell(0, 6, label+": "+value, "", "L", false)
}
