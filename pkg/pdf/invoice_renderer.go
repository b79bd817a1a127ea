package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"scrap-pickup/internal/models"
)

// InvoiceRenderer draws a one-page A4 invoice. It holds no state, so a
// single instance is shared across requests.
type InvoiceRenderer struct{}

func NewInvoiceRenderer() *InvoiceRenderer {
	return &InvoiceRenderer{}
}

// RenderInvoice produces the PDF bytes for a generated invoice. The booking
// supplies the line items; every monetary figure comes from the invoice
// record so the document always matches what was persisted.
func (r *InvoiceRenderer) RenderInvoice(invoice *models.Invoice, booking *models.Booking) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(invoice.InvoiceNumber, false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 10, "Scrap Pickup Invoice")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 6, fmt.Sprintf("Invoice: %s", invoice.InvoiceNumber))
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("Booking: %s", booking.ReferenceID))
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("Date: %s", invoice.CreatedAt.Format("02 Jan 2006")))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(95, 6, "Customer")
	doc.Cell(95, 6, "Vendor")
	doc.Ln(6)
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(95, 6, invoice.CustomerName)
	doc.Cell(95, 6, invoice.VendorName)
	doc.Ln(6)
	doc.Cell(95, 6, invoice.CustomerPhone)
	doc.Cell(95, 6, invoice.VendorPhone)
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("%s, %s, %s - %s", booking.Address, booking.District, booking.State, booking.Pincode))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 11)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(80, 8, "Item", "1", 0, "L", true, 0, "")
	doc.CellFormat(30, 8, "Quantity", "1", 0, "R", true, 0, "")
	doc.CellFormat(35, 8, "Rate", "1", 0, "R", true, 0, "")
	doc.CellFormat(35, 8, "Value", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 11)
	for _, item := range booking.Items {
		doc.CellFormat(80, 8, item.CategoryName, "1", 0, "L", false, 0, "")
		doc.CellFormat(30, 8, strconv.FormatFloat(item.Quantity, 'f', -1, 64), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 8, strconv.FormatFloat(item.Rate, 'f', 2, 64), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 8, strconv.FormatFloat(item.Value, 'f', 2, 64), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(145, 8, "Total Value", "", 0, "R", false, 0, "")
	doc.CellFormat(35, 8, invoice.TotalValue, "", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(145, 8, "Platform Fee", "", 0, "R", false, 0, "")
	doc.CellFormat(35, 8, invoice.PlatformFee, "", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(145, 8, "Net Payable", "", 0, "R", false, 0, "")
	doc.CellFormat(35, 8, invoice.NetAmount, "", 1, "R", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "I", 10)
	doc.Cell(0, 6, fmt.Sprintf("Payment mode: %s", invoice.PaymentMode))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf.RenderInvoice: %w", err)
	}
	return buf.Bytes(), nil
}
