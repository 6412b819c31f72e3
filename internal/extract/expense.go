package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/XDOOPAPP/ocr-service/internal/entity"
)

const invoiceFallbackDescription = "Hóa đơn điện tử"

// ExpenseFromInvoice builds an expense record from a parsed e-invoice QR.
// Amount prefers the tax-inclusive total payment, then the pre-tax total.
// The category is left unset; classification only applies to free text.
func ExpenseFromInvoice(qr *entity.QRResult) entity.ExpenseData {
	inv := qr.Invoice

	var amount float64
	switch {
	case inv.TotalPayment != nil:
		amount = *inv.TotalPayment
	case inv.TotalAmount != nil:
		amount = *inv.TotalAmount
	}

	description := invoiceFallbackDescription
	if inv.SellerName != nil {
		description = *inv.SellerName
	}
	if inv.InvoiceNumber != nil {
		description += " - " + *inv.InvoiceNumber
	}

	spentAt := time.Now()
	if inv.InvoiceDate != nil {
		if t, ok := parseInvoiceDate(*inv.InvoiceDate); ok {
			spentAt = t
		}
	}

	return entity.ExpenseData{
		Amount:      amount,
		Description: description,
		SpentAt:     spentAt,
		Confidence:  qr.Confidence,
		Source:      entity.SourceQR,
	}
}

// parseInvoiceDate reads the invoice DD/MM/YYYY date field in local time.
func parseInvoiceDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}
