package extract

import (
	"strings"

	"github.com/XDOOPAPP/ocr-service/internal/entity"
)

const invoiceQRMinFields = 9

// ParseInvoiceQR decodes the Vietnamese e-invoice pipe-delimited QR schema:
//
//	<form>|<serial>|<number>|<date>|<seller MST>|<seller name>|<buyer MST>|<buyer name>|<total>|<tax>|<payment>|<lookup>
//
// Payloads with fewer than 9 segments do not match the schema and yield nil.
// Textual fields are trimmed; empty segments become absent. The three amount
// fields go through NormalizeAmount. Pure function of its input.
func ParseInvoiceQR(raw string) *entity.VietnameseInvoiceQR {
	parts := strings.Split(raw, "|")
	if len(parts) < invoiceQRMinFields {
		return nil
	}

	return &entity.VietnameseInvoiceQR{
		InvoiceForm:   textField(parts, 0),
		InvoiceSerial: textField(parts, 1),
		InvoiceNumber: textField(parts, 2),
		InvoiceDate:   textField(parts, 3),
		SellerTaxCode: textField(parts, 4),
		SellerName:    textField(parts, 5),
		BuyerTaxCode:  textField(parts, 6),
		BuyerName:     textField(parts, 7),
		TotalAmount:   amountField(parts, 8),
		TaxAmount:     amountField(parts, 9),
		TotalPayment:  amountField(parts, 10),
		LookupCode:    textField(parts, 11),
	}
}

func textField(parts []string, i int) *string {
	if i >= len(parts) {
		return nil
	}
	s := strings.TrimSpace(parts[i])
	if s == "" {
		return nil
	}
	return &s
}

func amountField(parts []string, i int) *float64 {
	if i >= len(parts) {
		return nil
	}
	v, ok := NormalizeAmount(parts[i])
	if !ok {
		return nil
	}
	return &v
}
