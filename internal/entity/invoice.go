package entity

// VietnameseInvoiceQR is the fixed 12-position pipe-delimited schema carried by
// Vietnamese e-invoice QR payloads:
// form|serial|number|date|sellerTax|sellerName|buyerTax|buyerName|total|tax|payment|lookup
// Any subset of fields may be absent.
type VietnameseInvoiceQR struct {
	InvoiceForm   *string  `json:"invoiceForm,omitempty"`
	InvoiceSerial *string  `json:"invoiceSerial,omitempty"`
	InvoiceNumber *string  `json:"invoiceNumber,omitempty"`
	InvoiceDate   *string  `json:"invoiceDate,omitempty"`
	SellerTaxCode *string  `json:"sellerTaxCode,omitempty"`
	SellerName    *string  `json:"sellerName,omitempty"`
	BuyerTaxCode  *string  `json:"buyerTaxCode,omitempty"`
	BuyerName     *string  `json:"buyerName,omitempty"`
	TotalAmount   *float64 `json:"totalAmount,omitempty"`
	TaxAmount     *float64 `json:"taxAmount,omitempty"`
	TotalPayment  *float64 `json:"totalPayment,omitempty"`
	LookupCode    *string  `json:"lookupCode,omitempty"`
}

// QRResult is a decoded QR payload. Invoice is nil when the payload did not
// match the invoice schema; the pipeline then falls back to OCR.
type QRResult struct {
	RawData    string               `json:"rawData"`
	Confidence float64              `json:"confidence"`
	Invoice    *VietnameseInvoiceQR `json:"parsedData,omitempty"`
}
