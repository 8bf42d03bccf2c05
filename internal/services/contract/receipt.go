package contract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"ahlan_office/internal/models"
	"ahlan_office/internal/utils"
)

const receiptFooter = "Ushbu kvitansiya to'lov qabul qilinganini tasdiqlaydi. Kvitansiyani saqlang."

// ReceiptText renders a single ad hoc payment as a printable plain-text
// receipt: header, object/apartment/client identification, amount, date,
// method label, optional note and the fixed footer disclaimer.
func ReceiptText(p models.UserPayment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "KVITANSIYA № %d\n", p.ID)
	fmt.Fprintf(&b, "Sana: %s\n\n", utils.FormatDate(p.Date))

	fmt.Fprintf(&b, "Obyekt: %s\n", orDash(p.ObjectName))
	fmt.Fprintf(&b, "Xonadon: %s\n", orDash(p.ApartmentInfo))
	fmt.Fprintf(&b, "Mijoz: %s\n\n", orDash(p.ClientName))

	fmt.Fprintf(&b, "To'lov summasi: %s so'm\n", utils.FormatAmount(p.Amount))
	fmt.Fprintf(&b, "To'lov usuli: %s\n", models.PaymentMethodLabel(p.Method))
	if note := strings.TrimSpace(p.Note); note != "" {
		fmt.Fprintf(&b, "Izoh: %s\n", note)
	}

	b.WriteString("\nQabul qildi:\t_______________\n")
	b.WriteString("To'lovchi:\t_______________\n\n")
	b.WriteString(receiptFooter + "\n")

	return b.String()
}

// ReceiptPDF renders the same receipt as a downloadable A5 PDF.
func ReceiptPDF(p models.UserPayment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("KVITANSIYA № %d", p.ID)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Sana: "+utils.FormatDate(p.Date)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(42, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
	}

	line("Obyekt:", orDash(p.ObjectName))
	line("Xonadon:", orDash(p.ApartmentInfo))
	line("Mijoz:", orDash(p.ClientName))
	pdf.Ln(2)
	line("To'lov summasi:", utils.FormatAmount(p.Amount)+" so'm")
	line("To'lov usuli:", models.PaymentMethodLabel(p.Method))
	if note := strings.TrimSpace(p.Note); note != "" {
		line("Izoh:", note)
	}

	pdf.Ln(8)
	line("Qabul qildi:", "_______________")
	line("To'lovchi:", "_______________")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, tr(receiptFooter), "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
