package contract

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"ahlan_office/internal/models"
	"ahlan_office/internal/services/installment"
	"ahlan_office/internal/utils"
)

// ErrNoDocumentForReservation: a reservation has no binding sale terms yet,
// so only a receipt is produced for it.
var ErrNoDocumentForReservation = errors.New("contract: reservation produces a receipt, not a contract document")

const documentSheet = "Shartnoma"

// Document renders the downloadable contract as an XLSX workbook with the
// same content as Text: centered bold title, heading rows, the schedule
// table for installment sales and a signature block at the bottom.
func Document(in Input) ([]byte, error) {
	if in.Terms.PaymentType == models.PaymentReservation {
		return nil, ErrNoDocumentForReservation
	}
	if res := models.ValidateClient(in.Client); !res.OK() {
		return nil, errors.New(res.Error())
	}
	if strings.TrimSpace(in.Apartment.RoomNumber) == "" {
		return nil, errors.New("kvartira raqami ko'rsatilmagan")
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", documentSheet)
	_ = f.SetColWidth(documentSheet, "A", "A", 6)
	_ = f.SetColWidth(documentSheet, "B", "C", 34)
	_ = f.SetColWidth(documentSheet, "D", "D", 20)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	headingStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, err
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "justify", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	row := 1
	set := func(col string, v any) {
		_ = f.SetCellValue(documentSheet, fmt.Sprintf("%s%d", col, row), v)
	}
	styleRow := func(style int) {
		cell := fmt.Sprintf("A%d", row)
		_ = f.SetCellStyle(documentSheet, cell, cell, style)
	}
	heading := func(text string) {
		set("A", text)
		styleRow(headingStyle)
		row++
	}
	body := func(text string) {
		set("A", text)
		_ = f.MergeCell(documentSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row))
		styleRow(bodyStyle)
		row++
	}

	_ = f.MergeCell(documentSheet, "A1", "D1")
	set("A", fmt.Sprintf("SHARTNOMA № %d", in.ReferenceID))
	styleRow(titleStyle)
	row++
	_ = f.MergeCell(documentSheet, "A2", "D2")
	set("A", utils.FormatDateLong(now))
	styleRow(titleStyle)
	row += 2

	body(fmt.Sprintf("Sotuvchi: %q MChJ", sellerName(in.Apartment)))
	body(fmt.Sprintf("Xaridor: %s, tel: %s", in.Client.FullName, in.Client.Phone))
	row++

	heading("1. SHARTNOMA PREDMETI")
	body(apartmentLine(in.Apartment))
	row++

	heading("2. SHARTNOMA SUMMASI VA TO'LOV TARTIBI")
	body(fmt.Sprintf("Shartnoma summasi: %s so'm", utils.FormatAmount(in.Terms.TotalAmount)))
	body(fmt.Sprintf("To'lov turi: %s", in.Terms.PaymentType.Label()))

	switch in.Terms.PaymentType {
	case models.PaymentCash:
		body(fmt.Sprintf("Umumiy summa %s kuni to'liq to'lanadi", utils.FormatDate(in.Terms.StartDate)))
	case models.PaymentMortgage:
		body(fmt.Sprintf("Boshlang'ich to'lov: %s so'm", utils.FormatAmount(in.Terms.InitialPayment)))
		bank := strings.TrimSpace(in.Terms.BankName)
		if bank == "" {
			bank = models.UnknownLabel
		}
		body(fmt.Sprintf("Qolgan summa %q banki ipoteka krediti hisobidan to'lanadi", bank))
	case models.PaymentInstallment:
		body(fmt.Sprintf("Boshlang'ich to'lov: %s so'm (%s kuni)",
			utils.FormatAmount(in.Terms.InitialPayment), utils.FormatDate(in.Terms.StartDate)))
		if monthly, reason := installment.MonthlyPayment(in.Terms); reason == "" {
			body(fmt.Sprintf("Oylik to'lov: %s so'm, har oyning %d-sanasigacha",
				utils.FormatAmount(monthly), in.Terms.DueDayOfMonth))
		}
		row++
		scheduleTable(f, headingStyle, &row, in.Schedule)
	}
	row++

	heading("TOMONLARNING IMZOLARI")
	set("A", "Sotuvchi:")
	set("B", "_______________")
	row++
	set("A", "Xaridor:")
	set("B", "_______________")
	set("C", utils.ShortName(in.Client.FullName))
	row++

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scheduleTable(f *excelize.File, headerStyle int, row *int, schedule []models.ScheduleEntry) {
	if len(schedule) == 0 {
		return
	}

	r := *row
	_ = f.SetCellValue(documentSheet, fmt.Sprintf("A%d", r), "№")
	_ = f.SetCellValue(documentSheet, fmt.Sprintf("B%d", r), "To'lov sanasi")
	_ = f.SetCellValue(documentSheet, fmt.Sprintf("C%d", r), "Summa (so'm)")
	_ = f.SetCellStyle(documentSheet, fmt.Sprintf("A%d", r), fmt.Sprintf("C%d", r), headerStyle)
	r++

	for _, e := range schedule {
		_ = f.SetCellValue(documentSheet, fmt.Sprintf("A%d", r), e.MonthIndex)
		_ = f.SetCellValue(documentSheet, fmt.Sprintf("B%d", r), utils.FormatDate(e.DueDate))
		_ = f.SetCellValue(documentSheet, fmt.Sprintf("C%d", r), utils.FormatAmount(e.Amount))
		r++
	}
	*row = r
}

func apartmentLine(a models.Apartment) string {
	line := fmt.Sprintf("%s-xonadon", a.RoomNumber)
	if a.Rooms > 0 {
		line += fmt.Sprintf(", %d xonali", a.Rooms)
	}
	if a.Floor > 0 {
		line += fmt.Sprintf(", %d-qavat", a.Floor)
	}
	if a.Area.Sign() > 0 {
		line += fmt.Sprintf(", %s m²", a.Area.StringFixed(1))
	}
	return line
}
