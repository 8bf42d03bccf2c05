package contract

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"ahlan_office/internal/models"
	"ahlan_office/internal/services/installment"
)

func sampleInput(pt models.PaymentType) Input {
	terms := models.SaleTerms{
		TotalAmount:    decimal.NewFromInt(120_000_000),
		InitialPayment: decimal.NewFromInt(20_000_000),
		DurationMonths: 10,
		DueDayOfMonth:  15,
		PaymentType:    pt,
		StartDate:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		BankName:       "Ipoteka Bank",
	}
	if pt == models.PaymentReservation {
		deadline := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		terms.ReservationDeadline = &deadline
	}

	var schedule []models.ScheduleEntry
	if pt == models.PaymentInstallment {
		schedule, _ = installment.Schedule(terms)
	}

	return Input{
		ReferenceID: 417,
		Apartment: models.Apartment{
			ID:         9,
			ObjectName: "Ahlan House 2",
			RoomNumber: "45",
			Rooms:      3,
			Floor:      4,
			Area:       decimal.NewFromFloat(72.5),
			Price:      decimal.NewFromInt(130_000_000),
			Status:     models.StatusFree,
		},
		Client: models.Client{
			ID:       12,
			FullName: "Aliyev Vali G'anievich",
			Phone:    "+998901234567",
			Address:  "Toshkent sh., Chilonzor t.",
		},
		Terms:    terms,
		Schedule: schedule,
		Now:      time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestText_Installment(t *testing.T) {
	got := Text(sampleInput(models.PaymentInstallment))

	if IsErrorText(got) {
		t.Fatalf("unexpected error text: %s", got)
	}
	for _, want := range []string{
		"SHARTNOMA № 417",
		"Aliyev Vali G'anievich",
		"Muddatli to'lov",
		"Boshlang'ich to'lov: 20 000 000 so'm",
		"10 oy davomida",
		"har oyning 15-sanasigacha",
		"oyiga 10 000 000 so'mdan",
		"Qolgan qarz ulushi: 83.3%",
		"TO'LOV JADVALI",
		"1. 15.02.2024",
		"10. 15.11.2024",
		"Kelishilgan chegirma: 7.7%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("contract text missing %q\n---\n%s", want, got)
		}
	}
}

func TestText_ReservationHasNoScheduleButHasDeadline(t *testing.T) {
	got := Text(sampleInput(models.PaymentReservation))

	if strings.Contains(got, "TO'LOV JADVALI") {
		t.Errorf("reservation text must not contain a schedule section:\n%s", got)
	}
	if !strings.Contains(got, "Band qilish muddati: 01.02.2024") {
		t.Errorf("reservation text missing deadline:\n%s", got)
	}
}

func TestText_CashAndMortgage(t *testing.T) {
	cash := Text(sampleInput(models.PaymentCash))
	if !strings.Contains(cash, "10.01.2024 kuni to'liq to'lanadi") {
		t.Errorf("cash text missing immediate payment clause:\n%s", cash)
	}

	mort := Text(sampleInput(models.PaymentMortgage))
	if !strings.Contains(mort, "Ipoteka Bank") {
		t.Errorf("mortgage text missing bank name:\n%s", mort)
	}
	if strings.Contains(mort, "TO'LOV JADVALI") {
		t.Errorf("mortgage text must not contain a generated schedule:\n%s", mort)
	}
}

func TestText_MissingClientNameIsErrorMarked(t *testing.T) {
	in := sampleInput(models.PaymentInstallment)
	in.Client.FullName = ""

	got := Text(in)
	if !IsErrorText(got) {
		t.Fatalf("expected error-marked text, got:\n%s", got)
	}
}

func TestText_NeverLeaksZeroValueLiterals(t *testing.T) {
	in := sampleInput(models.PaymentMortgage)
	in.Terms.BankName = ""
	in.Client.Address = ""
	in.Apartment.ObjectName = ""

	got := Text(in)
	for _, bad := range []string{"<nil>", "null", "undefined", "%!"} {
		if strings.Contains(got, bad) {
			t.Errorf("contract text leaks %q:\n%s", bad, got)
		}
	}
	if !strings.Contains(got, models.UnknownLabel) {
		t.Errorf("missing bank should fall back to %q:\n%s", models.UnknownLabel, got)
	}
}

func TestText_GuarantorSection(t *testing.T) {
	in := sampleInput(models.PaymentInstallment)
	in.Client.GuarantorName = "Karimov Karim"
	in.Client.GuarantorPhone = "+998909876543"

	got := Text(in)
	if !strings.Contains(got, "KAFIL") || !strings.Contains(got, "Karimov Karim") {
		t.Errorf("guarantor section missing:\n%s", got)
	}

	in.Client.GuarantorName = ""
	if strings.Contains(Text(in), "KAFIL") {
		t.Errorf("guarantor section must be omitted when no guarantor is set")
	}
}

func TestDocument_ReservationRefused(t *testing.T) {
	_, err := Document(sampleInput(models.PaymentReservation))
	if !errors.Is(err, ErrNoDocumentForReservation) {
		t.Fatalf("expected ErrNoDocumentForReservation, got %v", err)
	}
}

func TestDocument_InstallmentWorkbook(t *testing.T) {
	blob, err := Document(sampleInput(models.PaymentInstallment))
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("empty workbook")
	}
	// xlsx files are zip archives
	if blob[0] != 'P' || blob[1] != 'K' {
		t.Fatalf("not a zip archive, starts with % x", blob[:4])
	}
}

func TestDocument_MissingRoomNumber(t *testing.T) {
	in := sampleInput(models.PaymentCash)
	in.Apartment.RoomNumber = ""
	if _, err := Document(in); err == nil {
		t.Fatal("expected error for missing room number")
	}
}
