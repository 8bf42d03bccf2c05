package contract

import (
	"fmt"
	"strings"
	"time"

	"ahlan_office/internal/models"
	"ahlan_office/internal/services/installment"
	"ahlan_office/internal/utils"
)

// ErrorPrefix marks a builder result that is a diagnostic, not a contract.
// Callers render it in a dialog instead of crashing mid-transaction.
const ErrorPrefix = "XATO:"

// Input is everything a contract is rendered from. The builder is a pure
// function of it; nothing here touches the network or storage.
type Input struct {
	ReferenceID int64
	Apartment   models.Apartment
	Client      models.Client
	Terms       models.SaleTerms
	Schedule    []models.ScheduleEntry
	Now         time.Time
}

// IsErrorText reports whether a builder result is an error marker.
func IsErrorText(s string) bool { return strings.HasPrefix(s, ErrorPrefix) }

// Text renders the legal contract text for a sale. Missing required fields
// produce an error-marked string, never a panic, and no Go zero-value
// literal ever leaks into the output.
func Text(in Input) string {
	if res := models.ValidateClient(in.Client); !res.OK() {
		return fmt.Sprintf("%s %s", ErrorPrefix, res.Error())
	}
	if strings.TrimSpace(in.Apartment.RoomNumber) == "" {
		return fmt.Sprintf("%s kvartira raqami ko'rsatilmagan", ErrorPrefix)
	}
	if !in.Terms.PaymentType.Valid() {
		return fmt.Sprintf("%s to'lov turi noto'g'ri", ErrorPrefix)
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	var b strings.Builder

	fmt.Fprintf(&b, "SHARTNOMA № %d\n", in.ReferenceID)
	fmt.Fprintf(&b, "%s\n\n", utils.FormatDateLong(now))

	fmt.Fprintf(&b, "Sotuvchi: %q MChJ (keyingi o'rinlarda \"Sotuvchi\")\n", sellerName(in.Apartment))
	fmt.Fprintf(&b, "Xaridor: %s, tel: %s", in.Client.FullName, in.Client.Phone)
	if addr := strings.TrimSpace(in.Client.Address); addr != "" {
		fmt.Fprintf(&b, ", manzil: %s", addr)
	}
	b.WriteString(" (keyingi o'rinlarda \"Xaridor\")\n\n")

	b.WriteString("1. SHARTNOMA PREDMETI\n")
	fmt.Fprintf(&b, "Sotuvchi Xaridorga %s-xonadonni", in.Apartment.RoomNumber)
	if in.Apartment.Rooms > 0 {
		fmt.Fprintf(&b, " (%d xonali", in.Apartment.Rooms)
		if in.Apartment.Floor > 0 {
			fmt.Fprintf(&b, ", %d-qavat", in.Apartment.Floor)
		}
		if in.Apartment.Area.Sign() > 0 {
			fmt.Fprintf(&b, ", %s m²", in.Apartment.Area.StringFixed(1))
		}
		b.WriteString(")")
	}
	b.WriteString(" sotadi.\n\n")

	b.WriteString("2. SHARTNOMA SUMMASI VA TO'LOV TARTIBI\n")
	fmt.Fprintf(&b, "Shartnoma summasi: %s so'm.\n", utils.FormatAmount(in.Terms.TotalAmount))

	switch in.Terms.PaymentType {
	case models.PaymentCash:
		cashSection(&b, in.Terms)
	case models.PaymentReservation:
		reservationSection(&b, in.Terms)
	case models.PaymentInstallment:
		installmentSection(&b, in.Terms, in.Schedule)
	case models.PaymentMortgage:
		mortgageSection(&b, in.Terms)
	}

	if disc := installment.DiscountPercentage(in.Apartment.Price, in.Terms.TotalAmount); disc.Sign() > 0 {
		fmt.Fprintf(&b, "Kelishilgan chegirma: %s.\n", utils.FormatPercent(disc))
	}

	if g := strings.TrimSpace(in.Client.GuarantorName); g != "" {
		b.WriteString("\n3. KAFIL\n")
		fmt.Fprintf(&b, "Kafil: %s", g)
		if p := strings.TrimSpace(in.Client.GuarantorPhone); p != "" {
			fmt.Fprintf(&b, ", tel: %s", p)
		}
		if a := strings.TrimSpace(in.Client.GuarantorAddress); a != "" {
			fmt.Fprintf(&b, ", manzil: %s", a)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nTOMONLARNING IMZOLARI\n")
	fmt.Fprintf(&b, "Sotuvchi:\t_______________\n")
	fmt.Fprintf(&b, "Xaridor:\t_______________\t%s\n", utils.ShortName(in.Client.FullName))

	return b.String()
}

func cashSection(b *strings.Builder, t models.SaleTerms) {
	fmt.Fprintf(b, "To'lov turi: %s.\n", t.PaymentType.Label())
	fmt.Fprintf(b, "Umumiy summa %s kuni to'liq to'lanadi.\n", utils.FormatDate(t.StartDate))
}

func reservationSection(b *strings.Builder, t models.SaleTerms) {
	fmt.Fprintf(b, "To'lov turi: %s.\n", t.PaymentType.Label())
	fmt.Fprintf(b, "Band qilish uchun to'lov: %s so'm.\n", utils.FormatAmount(t.InitialPayment))
	if t.ReservationDeadline != nil {
		fmt.Fprintf(b, "Band qilish muddati: %s gacha.\n", utils.FormatDate(*t.ReservationDeadline))
	}
	b.WriteString("Ushbu hujjat sotuv shartnomasi emas; yakuniy shartnoma to'liq shartlar kelishilgach tuziladi.\n")
}

func installmentSection(b *strings.Builder, t models.SaleTerms, schedule []models.ScheduleEntry) {
	fmt.Fprintf(b, "To'lov turi: %s.\n", t.PaymentType.Label())
	fmt.Fprintf(b, "Boshlang'ich to'lov: %s so'm (%s kuni).\n",
		utils.FormatAmount(t.InitialPayment), utils.FormatDate(t.StartDate))

	monthly, reason := installment.MonthlyPayment(t)
	if reason != "" {
		fmt.Fprintf(b, "Oylik to'lov hisoblanmadi (%s).\n", reason)
		return
	}

	fmt.Fprintf(b, "Qolgan summa %d oy davomida, har oyning %d-sanasigacha, oyiga %s so'mdan to'lanadi.\n",
		t.DurationMonths, t.DueDayOfMonth, utils.FormatAmount(monthly))
	fmt.Fprintf(b, "Qolgan qarz ulushi: %s.\n", utils.FormatPercent(installment.RemainingPercentage(t)))

	if len(schedule) == 0 {
		return
	}
	b.WriteString("\nTO'LOV JADVALI\n")
	for _, e := range schedule {
		fmt.Fprintf(b, "%d. %s\t%s so'm\n", e.MonthIndex, utils.FormatDate(e.DueDate), utils.FormatAmount(e.Amount))
	}
}

func mortgageSection(b *strings.Builder, t models.SaleTerms) {
	fmt.Fprintf(b, "To'lov turi: %s.\n", t.PaymentType.Label())
	fmt.Fprintf(b, "Boshlang'ich to'lov: %s so'm.\n", utils.FormatAmount(t.InitialPayment))
	bank := strings.TrimSpace(t.BankName)
	if bank == "" {
		bank = models.UnknownLabel
	}
	fmt.Fprintf(b, "Qolgan summa %q banki orqali ipoteka krediti hisobidan to'lanadi.\n", bank)
	b.WriteString("To'lov jadvali bank tomonidan yuritiladi.\n")
}

func sellerName(a models.Apartment) string {
	if n := strings.TrimSpace(a.ObjectName); n != "" {
		return n
	}
	return "Ahlan House"
}
