package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var uzbekMonths = [...]string{
	"yanvar", "fevral", "mart", "aprel", "may", "iyun",
	"iyul", "avgust", "sentabr", "oktabr", "noyabr", "dekabr",
}

// FormatAmount renders a money amount with zero decimal places and space
// thousands separators: 12345678.9 -> "12 345 679". Stored values keep
// full precision; this is rendering only.
func FormatAmount(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatPercent renders a one-decimal percentage: 83.3 -> "83.3%".
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// FormatDate renders the short date form used in schedules and receipts.
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDateLong renders the written-out Uzbek date used in contract
// headers: "2024-yil 15-fevral".
func FormatDateLong(t time.Time) string {
	return fmt.Sprintf("%d-yil %d-%s", t.Year(), t.Day(), uzbekMonths[int(t.Month())-1])
}
