package widgets

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"dashboard/services/calendar"
)

var frenchWeekdays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var numberPrinter = message.NewPrinter(language.English)

// FormatRate groups thousands and keeps at most two fraction digits.
func FormatRate(v float64) string {
	return numberPrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatLongDate renders t as "16 octobre 2026".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), calendar.MonthName(int(t.Month())-1), t.Year())
}

// FormatFullDate renders t as "vendredi 16 octobre 2026".
func FormatFullDate(t time.Time) string {
	return frenchWeekdays[t.Weekday()] + " " + FormatLongDate(t)
}

// FormatClock renders t as "14:05:09".
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}
