package views

import (
	"html/template"
	"strings"
	"time"

	"dashboard/services/calendar"
)

var tmplFuncs = template.FuncMap{
	"lower":    strings.ToLower,
	"isToday":  calendar.IsToday,
	"hasEvent": calendar.HasEvent,
	"since":    since,
}

// since renders how long ago t was, rounded to the second.
func since(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return time.Since(t).Round(time.Second).String() + " ago"
}
