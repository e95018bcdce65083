package widgets

import (
	"context"
	"fmt"
	"time"

	"dashboard/models"
)

const defaultSaint = "Saint du jour"

// saints is keyed by "month-day", month 1-based.
var saints = map[string]string{
	"1-1":   "Saint Jour de l'An",
	"1-2":   "Saint Basile",
	"1-3":   "Sainte Geneviève",
	"2-1":   "Sainte Ella",
	"2-2":   "Sainte Présentation",
	"2-3":   "Saint Blaise",
	"3-1":   "Saint Aubin",
	"3-2":   "Saint Charles le Bon",
	"3-3":   "Saint Guénolé",
	"4-1":   "Saint Hugues",
	"4-2":   "Sainte Sandrine",
	"4-3":   "Saint Richard",
	"5-1":   "Saint Sylvain",
	"5-2":   "Saint Boris",
	"5-3":   "Sainte Judith",
	"5-8":   "Saint Désiré",
	"6-1":   "Saint Justin",
	"6-2":   "Sainte Blandine",
	"6-3":   "Saint Kévin",
	"7-1":   "Saint Thierry",
	"7-2":   "Saint Martinien",
	"7-3":   "Saint Thomas",
	"8-1":   "Saint Amour",
	"8-2":   "Saint Dominique",
	"8-3":   "Sainte Lydie",
	"9-1":   "Saint Alain",
	"9-2":   "Sainte Inès",
	"9-3":   "Saint Grégoire",
	"10-1":  "Saint Ghislain",
	"10-2":  "Saint Léon",
	"10-3":  "Saint Stanislas",
	"10-16": "Sainte Edwige",
	"11-1":  "Saint Martin",
	"11-2":  "Saint Christian",
	"11-3":  "Saint Véran",
	"12-1":  "Saint Corentin",
	"12-2":  "Sainte Chantal",
	"12-3":  "Sainte Lucie",
}

// SaintOf returns the name celebrated on t's day, or a generic label.
func SaintOf(t time.Time) string {
	if name, ok := saints[fmt.Sprintf("%d-%d", int(t.Month()), t.Day())]; ok {
		return name
	}
	return defaultSaint
}

// NameDaySource looks today's name day up in a local table.
type NameDaySource struct {
	Now func() time.Time
}

func NewNameDaySource(now func() time.Time) *NameDaySource {
	return &NameDaySource{Now: now}
}

func (s *NameDaySource) Name() string  { return "nameday" }
func (s *NameDaySource) Title() string { return "Name Day" }

func (s *NameDaySource) Fetch(ctx context.Context) (any, error) {
	today := s.Now()
	return models.NameDayData{
		Name: SaintOf(today),
		Date: FormatLongDate(today),
	}, nil
}

func (s *NameDaySource) Decode(data []byte) (any, error) {
	return decodeAs[models.NameDayData](data)
}
