package dashboard

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/jhoicas/freelancer-crm/internal/application/dto"
	"github.com/jhoicas/freelancer-crm/internal/domain"
)

const monthLayout = "2006-01"

// ParseMonth interpreta "YYYY-MM". Vacío devuelve el mes en curso.
func (s *Store) ParseMonth(raw string) (int, time.Month, error) {
	if raw == "" {
		t := s.today()
		return t.Year(), t.Month(), nil
	}
	t, err := time.Parse(monthLayout, raw)
	if err != nil {
		return 0, 0, fmt.Errorf("month %q: %w", raw, domain.ErrInvalidInput)
	}
	return t.Year(), t.Month(), nil
}

// EventsForMonth devuelve los eventos del mes ordenados por fecha y hora.
func (s *Store) EventsForMonth(year int, month time.Month) []dto.EventRow {
	events := s.Events.Filter(func(e dto.EventRow) bool {
		return e.Date.Year() == year && e.Date.Month() == month
	})
	sortEvents(events)
	return events
}

// CalendarMonth arma la respuesta del calendario para un mes.
func (s *Store) CalendarMonth(year int, month time.Month) dto.CalendarMonthResponse {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return dto.CalendarMonthResponse{
		Month:  first.Format(monthLayout),
		Label:  first.Format("January 2006"),
		Events: s.EventsForMonth(year, month),
	}
}

// upcomingEvents eventos desde hoy en adelante, ordenados, como máximo limit.
func (s *Store) upcomingEvents(limit int) []dto.EventRow {
	today := s.today()
	events := s.Events.Filter(func(e dto.EventRow) bool { return !e.Date.Before(today) })
	sortEvents(events)
	if len(events) > limit {
		events = events[:limit]
	}
	return events
}

func sortEvents(events []dto.EventRow) {
	slices.SortStableFunc(events, func(a, b dto.EventRow) int {
		return cmp.Or(a.Date.Compare(b.Date), cmp.Compare(a.Time, b.Time))
	})
}
