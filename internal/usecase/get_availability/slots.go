package get_availability

import (
	"time"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// generateSlots генерирует список всех возможных временных окон на день
// Окна нарезаются равномерным шагом slotDurationMinutes от начала рабочего
// дня (09:00); последнее неполное окно, не помещающееся до 18:00, отбрасывается.
// Затем окна фильтруются по минимальному сроку и горизонту бронирования:
// остаются только окна со start > now+minimumNoticeHours (строго)
// и start <= now+maxAdvanceBookingDays (включительно)
func generateSlots(date time.Time, settings domain.BookingSettings, now time.Time) []domain.TimeWindow {
	slots := make([]domain.TimeWindow, 0)

	// Выходные дни: суббота и воскресенье
	weekday := date.Weekday()
	if (weekday == time.Saturday || weekday == time.Sunday) && !settings.AllowWeekendBookings {
		return slots
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(),
		domain.BusinessDayStartHour, 0, 0, 0, date.Location())
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(),
		domain.BusinessDayEndHour, 0, 0, 0, date.Location())

	earliestAllowed := now.Add(time.Duration(settings.MinimumNoticeHours) * time.Hour)
	latestAllowed := now.Add(time.Duration(settings.MaxAdvanceBookingDays) * 24 * time.Hour)

	step := time.Duration(settings.SlotDurationMinutes) * time.Minute

	for start := dayStart; !start.Add(step).After(dayEnd); start = start.Add(step) {
		// Нижняя граница строгая, верхняя включительная
		if start.After(earliestAllowed) && !start.After(latestAllowed) {
			slots = append(slots, domain.NewTimeWindow(start, step))
		}
	}

	return slots
}

// resolveAvailability разбивает слоты дня на свободные и занятые
// Слот занят, если он пересекается хотя бы с одним активным (не отмененным)
// бронированием. Оба списка сохраняют хронологический порядок candidates
func resolveAvailability(candidates []domain.TimeWindow, reservations []*domain.Reservation) (available, occupied []domain.TimeWindow) {
	available = make([]domain.TimeWindow, 0, len(candidates))
	occupied = make([]domain.TimeWindow, 0)

	for _, window := range candidates {
		if isWindowOccupied(window, reservations) {
			occupied = append(occupied, window)
		} else {
			available = append(available, window)
		}
	}

	return available, occupied
}

// isWindowOccupied проверяет пересечение окна с активными бронированиями
func isWindowOccupied(window domain.TimeWindow, reservations []*domain.Reservation) bool {
	for _, reservation := range reservations {
		if !reservation.IsActive() {
			continue
		}
		if window.Overlaps(reservation.StartTime, reservation.EndTime) {
			return true
		}
	}
	return false
}

// filterReservationsForDate оставляет бронирования, начинающиеся в указанную
// календарную дату. Сравниваются компоненты локальной даты (год, месяц, день),
// а не сами моменты времени: бронирование, начинающееся поздно вечером, не
// должно попасть в "соседний" день из-за представления таймзоны
func filterReservationsForDate(reservations []*domain.Reservation, date time.Time) []*domain.Reservation {
	result := make([]*domain.Reservation, 0, len(reservations))
	for _, reservation := range reservations {
		if isSameLocalDate(reservation.StartTime, date) {
			result = append(result, reservation)
		}
	}
	return result
}

// isSameLocalDate проверяет, что два момента времени относятся к одной
// локальной календарной дате
func isSameLocalDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
