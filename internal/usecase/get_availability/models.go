package get_availability

import (
	"time"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// Request модель запроса доступности на дату
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа с разбиением слотов дня на свободные и занятые
// AvailableSlots и OccupiedSlots вместе покрывают все сгенерированные слоты,
// каждый слот попадает ровно в один из списков
type Response struct {
	Date           time.Time           // Запрошенная дата
	TotalSlots     int                 // Общее количество сгенерированных слотов
	AvailableSlots []domain.TimeWindow // Свободные слоты в хронологическом порядке
	OccupiedSlots  []domain.TimeWindow // Занятые слоты в хронологическом порядке
}

// HasAvailability возвращает true, если на дату есть хотя бы один свободный слот
func (r *Response) HasAvailability() bool {
	return len(r.AvailableSlots) > 0
}
