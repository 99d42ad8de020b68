package get_availability

import (
	"time"

	"github.com/kairodigital/KD-BookingService/internal/domain"
	getAvailability "github.com/kairodigital/KD-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string     `json:"date"`
	TotalSlots      int        `json:"totalSlots"`
	HasAvailability bool       `json:"hasAvailability"`
	AvailableSlots  []TimeSlot `json:"availableSlots"`
	OccupiedSlots   []TimeSlot `json:"occupiedSlots"`
}

// TimeSlot модель временного слота
// Границы сериализуются полными RFC3339 метками, а не временем дня:
// клиенту нужна возможность восстановить окно без повторного
// склеивания с датой запроса
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		TotalSlots:      resp.TotalSlots,
		HasAvailability: resp.HasAvailability(),
		AvailableSlots:  toTimeSlots(resp.AvailableSlots),
		OccupiedSlots:   toTimeSlots(resp.OccupiedSlots),
	}
}

func toTimeSlots(windows []domain.TimeWindow) []TimeSlot {
	slots := make([]TimeSlot, len(windows))
	for i, w := range windows {
		slots[i] = TimeSlot{
			Start: w.Start.Format(time.RFC3339),
			End:   w.End.Format(time.RFC3339),
		}
	}
	return slots
}

// ToUseCaseRequest создает запрос use case из query параметров
// Дата интерпретируется в локальной таймзоне сервера
func ToUseCaseRequest(dateStr string) (*getAvailability.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{Date: date}, nil
}
