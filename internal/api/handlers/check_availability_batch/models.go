package check_availability_batch

import (
	checkAvailabilityBatch "github.com/kairodigital/KD-BookingService/internal/usecase/check_availability_batch"
)

// BatchRequest HTTP request model
type BatchRequest struct {
	Dates []string `json:"dates"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *BatchRequest) ToUseCaseRequest() *checkAvailabilityBatch.Request {
	return &checkAvailabilityBatch.Request{Dates: r.Dates}
}

// DateSummary сводка доступности по одной дате
type DateSummary struct {
	TotalSlots      int  `json:"totalSlots"`
	AvailableSlots  int  `json:"availableSlots"`
	HasAvailability bool `json:"hasAvailability"`
}

// BatchResponse HTTP response model
type BatchResponse struct {
	Results map[string]DateSummary `json:"results"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailabilityBatch.Response) *BatchResponse {
	results := make(map[string]DateSummary, len(resp.Results))
	for date, summary := range resp.Results {
		results[date] = DateSummary{
			TotalSlots:      summary.TotalSlots,
			AvailableSlots:  summary.AvailableSlots,
			HasAvailability: summary.HasAvailability,
		}
	}

	return &BatchResponse{Results: results}
}
