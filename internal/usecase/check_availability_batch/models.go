package check_availability_batch

// Request модель запроса доступности на несколько дат
// Даты передаются строками в формате YYYY-MM-DD: нераспознанные значения
// пропускаются по одному, не ломая весь запрос
type Request struct {
	Dates []string
}

// DateSummary сводка доступности по одной дате
type DateSummary struct {
	TotalSlots      int  // Общее количество слотов на дату
	AvailableSlots  int  // Количество свободных слотов
	HasAvailability bool // Есть ли хотя бы один свободный слот
}

// Response модель ответа: сводка по каждой валидной дате запроса
// Невалидные даты в Results отсутствуют
type Response struct {
	Results map[string]DateSummary
}
