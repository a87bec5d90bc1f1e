package domain

// Lead — потенциальный клиент
// Поля в snake_case: формат пришёл из внешней CRM и используется фронтендом
type Lead struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`             // Имя
	LastName    string `json:"last_name"`              // Фамилия
	Email       string `json:"email,omitempty"`        // Email
	PhoneNumber string `json:"phone_number,omitempty"` // Телефон
	CompanyName string `json:"company_name,omitempty"` // Компания
	JobTitle    string `json:"job_title,omitempty"`    // Должность
	Location    string `json:"location,omitempty"`     // Город
}
