package customerservice

// Customer модель клиента из CustomerService
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ErrorResponse модель ошибки от CustomerService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
