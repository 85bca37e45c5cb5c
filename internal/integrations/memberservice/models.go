package memberservice

// Member модель участника клуба из MemberService
type Member struct {
	ID                   int64   `json:"id"`
	FullName             string  `json:"full_name"`
	Balance              float64 `json:"balance"`
	DefaultPaymentMethod string  `json:"default_payment_method"` // balance | card
	IsActive             bool    `json:"is_active"`
}

// DebitRequest запрос на списание средств со счёта участника
type DebitRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Reference     string  `json:"reference"` // Идентификатор операции для идемпотентности
}

// DebitResponse ответ на списание
type DebitResponse struct {
	TransactionID int64   `json:"transaction_id"`
	NewBalance    float64 `json:"new_balance"`
}

// ErrorResponse модель ошибки от MemberService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
