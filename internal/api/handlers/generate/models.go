package generate

// GenerateRequest HTTP request model
type GenerateRequest struct {
	Message string `json:"message"`
}

// ErrorResponse ответ без сообщения для классификации
type ErrorResponse struct {
	Error string `json:"error"`
}
