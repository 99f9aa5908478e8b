package dto

// ErrorResponseDTO is the uniform error envelope.
type ErrorResponseDTO struct {
	Error string `json:"error"`
}

// MessageResponseDTO is the uniform success-message envelope.
type MessageResponseDTO struct {
	Message string `json:"message"`
}
