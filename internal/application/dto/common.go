package dto

// ErrorResponse cuerpo de error HTTP único para toda la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse cuerpo genérico de éxito con mensaje legible.
type StatusResponse struct {
	Message string `json:"message"`
}
