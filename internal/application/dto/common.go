package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse cuerpo de confirmación para operaciones sin payload
// (desactivaciones, reactivaciones masivas).
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
