package dto

// ForgotPasswordRequest solicitud de código de reinicio.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyCodeRequest verificación del código recibido por email.
type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResetPasswordRequest paso final del flujo de reinicio.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}
