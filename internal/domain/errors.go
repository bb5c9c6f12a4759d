package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el identificador ya está en uso")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrRegistrationClosed    = errors.New("el registro público está cerrado")
	ErrInvalidResetCode      = errors.New("código de reinicio inválido o expirado")
	ErrMailDelivery          = errors.New("fallo al enviar el correo")
	ErrWrongOldPassword      = errors.New("la contraseña actual es incorrecta")
	ErrLastSuperadmin        = errors.New("no se puede eliminar el último superadmin")
	ErrProtectedAccount      = errors.New("cuenta protegida, no puede eliminarse")
	ErrSelfDelete            = errors.New("no puedes eliminar tu propia cuenta")
)
