package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las comprobaciones de existencia van antes que las de propiedad: cuando ambas
// podrían aplicar se responde ErrNotFound, nunca ErrForbidden.
var (
	ErrNotFound           = errors.New("recurso no encontrado o inactivo")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicateReview    = errors.New("ya existe un review activo del usuario para este producto")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("credenciales inválidas o token inválido")
	ErrForbidden          = errors.New("acceso denegado")
	ErrCategoryInactive   = errors.New("la categoría no existe o está inactiva")
	ErrParentNotFound     = errors.New("la categoría padre no existe o está inactiva")
)
