package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrMissingReference = errors.New("referencia a un registro inexistente")
	ErrInvalidEnum      = errors.New("valor fuera de la enumeración")
	ErrOutOfRange       = errors.New("valor fuera de rango")
)
