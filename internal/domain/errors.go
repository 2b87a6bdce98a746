package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrPermissionDenied = errors.New("permiso denegado")
	ErrLockedRecord     = errors.New("el cierre diario está bloqueado")
	ErrUnknownReport    = errors.New("tipo de reporte desconocido")
	ErrConflict         = errors.New("conflicto con el estado actual")
)
