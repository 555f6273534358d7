package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnknownView     = errors.New("vista de análisis desconocida")
	ErrUnsupported     = errors.New("operación no soportada")
	ErrDatasetNotReady = errors.New("el inventario aún no se ha cargado")
)
