package ports

import (
	"context"

	"github.com/jhoicas/inventory-insight/internal/application/dto"
)

// InsightCache puerto de salida para cachear respuestas serializadas de las vistas.
// Las claves incluyen la versión del dataset, por lo que un reload invalida de forma implícita.
type InsightCache interface {
	// Get devuelve (valor, true, nil) si hay hit; (nil, false, nil) si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// ReportExporter genera un documento descargable a partir de un reporte de análisis.
type ReportExporter interface {
	Export(ctx context.Context, report *dto.InsightReportDTO) ([]byte, error)
	ContentType() string
	Extension() string
}
