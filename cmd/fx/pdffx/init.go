package pdffx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"itinera/internal/services"
)

var Module = fx.Provide(providePdfService)

func providePdfService(logger *zap.Logger) services.PdfServiceInterface {
	return services.NewPdfService(logger)
}
