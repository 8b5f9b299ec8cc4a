package generatorfx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"itinera/internal/services"
	"itinera/pkg/utils"
)

var Module = fx.Provide(
	provideGenerationClient, provideItineraryService)

func provideGenerationClient(lc fx.Lifecycle) (utils.GenerationClientInterface, error) {
	provider := os.Getenv("AI_PROVIDER")

	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	client, err := utils.NewGenerationClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(client.Close))
	return client, nil
}

func provideItineraryService(client utils.GenerationClientInterface, logger *zap.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(client, logger)
}
