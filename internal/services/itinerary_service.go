package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	aiClient utils.GenerationClientInterface
	logger   *zap.Logger
}

func NewItineraryService(aiClient utils.GenerationClientInterface, logger *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		aiClient: aiClient,
		logger:   logger,
	}
}

// GenerateItinerary issues a single generation call and returns the parsed
// plan. Retries are the caller's business: every failure comes back as one
// of the sentinel kinds in pkg/utils.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error) {
	prompt := BuildItineraryPrompt(req)

	raw, err := s.aiClient.GenerateItinerary(ctx, prompt)
	if err != nil {
		s.logger.Warn("itinerary generation failed",
			zap.String("city", req.City),
			zap.Int("days", req.Days),
			zap.Error(err))
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, utils.ErrEmptyAIResponse
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		s.logger.Warn("ai response is not valid JSON", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedAIResponse, err)
	}

	// The model is never asked to echo the start date back.
	itinerary.StartDate = req.StartDate
	normalizeItinerary(&itinerary)

	s.logger.Info("itinerary generated",
		zap.String("destination", itinerary.Destination),
		zap.Int("days", len(itinerary.Days)))
	return &itinerary, nil
}

// normalizeItinerary applies the light fixups the contract promises:
// days sorted by number, the day-1 arrival transfer forced to TRANSIT,
// and missing subtypes backfilled from the keyword table. totalDays is
// deliberately not reconciled with len(days).
func normalizeItinerary(it *response_models.Itinerary) {
	sort.SliceStable(it.Days, func(i, j int) bool {
		return it.Days[i].DayNumber < it.Days[j].DayNumber
	})

	for d := range it.Days {
		day := &it.Days[d]
		for a := range day.Activities {
			normalizeActivity(&day.Activities[a])
		}
		for a := range day.OptionalActivities {
			normalizeActivity(&day.OptionalActivities[a])
		}
	}

	if len(it.Days) > 0 && len(it.Days[0].Activities) > 0 {
		first := &it.Days[0].Activities[0]
		first.Type = response_models.ActivityTransit
		if first.Subtype == "" {
			first.Subtype = "Transfer/Arrivo"
		}
	}
}

func normalizeActivity(act *response_models.Activity) {
	act.Time = strings.TrimSpace(act.Time)
	act.Title = strings.TrimSpace(act.Title)
	act.Price = strings.TrimSpace(act.Price)
	if act.Subtype == "" {
		if category, ok := utils.ClassifyCategory(act.Title); ok {
			act.Subtype = category
		}
	}
}
