package utils

import (
	"encoding/json"

	"github.com/google/generative-ai-go/genai"
)

// The response schema is what turns a free-text model into a structured one:
// it pins the outer shape to {destination, totalDays, days[]}, forces the
// activity type enum and carries per-field hints (units, language, examples).

var mainActivityRequired = []string{
	"time", "title", "description", "type", "locationName",
	"coordinates", "estimatedDuration", "rating", "reviews", "price",
}

var optionalActivityRequired = []string{
	"title", "description", "type", "locationName",
	"coordinates", "estimatedDuration", "price",
}

func activityProperties() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"time": {
			Type:        genai.TypeString,
			Description: "Orario suggerito, es. 'Pomeriggio' o '15:00'",
		},
		"title": {
			Type:        genai.TypeString,
			Description: "Nome del luogo o attività in ITALIANO",
		},
		"description": {
			Type:        genai.TypeString,
			Description: "Breve descrizione in ITALIANO",
		},
		"type": {
			Type:        genai.TypeString,
			Enum:        []string{"VISIT", "FOOD", "TRANSIT"},
			Description: "Tipo di attività",
		},
		"subtype": {
			Type:        genai.TypeString,
			Description: "Categoria breve es. 'Museo', 'Parco', 'Bar Panoramico', 'Transfer'.",
		},
		"locationName": {
			Type:        genai.TypeString,
			Description: "Indirizzo preciso o nome del luogo per Google Maps",
		},
		"coordinates": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"lat": {Type: genai.TypeNumber},
				"lng": {Type: genai.TypeNumber},
			},
			Required: []string{"lat", "lng"},
		},
		"estimatedDuration": {
			Type:        genai.TypeString,
			Description: "Tempo di permanenza nel luogo (es. '1.5 ore')",
		},
		"distanceFromPrevious": {
			Type:        genai.TypeString,
			Description: "Distanza in km/metri dalla tappa precedente (es. '800m', '3km')",
		},
		"travelTime": {
			Type:        genai.TypeString,
			Description: "Tempo di viaggio stimato dalla tappa precedente (es. '10 min a piedi', '20 min metro')",
		},
		"transportCost": {
			Type:        genai.TypeString,
			Description: "Costo stimato spostamento dalla tappa precedente se ci sono mezzi (es. '€1.50', 'Taxi ~€15', 'Gratis')",
		},
		"rating": {
			Type:        genai.TypeString,
			Description: "Valutazione media",
		},
		"reviews": {
			Type:        genai.TypeString,
			Description: "Numero recensioni",
		},
		"price": {
			Type:        genai.TypeString,
			Description: "Costo ingresso/consumazione attività (es. '€15', 'Gratis', '€25-40 a persona')",
		},
	}
}

// ItineraryResponseSchema is the Gemini-native structured-output contract.
func ItineraryResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"destination": {
				Type:        genai.TypeString,
				Description: "Nome della città o destinazione",
			},
			"totalDays": {
				Type:        genai.TypeInteger,
				Description: "Numero totale di giorni",
			},
			"days": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"dayNumber": {Type: genai.TypeInteger},
						"theme": {
							Type:        genai.TypeString,
							Description: "Un breve tema evocativo per la giornata in ITALIANO",
						},
						"dailyContext": {
							Type:        genai.TypeString,
							Description: "Breve contesto storico o culturale",
						},
						"activities": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type:       genai.TypeObject,
								Properties: activityProperties(),
								Required:   mainActivityRequired,
							},
						},
						"optionalActivities": {
							Type:        genai.TypeArray,
							Description: "2 attività EXTRA facoltative suggerite per questa giornata (es. un museo alternativo, un locale notturno, shopping)",
							Items: &genai.Schema{
								Type:       genai.TypeObject,
								Properties: activityProperties(),
								Required:   optionalActivityRequired,
							},
						},
					},
					Required: []string{"dayNumber", "theme", "dailyContext", "activities"},
				},
			},
		},
		Required: []string{"destination", "totalDays", "days"},
	}
}

var activityFieldNames = []string{
	"time", "title", "description", "type", "subtype", "locationName",
	"coordinates", "estimatedDuration", "distanceFromPrevious",
	"travelTime", "transportCost", "rating", "reviews", "price",
}

func jsonActivityProperties() map[string]any {
	return map[string]any{
		"time":        map[string]any{"type": "string"},
		"title":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"type": map[string]any{
			"type": "string",
			"enum": []string{"VISIT", "FOOD", "TRANSIT"},
		},
		"subtype":      map[string]any{"type": "string"},
		"locationName": map[string]any{"type": "string"},
		"coordinates": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"lat": map[string]any{"type": "number"},
				"lng": map[string]any{"type": "number"},
			},
			"required":             []string{"lat", "lng"},
			"additionalProperties": false,
		},
		"estimatedDuration":    map[string]any{"type": "string"},
		"distanceFromPrevious": map[string]any{"type": "string"},
		"travelTime":           map[string]any{"type": "string"},
		"transportCost":        map[string]any{"type": "string"},
		"rating":               map[string]any{"type": "string"},
		"reviews":              map[string]any{"type": "string"},
		"price":                map[string]any{"type": "string"},
	}
}

// nullableProp widens a property's type to accept null. Strict mode
// demands every property be listed in required, so "may be omitted"
// becomes "must be present, may be null".
func nullableProp(prop map[string]any) map[string]any {
	if t, ok := prop["type"].(string); ok {
		prop["type"] = []string{t, "null"}
	}
	return prop
}

// jsonActivitySchema builds a strict-mode activity object: every field
// listed in required, with the non-mandatory ones relaxed to nullable.
func jsonActivitySchema(mandatory []string) map[string]any {
	must := make(map[string]bool, len(mandatory))
	for _, name := range mandatory {
		must[name] = true
	}
	props := jsonActivityProperties()
	for name, prop := range props {
		if !must[name] {
			props[name] = nullableProp(prop.(map[string]any))
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             activityFieldNames,
		"additionalProperties": false,
	}
}

// ItineraryJSONSchema mirrors ItineraryResponseSchema for providers that
// take a json_schema response format, reshaped for strict mode: every
// object closes additionalProperties and lists all its properties as
// required, with optional fields expressed as nullable instead.
func ItineraryJSONSchema() json.RawMessage {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"destination": map[string]any{"type": "string"},
			"totalDays":   map[string]any{"type": "integer"},
			"days": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"dayNumber":    map[string]any{"type": "integer"},
						"theme":        map[string]any{"type": "string"},
						"dailyContext": map[string]any{"type": "string"},
						"activities": map[string]any{
							"type":  "array",
							"items": jsonActivitySchema(mainActivityRequired),
						},
						"optionalActivities": map[string]any{
							"type":  []string{"array", "null"},
							"items": jsonActivitySchema(optionalActivityRequired),
						},
					},
					"required": []string{
						"dayNumber", "theme", "dailyContext",
						"activities", "optionalActivities",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"destination", "totalDays", "days"},
		"additionalProperties": false,
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		// Static structure, cannot fail at runtime.
		panic(err)
	}
	return raw
}
