package response_models

type ActivityType string

const (
	ActivityVisit   ActivityType = "VISIT"
	ActivityFood    ActivityType = "FOOD"
	ActivityTransit ActivityType = "TRANSIT"
)

// Coordinates serialize with the short lat/lng keys the generation
// schema asks for.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type Activity struct {
	Time                 string       `json:"time"`
	Title                string       `json:"title"`
	Description          string       `json:"description"`
	Type                 ActivityType `json:"type"`
	Subtype              string       `json:"subtype,omitempty"`
	LocationName         string       `json:"locationName"`
	Coordinates          Coordinates  `json:"coordinates"`
	EstimatedDuration    string       `json:"estimatedDuration"`
	DistanceFromPrevious string       `json:"distanceFromPrevious,omitempty"`
	TravelTime           string       `json:"travelTime,omitempty"`
	TransportCost        string       `json:"transportCost,omitempty"`
	Rating               string       `json:"rating,omitempty"`
	Reviews              string       `json:"reviews,omitempty"`
	Price                string       `json:"price,omitempty"`
}

type DayPlan struct {
	DayNumber          int        `json:"dayNumber"`
	Theme              string     `json:"theme"`
	DailyContext       string     `json:"dailyContext,omitempty"`
	Activities         []Activity `json:"activities"`
	OptionalActivities []Activity `json:"optionalActivities,omitempty"`
}

// Itinerary is the structured plan returned by the generation service.
// StartDate is always the caller's value, never the model's.
type Itinerary struct {
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate,omitempty"`
	TotalDays   int       `json:"totalDays"`
	Days        []DayPlan `json:"days"`
}
