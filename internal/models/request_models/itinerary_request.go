package request_models

import "itinera/internal/models/response_models"

type GenerateItineraryRequest struct {
	City          string `json:"city" binding:"required"`
	Days          int    `json:"days" binding:"required,min=1,max=30"`
	StartDate     string `json:"startDate" binding:"required"`
	ArrivalTime   string `json:"arrivalTime" binding:"required"`
	DepartureTime string `json:"departureTime" binding:"required"`
	HotelAddress  string `json:"hotelAddress" binding:"required"`
	TransportMode string `json:"transportMode" binding:"required,oneof=walking public_transport driving"`
}

type PdfOptionsRequest struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Font           string `json:"font" binding:"omitempty,oneof=helvetica times courier"`
	LogoBase64     string `json:"logoBase64"`
}

type RenderPdfRequest struct {
	Itinerary response_models.Itinerary `json:"itinerary" binding:"required"`
	Options   *PdfOptionsRequest        `json:"options"`
}
