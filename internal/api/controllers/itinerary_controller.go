package controllers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	pdfService       services.PdfServiceInterface
	logger           *zap.Logger
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	pdfService services.PdfServiceInterface,
	logger *zap.Logger,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		pdfService:       pdfService,
		logger:           logger,
	}
}

func (ic *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

func (ic *ItineraryController) DownloadPdfHandler(c *gin.Context) {
	var req request_models.RenderPdfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	data, filename, err := ic.pdfService.CreatePDF(&req.Itinerary, ic.pdfOptionsFrom(req.Options))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (ic *ItineraryController) pdfOptionsFrom(req *request_models.PdfOptionsRequest) *services.PdfOptions {
	if req == nil {
		return nil
	}
	return &services.PdfOptions{
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		Font:           req.Font,
		Logo:           ic.decodeLogo(req.LogoBase64),
	}
}

// decodeLogo accepts either a bare base64 payload or a data URI. A payload
// that does not decode is logged and skipped; a decoded-but-corrupt image
// is the renderer's non-fatal case, not ours.
func (ic *ItineraryController) decodeLogo(encoded string) []byte {
	if encoded == "" {
		return nil
	}
	if idx := strings.Index(encoded, ","); idx != -1 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		ic.logger.Warn("logo payload is not valid base64, skipping", zap.Error(err))
		return nil
	}
	return raw
}
