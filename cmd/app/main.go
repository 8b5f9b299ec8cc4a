package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"itinera/cmd/fx/generatorfx"
	"itinera/cmd/fx/pdffx"
	"itinera/internal/api/controllers"
	"itinera/pkg/logger"
	"itinera/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(logger.NewLogger),
		generatorfx.Module,
		pdffx.Module,

		fx.Provide(controllers.NewItineraryController),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Println("Starting HTTP server at :" + port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(itineraryController *controllers.ItineraryController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine, itineraryController *controllers.ItineraryController) {
	r.GET("/healthz", func(c *gin.Context) {
		c.String(200, "ok")
	})

	api := r.Group("/api")
	api.POST("/itinerary", itineraryController.GenerateItineraryHandler)
	api.POST("/itinerary/pdf", itineraryController.DownloadPdfHandler)
}
