package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stock-price-predictor/internal/api/dto"
	"stock-price-predictor/internal/api/handler"
	"stock-price-predictor/internal/api/middleware"
	"stock-price-predictor/internal/api/usecase"
	"stock-price-predictor/internal/config"
)

// NewRouter builds the prediction API. Every origin is allowed and methods
// other than POST on /predict are answered with 405.
func NewRouter(uc usecase.UsecaseItf, cfg config.ServerConfig) *gin.Engine {
	middleware.UseJSONFieldNames()

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// CORS runs first so preflight requests never reach the handlers.
	r.Use(gin.Logger(), gin.Recovery(), cors.Default())
	r.Use(middleware.Error())
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorRes{Error: "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "Not found"})
	})

	hd := handler.NewHandler(uc)
	r.POST("/predict", hd.Predict)
	return r
}
