package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"stock-price-predictor/internal/api/constant"
	"stock-price-predictor/internal/api/dto"
	"stock-price-predictor/internal/api/usecase"
)

type HandlerItf interface {
	Predict(*gin.Context)
}

type Handler struct {
	uc usecase.UsecaseItf
}

func NewHandler(uc usecase.UsecaseItf) *Handler {
	return &Handler{uc: uc}
}

// Predict checks key presence, trains on the ticker's history, and only
// then parses the prices. A training failure therefore wins over a
// non-numeric price.
func (hd *Handler) Predict(ctx *gin.Context) {
	var req dto.PredictReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			ctx.Error(err)
		} else {
			ctx.Error(constant.ErrMalformedBody)
		}
		return
	}
	ticker := *req.Ticker

	// usecase
	model, err := hd.uc.TrainModel(ctx.Request.Context(), ticker)
	if err != nil {
		ctx.Error(err)
		return
	}

	features, err := req.Features()
	if err != nil {
		ctx.Error(constant.ErrNonNumericPrice)
		return
	}

	predicted, err := hd.uc.Predict(ctx.Request.Context(), ticker, model, features)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PredictRes{
		Ticker:         ticker,
		PredictedClose: predicted,
	})
}
