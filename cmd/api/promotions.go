package main

import (
	"net/http"
	"time"

	"github.com/JesusTreelabx/routvi-console/internal/service"
	"github.com/go-chi/chi"
)

type CreatePromotionRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Code        string     `json:"code" validate:"required"`
	Discount    string     `json:"discount"`
	ExpiryDate  *time.Time `json:"expiryDate"`
}

// listPromotionsHandler godoc
//
//	@Summary		List promotions
//	@Description	Returns the full promotions ledger, active or not
//	@Tags			promotions
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/business/promotions [get]
func (app *application) listPromotionsHandler(w http.ResponseWriter, r *http.Request) {
	promos, err := app.promoService.List(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, promos); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createPromotionHandler godoc
//
//	@Summary		Create promotion
//	@Tags			promotions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreatePromotionRequest	true	"Promotion"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Router			/business/promotions [post]
func (app *application) createPromotionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreatePromotionRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	promo, err := app.promoService.Create(r.Context(), service.CreatePromotionInput{
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Discount:    req.Discount,
		ExpiryDate:  req.ExpiryDate,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusCreated, "Promoción creada correctamente", promo); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updatePromotionHandler godoc
//
//	@Summary		Update promotion
//	@Tags			promotions
//	@Accept			json
//	@Produce		json
//	@Param			promo_id	path		string					true	"Promotion ID"
//	@Param			request		body		service.PromotionPatch	true	"Promotion patch"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		404			{object}	map[string]string
//	@Router			/business/promotions/{promo_id} [put]
func (app *application) updatePromotionHandler(w http.ResponseWriter, r *http.Request) {
	promoID := chi.URLParam(r, "promo_id")
	if promoID == "" {
		app.badRequestResponse(w, r, ErrMissingID)
		return
	}

	var patch service.PromotionPatch
	if err := readJson(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	promo, err := app.promoService.Update(r.Context(), promoID, patch)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusOK, "Promoción actualizada correctamente", promo); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deletePromotionHandler godoc
//
//	@Summary		Delete promotion
//	@Tags			promotions
//	@Produce		json
//	@Param			promo_id	path		string	true	"Promotion ID"
//	@Success		200			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/business/promotions/{promo_id} [delete]
func (app *application) deletePromotionHandler(w http.ResponseWriter, r *http.Request) {
	promoID := chi.URLParam(r, "promo_id")
	if promoID == "" {
		app.badRequestResponse(w, r, ErrMissingID)
		return
	}

	if err := app.promoService.Delete(r.Context(), promoID); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusOK, "Promoción eliminada correctamente", nil); err != nil {
		app.internalServerError(w, r, err)
	}
}
