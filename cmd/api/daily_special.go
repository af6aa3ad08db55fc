package main

import (
	"net/http"
)

type SetDailySpecialRequest struct {
	ProductID string `json:"productId" validate:"required"`
	DayOfWeek string `json:"dayOfWeek"`
	IsDefault bool   `json:"isDefault"`
}

// getDailySpecialsHandler godoc
//
//	@Summary		Get daily specials
//	@Tags			daily-special
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/business/daily-special [get]
func (app *application) getDailySpecialsHandler(w http.ResponseWriter, r *http.Request) {
	specials, err := app.dailySpecialService.Get(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, specials); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setDailySpecialHandler godoc
//
//	@Summary		Set daily special
//	@Description	Assigns a product to a weekday, or to all weekdays when isDefault is set
//	@Tags			daily-special
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SetDailySpecialRequest	true	"Daily special"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Router			/business/daily-special/set [post]
func (app *application) setDailySpecialHandler(w http.ResponseWriter, r *http.Request) {
	var req SetDailySpecialRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	specials, err := app.dailySpecialService.Set(r.Context(), req.ProductID, req.DayOfWeek, req.IsDefault)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusOK, "Especial del día actualizado correctamente", specials); err != nil {
		app.internalServerError(w, r, err)
	}
}
