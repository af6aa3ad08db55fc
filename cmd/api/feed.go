package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
)

// getHomeFeedHandler godoc
//
//	@Summary		Get home feed
//	@Description	Nearby businesses with open-now and promotion flags
//	@Tags			feed
//	@Produce		json
//	@Param			lat			query		number	false	"Latitude"
//	@Param			lng			query		number	false	"Longitude"
//	@Param			radiusKm	query		number	false	"Radius in km"
//	@Success		200			{object}	map[string]interface{}
//	@Router			/home-feed [get]
func (app *application) getHomeFeedHandler(w http.ResponseWriter, r *http.Request) {
	lat := queryFloat(r, "lat", 0)
	lng := queryFloat(r, "lng", 0)
	radiusKm := queryFloat(r, "radiusKm", 3)

	entries, err := app.feedService.HomeFeed(r.Context(), lat, lng, radiusKm)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, entries); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getBusinessDetailHandler godoc
//
//	@Summary		Get business detail by slug
//	@Description	Storefront projection; businesses without an active subscription come back unavailable
//	@Tags			feed
//	@Produce		json
//	@Param			slug	path		string	true	"Business slug"
//	@Success		200		{object}	service.BusinessDetail
//	@Failure		404		{object}	map[string]string
//	@Router			/businesses/{slug} [get]
func (app *application) getBusinessDetailHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		app.badRequestResponse(w, r, ErrMissingID)
		return
	}

	detail, err := app.feedService.BusinessDetail(r.Context(), slug)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, detail); err != nil {
		app.internalServerError(w, r, err)
	}
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}

	return value
}
