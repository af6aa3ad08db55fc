package main

import (
	"net/http"

	"github.com/JesusTreelabx/routvi-console/internal/service"
)

// getProfileHandler godoc
//
//	@Summary		Get business profile
//	@Description	Returns the full business document
//	@Tags			profile
//	@Produce		json
//	@Success		200	{object}	domain.BusinessDocument
//	@Failure		500	{object}	map[string]string
//	@Router			/business/profile [get]
func (app *application) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := app.profileService.Get(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := writeJson(w, http.StatusOK, doc); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateProfileHandler godoc
//
//	@Summary		Update business profile
//	@Description	Merges the supplied profile sections onto the document
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		service.ProfilePatch	true	"Profile patch"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Router			/business/profile [put]
func (app *application) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var patch service.ProfilePatch
	if err := readJson(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	doc, err := app.profileService.Update(r.Context(), patch)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusOK, "Perfil actualizado correctamente", doc); err != nil {
		app.internalServerError(w, r, err)
	}
}
