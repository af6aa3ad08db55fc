package main

import (
	"net/http"
)

type CreateSocialPostRequest struct {
	Content  string `json:"content" validate:"required"`
	MediaURL string `json:"mediaUrl"`
	Type     string `json:"type"`
}

// listSocialPostsHandler godoc
//
//	@Summary		List social posts
//	@Description	Returns posts sorted newest first
//	@Tags			social
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/business/social-posts [get]
func (app *application) listSocialPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := app.socialService.List(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, posts); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createSocialPostHandler godoc
//
//	@Summary		Create social post
//	@Tags			social
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSocialPostRequest	true	"Post"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Router			/business/social-posts [post]
func (app *application) createSocialPostHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSocialPostRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	post, err := app.socialService.Create(r.Context(), req.Content, req.MediaURL, req.Type)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusCreated, "Publicación creada correctamente", post); err != nil {
		app.internalServerError(w, r, err)
	}
}
