package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
)

var ErrMissingID = errors.New("missing ID in URL")

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// listCategoriesHandler godoc
//
//	@Summary		List menu categories
//	@Tags			menu
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/business/menu/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := app.catalogService.ListCategories(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, categories); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createCategoryHandler godoc
//
//	@Summary		Create menu category
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CategoryRequest	true	"Category"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Router			/business/menu/categories [post]
func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category, err := app.catalogService.CreateCategory(r.Context(), req.Name)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusCreated, "Categoría creada correctamente", category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// renameCategoryHandler godoc
//
//	@Summary		Rename menu category
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			category_id	path		string			true	"Category ID"
//	@Param			request		body		CategoryRequest	true	"Category"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/business/menu/categories/{category_id} [put]
func (app *application) renameCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "category_id")
	if categoryID == "" {
		app.badRequestResponse(w, r, ErrMissingID)
		return
	}

	var req CategoryRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category, err := app.catalogService.RenameCategory(r.Context(), categoryID, req.Name)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusOK, "Categoría actualizada correctamente", category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCategoryHandler godoc
//
//	@Summary		Delete menu category
//	@Description	Deletes the category and all of its products
//	@Tags			menu
//	@Produce		json
//	@Param			category_id	path		string	true	"Category ID"
//	@Success		200			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/business/menu/categories/{category_id} [delete]
func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "category_id")
	if categoryID == "" {
		app.badRequestResponse(w, r, ErrMissingID)
		return
	}

	if err := app.catalogService.DeleteCategory(r.Context(), categoryID); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusOK, "Categoría eliminada correctamente", nil); err != nil {
		app.internalServerError(w, r, err)
	}
}
