package main

import (
	"net/http"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/service"
	"github.com/go-chi/chi"
)

type CreateProductRequest struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Price       *domain.Price `json:"price" validate:"required"`
	Image       string        `json:"image"`
}

// listProductsHandler godoc
//
//	@Summary		List products in a category
//	@Tags			menu
//	@Produce		json
//	@Param			category_id	path		string	true	"Category ID"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		404			{object}	map[string]string
//	@Router			/business/menu/categories/{category_id}/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "category_id")
	if categoryID == "" {
		app.badRequestResponse(w, r, ErrMissingID)
		return
	}

	products, err := app.catalogService.ListProducts(r.Context(), categoryID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, products); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createProductHandler godoc
//
//	@Summary		Create product in a category
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			category_id	path		string					true	"Category ID"
//	@Param			request		body		CreateProductRequest	true	"Product"
//	@Success		201			{object}	map[string]interface{}
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/business/menu/categories/{category_id}/products [post]
func (app *application) createProductHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "category_id")
	if categoryID == "" {
		app.badRequestResponse(w, r, ErrMissingID)
		return
	}

	var req CreateProductRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.catalogService.CreateProduct(r.Context(), categoryID, service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusCreated, "Producto agregado correctamente", product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateProductHandler godoc
//
//	@Summary		Update product
//	@Description	Merges the supplied fields onto the product
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			product_id	path		string					true	"Product ID"
//	@Param			request		body		service.ProductPatch	true	"Product patch"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		404			{object}	map[string]string
//	@Router			/business/menu/products/{product_id} [put]
func (app *application) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		app.badRequestResponse(w, r, ErrMissingID)
		return
	}

	var patch service.ProductPatch
	if err := readJson(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.catalogService.UpdateProduct(r.Context(), productID, patch)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusOK, "Producto actualizado correctamente", product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteProductHandler godoc
//
//	@Summary		Delete product
//	@Tags			menu
//	@Produce		json
//	@Param			product_id	path		string	true	"Product ID"
//	@Success		200			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/business/menu/products/{product_id} [delete]
func (app *application) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		app.badRequestResponse(w, r, ErrMissingID)
		return
	}

	if err := app.catalogService.DeleteProduct(r.Context(), productID); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.messageRespone(w, http.StatusOK, "Producto eliminado correctamente", nil); err != nil {
		app.internalServerError(w, r, err)
	}
}
