package main

import (
	"net/http"
)

// publishSiteHandler godoc
//
//	@Summary		Publish storefront
//	@Description	Queues a storefront rebuild; changes go live when the job completes
//	@Tags			publish
//	@Produce		json
//	@Success		202	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/business/publish [post]
func (app *application) publishSiteHandler(w http.ResponseWriter, r *http.Request) {
	jobID, err := app.publishService.QueuePublish(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	response := map[string]string{
		"jobId":  jobID,
		"status": "queued",
	}

	if err := app.jsonRespone(w, http.StatusAccepted, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
