package handlers

import (
	"errors"
	"net/http"

	request "luthier_works/internal/adapter/http/dto/request"
	response "luthier_works/internal/adapter/http/dto/response"
	"luthier_works/internal/usecase"
	"luthier_works/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRunPayload = pkg.NewDomainErrorSimple("INVALID_RUN_INPUT", "Invalid run payload", http.StatusBadRequest)

// RunHandler handles HTTP requests for production runs and their broadcast
// updates.

type RunHandler struct {
	usecase usecase.IRunUseCase
}

func NewRunHandler(uc usecase.IRunUseCase) *RunHandler {
	return &RunHandler{usecase: uc}
}

func (h *RunHandler) CreateRun(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.CreateRunRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRunPayload.HTTPStatus, errInvalidRunPayload.ToHTTPError())
		return
	}

	stages := make([]usecase.StageInput, 0, len(payload.Stages))
	for _, s := range payload.Stages {
		stages = append(stages, usecase.StageInput{
			Label:         s.Label,
			Order:         s.Order,
			InternalOnly:  s.InternalOnly,
			RequiresNote:  s.RequiresNote,
			RequiresPhoto: s.RequiresPhoto,
			ClientLabel:   s.ClientLabel,
		})
	}

	run, err := h.usecase.CreateRun(c.Request.Context(), actor, payload.Name, payload.Site, stages)
	if err != nil {
		appErr := mapRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRun(run))
}

func (h *RunHandler) GetRun(c *gin.Context) {
	run, err := h.usecase.GetRun(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		appErr := mapRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRun(run))
}

func (h *RunHandler) ListRuns(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"

	runs, err := h.usecase.ListRuns(c.Request.Context(), includeArchived)
	if err != nil {
		appErr := mapRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRuns(runs))
}

func (h *RunHandler) ArchiveRun(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	run, err := h.usecase.ArchiveRun(c.Request.Context(), actor, c.Param("run_id"))
	if err != nil {
		appErr := mapRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRun(run))
}

func (h *RunHandler) PostRunUpdate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.RunUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRunPayload.HTTPStatus, errInvalidRunPayload.ToHTTPError())
		return
	}

	update, err := h.usecase.PostRunUpdate(
		c.Request.Context(), actor, c.Param("run_id"),
		payload.Title, payload.Body, payload.PhotoURLs, payload.VisibleToClients,
	)
	if err != nil {
		appErr := mapRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRunUpdate(update))
}

func mapRunError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRunName),
		errors.Is(err, usecase.ErrNoStages),
		errors.Is(err, usecase.ErrDuplicateOrder),
		errors.Is(err, usecase.ErrInvalidUpdateBody):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActorNotStaff):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Staff role required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRunNotFound):
		return pkg.NewDomainErrorSimple("RUN_NOT_FOUND", "Run not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
