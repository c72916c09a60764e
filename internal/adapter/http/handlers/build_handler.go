package handlers

import (
	"errors"
	"net/http"

	request "luthier_works/internal/adapter/http/dto/request"
	response "luthier_works/internal/adapter/http/dto/response"
	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase"
	"luthier_works/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBuildPayload = pkg.NewDomainErrorSimple("INVALID_BUILD_INPUT", "Invalid build payload", http.StatusBadRequest)

// BuildHandler handles HTTP requests for guitars in a run: registration,
// archive flags and the note trail. Stage movement goes through the board
// handler instead.

type BuildHandler struct {
	usecase usecase.IBuildUseCase
}

func NewBuildHandler(uc usecase.IBuildUseCase) *BuildHandler {
	return &BuildHandler{usecase: uc}
}

func (h *BuildHandler) CreateBuild(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.CreateBuildRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuildPayload.HTTPStatus, errInvalidBuildPayload.ToHTTPError())
		return
	}

	in := usecase.NewBuildInput{
		RunID:       payload.RunID,
		ClientID:    payload.ClientID,
		ClientName:  payload.ClientName,
		ClientEmail: payload.ClientEmail,
		OrderNumber: payload.OrderNumber,
		Model:       payload.Model,
		Finish:      payload.Finish,
		Serial:      payload.Serial,
	}
	if payload.Spec != nil {
		in.Spec = &entities.BuildSpec{
			BodyWood:    payload.Spec.BodyWood,
			NeckWood:    payload.Spec.NeckWood,
			Fretboard:   payload.Spec.Fretboard,
			Pickups:     payload.Spec.Pickups,
			Hardware:    payload.Spec.Hardware,
			ScaleLength: payload.Spec.ScaleLength,
			Notes:       payload.Spec.Notes,
		}
	}

	build, err := h.usecase.CreateBuild(c.Request.Context(), actor, in)
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBuild(build))
}

func (h *BuildHandler) GetBuild(c *gin.Context) {
	build, err := h.usecase.GetBuild(c.Request.Context(), c.Param("build_id"))
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBuild(build))
}

func (h *BuildHandler) ListBuildsByRun(c *gin.Context) {
	builds, err := h.usecase.ListBuildsByRun(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBuilds(builds))
}

func (h *BuildHandler) SetArchived(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.ArchiveBuildRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuildPayload.HTTPStatus, errInvalidBuildPayload.ToHTTPError())
		return
	}

	build, err := h.usecase.SetArchived(c.Request.Context(), actor, c.Param("build_id"), payload.Archived)
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBuild(build))
}

func (h *BuildHandler) AddNote(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuildPayload.HTTPStatus, errInvalidBuildPayload.ToHTTPError())
		return
	}

	note, err := h.usecase.AddNote(c.Request.Context(), actor, c.Param("build_id"), usecase.NoteCapture{
		Body:            payload.Body,
		PhotoURLs:       payload.PhotoURLs,
		VisibleToClient: payload.VisibleToClient,
	})
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromNote(note))
}

func (h *BuildHandler) ListNotes(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	notes, err := h.usecase.ListNotes(c.Request.Context(), actor, c.Param("build_id"))
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotes(notes))
}

func mapBuildError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBuildID),
		errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidModel),
		errors.Is(err, usecase.ErrEmptyNote):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActorNotStaff):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Staff role required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBuildNotFound):
		return pkg.NewDomainErrorSimple("BUILD_NOT_FOUND", "Build not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRunNotFound):
		return pkg.NewDomainErrorSimple("RUN_NOT_FOUND", "Run not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
