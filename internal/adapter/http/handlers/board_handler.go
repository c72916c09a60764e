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

var errInvalidBoardPayload = pkg.NewDomainErrorSimple("INVALID_BOARD_INPUT", "Invalid board payload", http.StatusBadRequest)

// BoardHandler serves live board views and the drag-and-drop move flow.
// Boards are started lazily per run and shared across viewers.

type BoardHandler struct {
	boards *usecase.BoardRegistry
}

func NewBoardHandler(boards *usecase.BoardRegistry) *BoardHandler {
	return &BoardHandler{boards: boards}
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	board, err := h.boards.Board(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		appErr := mapBoardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBoardView(board.Snapshot()))
}

func (h *BoardHandler) MoveBuild(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.MoveBuildRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoardPayload.HTTPStatus, errInvalidBoardPayload.ToHTTPError())
		return
	}

	board, err := h.boards.Board(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		appErr := mapBoardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := board.MoveBuild(c.Request.Context(), actor, c.Param("build_id"), payload.TargetStageID)
	if err != nil {
		appErr := mapBoardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if result.CaptureRequired {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromMoveResult(result))
}

func (h *BoardHandler) CompleteCapture(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var payload request.CompleteCaptureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoardPayload.HTTPStatus, errInvalidBoardPayload.ToHTTPError())
		return
	}

	board, err := h.boards.Board(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		appErr := mapBoardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := board.CompleteCapture(c.Request.Context(), actor, c.Param("build_id"), usecase.NoteCapture{
		Body:            payload.Body,
		PhotoURLs:       payload.PhotoURLs,
		VisibleToClient: payload.VisibleToClient,
	})
	if err != nil {
		appErr := mapBoardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMoveResult(result))
}

func mapBoardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBuildID), errors.Is(err, usecase.ErrInvalidStageID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActorNotStaff):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Staff role required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRunNotFound):
		return pkg.NewDomainErrorSimple("RUN_NOT_FOUND", "Run not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBuildNotFound), errors.Is(err, usecase.ErrBuildNotOnBoard):
		return pkg.NewDomainErrorSimple("BUILD_NOT_FOUND", "Build not found on this board", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageNotInRun), errors.Is(err, usecase.ErrStageNotOnBoard):
		return pkg.NewDomainErrorSimple("STAGE_NOT_IN_RUN", "Stage does not belong to this run", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCaptureNotOpen):
		return pkg.NewDomainErrorSimple("CAPTURE_NOT_OPEN", "No capture pending for this build", http.StatusConflict)
	case errors.Is(err, usecase.ErrBoardRunArchived):
		return pkg.NewDomainErrorSimple("RUN_ARCHIVED", "Run is archived", http.StatusConflict)
	case errors.Is(err, usecase.ErrBoardNotStarted):
		return pkg.NewDomainErrorSimple("BOARD_NOT_READY", "Board is not ready", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
