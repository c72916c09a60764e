package routes

import (
	"luthier_works/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRuns          = "/runs"
	PathBuilds        = "/builds"
	PathNotifications = "/notifications"
)

func addPortalRoutes(
	rg *gin.RouterGroup,
	runHandler *handlers.RunHandler,
	buildHandler *handlers.BuildHandler,
	boardHandler *handlers.BoardHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	runs := rg.Group(PathRuns)
	{
		runs.POST("", runHandler.CreateRun)
		runs.GET("", runHandler.ListRuns)
		runs.GET("/:run_id", runHandler.GetRun)
		runs.PATCH("/:run_id/archive", runHandler.ArchiveRun)
		runs.POST("/:run_id/updates", runHandler.PostRunUpdate)

		runs.GET("/:run_id/builds", buildHandler.ListBuildsByRun)

		runs.GET("/:run_id/board", boardHandler.GetBoard)
		runs.POST("/:run_id/board/:build_id/move", boardHandler.MoveBuild)
		runs.POST("/:run_id/board/:build_id/capture", boardHandler.CompleteCapture)
	}

	builds := rg.Group(PathBuilds)
	{
		builds.POST("", buildHandler.CreateBuild)
		builds.GET("/:build_id", buildHandler.GetBuild)
		builds.PATCH("/:build_id/archive", buildHandler.SetArchived)
		builds.POST("/:build_id/notes", buildHandler.AddNote)
		builds.GET("/:build_id/notes", buildHandler.ListNotes)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListMine)
		notifications.PATCH("/read-all", notificationHandler.MarkAllRead)
		notifications.PATCH("/:notification_id/read", notificationHandler.MarkRead)
		notifications.DELETE("/:notification_id", notificationHandler.Delete)
	}
}
