package usecase

import (
	"context"
	"fmt"
	"log"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"
)

// commentPreviewLimit caps the comment excerpt embedded in a notification.
const commentPreviewLimit = 80

// TruncatePreview shortens body to at most limit characters, appending a
// single ellipsis when anything was cut. Limits are counted in runes so a
// multi-byte character is never split.
func TruncatePreview(body string, limit int) string {
	runes := []rune(body)
	if len(runes) <= limit {
		return body
	}
	return string(runes[:limit]) + "…"
}

// NoteCommentTrigger fans out a staff notification when someone commented
// under a build note. Bound to insert events on the comments collection;
// creation is itself the signal, there is no delta to inspect.

type NoteCommentTrigger struct {
	notes  interfaces.INoteRepository
	builds interfaces.IBuildRepository
	runs   interfaces.IRunRepository
	fanout INotificationFanoutUseCase
}

func NewNoteCommentTrigger(notes interfaces.INoteRepository, builds interfaces.IBuildRepository, runs interfaces.IRunRepository, fanout INotificationFanoutUseCase) *NoteCommentTrigger {
	return &NoteCommentTrigger{notes: notes, builds: builds, runs: runs, fanout: fanout}
}

func (t *NoteCommentTrigger) Handle(ctx context.Context, ev entities.ChangeEvent) {
	var comment entities.Comment
	if ok, err := ev.DecodeAfter(&comment); err != nil || !ok {
		if err != nil {
			log.Printf("[trigger][note-comment] decode failed err=%v", err)
		}
		return
	}
	if comment.ThreadKind != entities.ThreadKindNote {
		return
	}

	note, err := t.notes.GetByID(ctx, comment.ThreadID)
	if err != nil || note.ID == "" {
		log.Printf("[trigger][note-comment] note unresolved note_id=%s err=%v", comment.ThreadID, err)
		return
	}
	build, err := t.builds.GetByID(ctx, note.BuildID)
	if err != nil || build.ID == "" {
		log.Printf("[trigger][note-comment] build unresolved build_id=%s err=%v", note.BuildID, err)
		return
	}
	runName := build.RunID
	if run, err := t.runs.GetByID(ctx, build.RunID); err == nil && run.ID != "" {
		runName = run.Name
	}

	preview := TruncatePreview(comment.Body, commentPreviewLimit)
	t.fanout.NotifyAll(ctx, entities.FanoutPayload{
		Type:    entities.NotificationTypeNoteComment,
		Title:   fmt.Sprintf("New comment on %s (%s)", build.OrderNumber, runName),
		Message: preview,
		Meta: entities.NotificationMeta{
			GuitarID:       build.ID,
			RunID:          build.RunID,
			NoteID:         note.ID,
			CommentID:      comment.ID,
			CommentPreview: preview,
		},
	})
}

// RunUpdateCommentTrigger fans out a staff notification when someone
// commented under a run update. Bound to insert events on the comments
// collection.

type RunUpdateCommentTrigger struct {
	updates interfaces.IRunUpdateRepository
	runs    interfaces.IRunRepository
	fanout  INotificationFanoutUseCase
}

func NewRunUpdateCommentTrigger(updates interfaces.IRunUpdateRepository, runs interfaces.IRunRepository, fanout INotificationFanoutUseCase) *RunUpdateCommentTrigger {
	return &RunUpdateCommentTrigger{updates: updates, runs: runs, fanout: fanout}
}

func (t *RunUpdateCommentTrigger) Handle(ctx context.Context, ev entities.ChangeEvent) {
	var comment entities.Comment
	if ok, err := ev.DecodeAfter(&comment); err != nil || !ok {
		if err != nil {
			log.Printf("[trigger][update-comment] decode failed err=%v", err)
		}
		return
	}
	if comment.ThreadKind != entities.ThreadKindRunUpdate {
		return
	}

	update, err := t.updates.GetByID(ctx, comment.ThreadID)
	if err != nil || update.ID == "" {
		log.Printf("[trigger][update-comment] run update unresolved update_id=%s err=%v", comment.ThreadID, err)
		return
	}
	runName := update.RunID
	if run, err := t.runs.GetByID(ctx, update.RunID); err == nil && run.ID != "" {
		runName = run.Name
	}

	t.fanout.NotifyAll(ctx, entities.FanoutPayload{
		Type:    entities.NotificationTypeRunUpdateComment,
		Title:   fmt.Sprintf("New comment on update %q (%s)", update.Title, runName),
		Message: TruncatePreview(comment.Body, commentPreviewLimit),
		Meta: entities.NotificationMeta{
			RunID:          update.RunID,
			RunUpdateID:    update.ID,
			CommentID:      comment.ID,
			CommentPreview: TruncatePreview(comment.Body, commentPreviewLimit),
		},
	})
}
