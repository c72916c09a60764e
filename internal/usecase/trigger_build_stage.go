package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"
)

// BuildStageTrigger emails a build's client when the build moved to a new
// stage. Bound to modify events on the builds collection.

type BuildStageTrigger struct {
	runs      interfaces.IRunRepository
	directory interfaces.IDirectoryPager
	profiles  interfaces.IClientProfileRepository
	mail      interfaces.IMailGateway
}

func NewBuildStageTrigger(runs interfaces.IRunRepository, directory interfaces.IDirectoryPager, profiles interfaces.IClientProfileRepository, mail interfaces.IMailGateway) *BuildStageTrigger {
	return &BuildStageTrigger{runs: runs, directory: directory, profiles: profiles, mail: mail}
}

func (t *BuildStageTrigger) Handle(ctx context.Context, ev entities.ChangeEvent) {
	var before, after entities.Build
	if ok, err := ev.DecodeBefore(&before); err != nil || !ok {
		if err != nil {
			log.Printf("[trigger][build-stage] before decode failed err=%v", err)
		}
		return
	}
	if ok, err := ev.DecodeAfter(&after); err != nil || !ok {
		if err != nil {
			log.Printf("[trigger][build-stage] after decode failed err=%v", err)
		}
		return
	}
	if after.StageID == before.StageID {
		return
	}
	if !after.HasClientContact() {
		log.Printf("[trigger][build-stage] stage changed but no client contact build_id=%s", after.ID)
		return
	}

	email := t.resolveClientEmail(ctx, after)
	if email == "" {
		log.Printf("[trigger][build-stage] client email unresolved build_id=%s client_id=%s", after.ID, after.ClientID)
		return
	}

	oldLabel, newLabel := t.resolveStageLabels(ctx, after.RunID, before.StageID, after.StageID)
	subject := fmt.Sprintf("Your %s has moved to %s", after.Model, newLabel)
	html := fmt.Sprintf(
		"<p>Good news! Build <strong>%s</strong> (%s, %s) has progressed from <em>%s</em> to <em>%s</em>.</p>",
		after.OrderNumber, after.Model, after.Finish, oldLabel, newLabel,
	)
	text := fmt.Sprintf("Good news! Build %s (%s, %s) has progressed from %s to %s.",
		after.OrderNumber, after.Model, after.Finish, oldLabel, newLabel)

	if err := t.mail.Send(ctx, email, subject, html, text); err != nil {
		log.Printf("[trigger][build-stage] email send failed build_id=%s err=%v", after.ID, err)
		return
	}
	log.Printf("[trigger][build-stage] stage-change email sent build_id=%s stage_id=%s", after.ID, after.StageID)
}

// resolveClientEmail prefers the live auth record, falls back to the
// denormalized profile document, and finally to the email denormalized onto
// the build itself.
func (t *BuildStageTrigger) resolveClientEmail(ctx context.Context, b entities.Build) string {
	if b.ClientID != "" {
		if email, err := t.directory.EmailByID(ctx, b.ClientID); err == nil && email != "" {
			return email
		} else if err != nil {
			log.Printf("[trigger][build-stage] auth email lookup failed client_id=%s err=%v", b.ClientID, err)
		}
		if profile, err := t.profiles.GetByID(ctx, b.ClientID); err == nil && profile.Email != "" {
			return profile.Email
		} else if err != nil {
			log.Printf("[trigger][build-stage] profile email lookup failed client_id=%s err=%v", b.ClientID, err)
		}
	}
	return strings.TrimSpace(b.ClientEmail)
}

// resolveStageLabels maps stage ids to human-readable labels, preferring the
// client-facing label over the internal one. Unresolvable stages degrade to
// a generic label rather than dropping the email.
func (t *BuildStageTrigger) resolveStageLabels(ctx context.Context, runID, oldStageID, newStageID string) (string, string) {
	oldLabel, newLabel := "a previous stage", "a new stage"
	run, err := t.runs.GetByID(ctx, runID)
	if err != nil || run.ID == "" {
		if err != nil {
			log.Printf("[trigger][build-stage] run load failed run_id=%s err=%v", runID, err)
		}
		return oldLabel, newLabel
	}
	if s, ok := run.StageByID(oldStageID); ok {
		if l := s.DisplayLabel(); l != "" {
			oldLabel = l
		}
	}
	if s, ok := run.StageByID(newStageID); ok {
		if l := s.DisplayLabel(); l != "" {
			newLabel = l
		}
	}
	return oldLabel, newLabel
}
