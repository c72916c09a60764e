package usecase

import (
	"context"
	"fmt"
	"log"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"
)

// RunUpdateCreatedTrigger emails every distinct client owning a build in a
// run when a client-visible update is posted. Bound to insert events on the
// run_updates collection.
//
// One client's send failure never blocks the next; failures are logged per
// recipient and swallowed.

type RunUpdateCreatedTrigger struct {
	builds    interfaces.IBuildRepository
	directory interfaces.IDirectoryPager
	profiles  interfaces.IClientProfileRepository
	mail      interfaces.IMailGateway
}

func NewRunUpdateCreatedTrigger(builds interfaces.IBuildRepository, directory interfaces.IDirectoryPager, profiles interfaces.IClientProfileRepository, mail interfaces.IMailGateway) *RunUpdateCreatedTrigger {
	return &RunUpdateCreatedTrigger{builds: builds, directory: directory, profiles: profiles, mail: mail}
}

func (t *RunUpdateCreatedTrigger) Handle(ctx context.Context, ev entities.ChangeEvent) {
	var update entities.RunUpdate
	if ok, err := ev.DecodeAfter(&update); err != nil || !ok {
		if err != nil {
			log.Printf("[trigger][run-update] decode failed err=%v", err)
		}
		return
	}
	if !update.VisibleToClients {
		return
	}

	builds, err := t.builds.ListByRunID(ctx, update.RunID)
	if err != nil {
		log.Printf("[trigger][run-update] build listing failed run_id=%s err=%v", update.RunID, err)
		return
	}

	// Distinct client ids; a client with several builds in the run gets one
	// email, not one per build.
	clients := make(map[string]entities.Build)
	for _, b := range builds {
		if b.Archived || b.ClientID == "" {
			continue
		}
		if _, ok := clients[b.ClientID]; !ok {
			clients[b.ClientID] = b
		}
	}
	if len(clients) == 0 {
		log.Printf("[trigger][run-update] no client recipients run_id=%s update_id=%s", update.RunID, update.ID)
		return
	}

	subject := fmt.Sprintf("Shop update: %s", update.Title)
	html := fmt.Sprintf("<h2>%s</h2><p>%s</p>", update.Title, update.Body)
	sent := 0
	for clientID, b := range clients {
		email := t.resolveClientEmail(ctx, clientID, b)
		if email == "" {
			log.Printf("[trigger][run-update] client email unresolved client_id=%s update_id=%s", clientID, update.ID)
			continue
		}
		if err := t.mail.Send(ctx, email, subject, html, update.Body); err != nil {
			log.Printf("[trigger][run-update] email send failed client_id=%s update_id=%s err=%v", clientID, update.ID, err)
			continue
		}
		sent++
	}
	log.Printf("[trigger][run-update] client emails sent update_id=%s clients=%d sent=%d", update.ID, len(clients), sent)
}

func (t *RunUpdateCreatedTrigger) resolveClientEmail(ctx context.Context, clientID string, b entities.Build) string {
	if email, err := t.directory.EmailByID(ctx, clientID); err == nil && email != "" {
		return email
	} else if err != nil {
		log.Printf("[trigger][run-update] auth email lookup failed client_id=%s err=%v", clientID, err)
	}
	if profile, err := t.profiles.GetByID(ctx, clientID); err == nil && profile.Email != "" {
		return profile.Email
	} else if err != nil {
		log.Printf("[trigger][run-update] profile email lookup failed client_id=%s err=%v", clientID, err)
	}
	return b.ClientEmail
}
