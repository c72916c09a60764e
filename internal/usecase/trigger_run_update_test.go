package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"luthier_works/internal/domain/entities"
	mock_interfaces "luthier_works/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func runUpdateEvent(t *testing.T, u entities.RunUpdate) entities.ChangeEvent {
	t.Helper()
	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal update: %v", err)
	}
	return entities.ChangeEvent{
		Collection: entities.CollectionRunUpdates,
		Kind:       entities.ChangeKindInsert,
		After:      raw,
	}
}

func TestRunUpdateCreatedTrigger(t *testing.T) {
	update := entities.RunUpdate{
		ID: "upd-1", RunID: "run-1", Title: "Necks carved",
		Body: "All twelve necks are carved and resting.", VisibleToClients: true,
	}

	t.Run("each distinct client gets one email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		builds := mock_interfaces.NewMockIBuildRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryPager(ctrl)
		profiles := mock_interfaces.NewMockIClientProfileRepository(ctrl)
		mail := mock_interfaces.NewMockIMailGateway(ctrl)
		trigger := NewRunUpdateCreatedTrigger(builds, directory, profiles, mail)

		builds.EXPECT().ListByRunID(gomock.Any(), "run-1").Return([]entities.Build{
			{ID: "b1", RunID: "run-1", ClientID: "client-1"},
			{ID: "b2", RunID: "run-1", ClientID: "client-2"},
			{ID: "b3", RunID: "run-1", ClientID: "client-1"}, // same client, second build
			{ID: "b4", RunID: "run-1"},                       // house build, no client
			{ID: "b5", RunID: "run-1", ClientID: "client-3", Archived: true},
		}, nil)

		directory.EXPECT().EmailByID(gomock.Any(), "client-1").Return("one@example.com", nil)
		directory.EXPECT().EmailByID(gomock.Any(), "client-2").Return("two@example.com", nil)
		mail.EXPECT().Send(gomock.Any(), "one@example.com", "Shop update: Necks carved", gomock.Any(), update.Body).Return(nil)
		mail.EXPECT().Send(gomock.Any(), "two@example.com", "Shop update: Necks carved", gomock.Any(), update.Body).Return(nil)

		trigger.Handle(context.Background(), runUpdateEvent(t, update))
	})

	t.Run("internal update sends nothing", func(t *testing.T) {
		trigger := NewRunUpdateCreatedTrigger(nil, nil, nil, nil)

		internal := update
		internal.VisibleToClients = false

		trigger.Handle(context.Background(), runUpdateEvent(t, internal))
	})

	t.Run("one failed send does not block the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		builds := mock_interfaces.NewMockIBuildRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryPager(ctrl)
		profiles := mock_interfaces.NewMockIClientProfileRepository(ctrl)
		mail := mock_interfaces.NewMockIMailGateway(ctrl)
		trigger := NewRunUpdateCreatedTrigger(builds, directory, profiles, mail)

		builds.EXPECT().ListByRunID(gomock.Any(), "run-1").Return([]entities.Build{
			{ID: "b1", RunID: "run-1", ClientID: "client-1"},
			{ID: "b2", RunID: "run-1", ClientID: "client-2"},
		}, nil)

		directory.EXPECT().EmailByID(gomock.Any(), "client-1").Return("one@example.com", nil)
		directory.EXPECT().EmailByID(gomock.Any(), "client-2").Return("two@example.com", nil)
		mail.EXPECT().Send(gomock.Any(), "one@example.com", gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("bounced"))
		mail.EXPECT().Send(gomock.Any(), "two@example.com", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		trigger.Handle(context.Background(), runUpdateEvent(t, update))
	})

	t.Run("unresolvable client is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		builds := mock_interfaces.NewMockIBuildRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryPager(ctrl)
		profiles := mock_interfaces.NewMockIClientProfileRepository(ctrl)
		mail := mock_interfaces.NewMockIMailGateway(ctrl)
		trigger := NewRunUpdateCreatedTrigger(builds, directory, profiles, mail)

		builds.EXPECT().ListByRunID(gomock.Any(), "run-1").Return([]entities.Build{
			{ID: "b1", RunID: "run-1", ClientID: "client-1"},
		}, nil)

		directory.EXPECT().EmailByID(gomock.Any(), "client-1").Return("", nil)
		profiles.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.ClientProfile{}, nil)

		trigger.Handle(context.Background(), runUpdateEvent(t, update))
	})
}
