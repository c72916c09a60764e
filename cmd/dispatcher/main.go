package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"luthier_works/internal/adapter/persistence/repository"
	"luthier_works/internal/domain/entities"
	"luthier_works/internal/infrastructure/database"
	"luthier_works/internal/infrastructure/directory"
	"luthier_works/internal/infrastructure/mail"
	"luthier_works/internal/infrastructure/streams"
	"luthier_works/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

// The dispatcher is the change-feed side of the portal: it tails the table
// streams and turns document changes into notification fan-outs and client
// emails. It shares no process state with the API binary.

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb := database.ConnectDynamoDB()

	runRepo := repository.NewRunDynamoRepository(ddb)
	buildRepo := repository.NewBuildDynamoRepository(ddb)
	noteRepo := repository.NewNoteDynamoRepository(ddb)
	updateRepo := repository.NewRunUpdateDynamoRepository(ddb)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb)
	profileRepo := repository.NewClientProfileDynamoRepository(ddb)

	cognitoDirectory, err := directory.NewCognitoDirectory(database.ConnectCognito())
	if err != nil {
		log.Fatalf("[dispatcher] directory not configured: %v", err)
	}

	mailer := mail.NewSendGridMailer()
	enumerator := usecase.NewDirectoryEnumerator(cognitoDirectory)
	fanout := usecase.NewNotificationFanoutUseCase(enumerator, notificationRepo)

	buildStage := usecase.NewBuildStageTrigger(runRepo, cognitoDirectory, profileRepo, mailer)
	paymentPending := usecase.NewPaymentPendingTrigger(fanout)
	noteComment := usecase.NewNoteCommentTrigger(noteRepo, buildRepo, runRepo, fanout)
	updateComment := usecase.NewRunUpdateCommentTrigger(updateRepo, runRepo, fanout)
	updateCreated := usecase.NewRunUpdateCreatedTrigger(buildRepo, cognitoDirectory, profileRepo, mailer)

	feed := streams.NewStreamFeed(database.ConnectDynamoDBStreams(), streams.StreamARNsFromEnv())

	dispatcher := usecase.NewTriggerDispatcher(feed)
	dispatcher.Bind(entities.CollectionBuilds, entities.ChangeKindModify, buildStage.Handle)
	dispatcher.Bind(entities.CollectionInvoices, entities.ChangeKindModify, paymentPending.Handle)
	dispatcher.Bind(entities.CollectionComments, entities.ChangeKindInsert, noteComment.Handle)
	dispatcher.Bind(entities.CollectionComments, entities.ChangeKindInsert, updateComment.Handle)
	dispatcher.Bind(entities.CollectionRunUpdates, entities.ChangeKindInsert, updateCreated.Handle)

	log.Printf("[dispatcher] starting change-feed consumers")
	if err := dispatcher.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("[dispatcher] stopped: %v", err)
	}
	log.Printf("[dispatcher] shut down")
}
