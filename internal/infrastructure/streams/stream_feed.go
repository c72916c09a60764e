package streams

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"luthier_works/internal/adapter/persistence/repository"
	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

const (
	defaultPollInterval  = 2 * time.Second
	recordsPerGet        = 100
	shardRefreshInterval = time.Minute
)

// StreamFeed implements the change feed on DynamoDB Streams: one polling
// goroutine per subscription walks the stream's shards and converts each
// record into a ChangeEvent. The subscription starts at LATEST, then tracks
// the last delivered sequence number per shard so a failed GetRecords or a
// shard rotation resumes where delivery stopped instead of skipping ahead.
//
// Delivery matches what the store promises: per-document commit order inside
// one stream, nothing across streams, at-least-once overall. Subscriptions
// poll until their teardown func (or the parent context) stops them; an
// abandoned subscription polls forever.

type StreamFeed struct {
	streams      *dynamodbstreams.Client
	arns         map[string]string
	pollInterval time.Duration
}

var _ interfaces.IChangeFeed = (*StreamFeed)(nil)

func NewStreamFeed(client *dynamodbstreams.Client, arns map[string]string) *StreamFeed {
	return &StreamFeed{streams: client, arns: arns, pollInterval: defaultPollInterval}
}

// StreamARNsFromEnv maps logical collections to their stream ARNs. A missing
// env var leaves that collection unsubscribable, which Subscribe reports.
func StreamARNsFromEnv() map[string]string {
	arns := make(map[string]string)
	for collection, key := range map[string]string{
		entities.CollectionRuns:       "RUNS_STREAM_ARN",
		entities.CollectionBuilds:     "BUILDS_STREAM_ARN",
		entities.CollectionNotes:      "NOTES_STREAM_ARN",
		entities.CollectionComments:   "COMMENTS_STREAM_ARN",
		entities.CollectionInvoices:   "INVOICES_STREAM_ARN",
		entities.CollectionRunUpdates: "RUN_UPDATES_STREAM_ARN",
	} {
		if v := os.Getenv(key); v != "" {
			arns[collection] = v
		}
	}
	return arns
}

func (f *StreamFeed) Subscribe(ctx context.Context, collection string) (<-chan entities.ChangeEvent, func(), error) {
	arn, ok := f.arns[collection]
	if !ok {
		return nil, nil, fmt.Errorf("no stream configured for collection %q", collection)
	}

	subCtx, cancel := context.WithCancel(ctx)
	ch := make(chan entities.ChangeEvent, 64)
	go f.poll(subCtx, collection, arn, ch)
	log.Printf("[streams][feed] subscribed collection=%s", collection)
	return ch, cancel, nil
}

func (f *StreamFeed) poll(ctx context.Context, collection, arn string, ch chan<- entities.ChangeEvent) {
	defer close(ch)

	iterators := make(map[string]string) // shard id -> next iterator
	lastSeq := make(map[string]string)   // shard id -> last delivered sequence number
	finished := make(map[string]bool)    // closed shards we have drained
	initial := true
	lastShardRefresh := time.Time{}

	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()

	for {
		if time.Since(lastShardRefresh) >= shardRefreshInterval || len(iterators) == 0 {
			if err := f.refreshShards(ctx, arn, iterators, finished, lastSeq, initial); err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("[streams][feed] shard refresh failed collection=%s err=%v", collection, err)
			}
			initial = false
			lastShardRefresh = time.Now()
		}

		for shardID, iterator := range iterators {
			out, err := f.streams.GetRecords(ctx, &dynamodbstreams.GetRecordsInput{
				ShardIterator: aws.String(iterator),
				Limit:         aws.Int32(recordsPerGet),
			})
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("[streams][feed] get-records failed collection=%s shard=%s err=%v", collection, shardID, err)
				// Only the iterator is dropped; lastSeq makes the next
				// refresh resume this shard right after the last record it
				// delivered.
				delete(iterators, shardID)
				continue
			}
			for _, record := range out.Records {
				ev, err := f.convert(collection, record)
				if err != nil {
					log.Printf("[streams][feed] record decode failed collection=%s err=%v", collection, err)
				} else {
					select {
					case ch <- ev:
					case <-ctx.Done():
						return
					}
				}
				if record.Dynamodb != nil && record.Dynamodb.SequenceNumber != nil {
					lastSeq[shardID] = *record.Dynamodb.SequenceNumber
				}
			}
			if out.NextShardIterator == nil {
				// Shard closed and fully read.
				delete(iterators, shardID)
				delete(lastSeq, shardID)
				finished[shardID] = true
				continue
			}
			iterators[shardID] = *out.NextShardIterator
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (f *StreamFeed) refreshShards(ctx context.Context, arn string, iterators map[string]string, finished map[string]bool, lastSeq map[string]string, initial bool) error {
	var exclusiveStart *string
	for {
		out, err := f.streams.DescribeStream(ctx, &dynamodbstreams.DescribeStreamInput{
			StreamArn:             aws.String(arn),
			ExclusiveStartShardId: exclusiveStart,
		})
		if err != nil {
			return err
		}
		for _, shard := range out.StreamDescription.Shards {
			shardID := aws.ToString(shard.ShardId)
			if shardID == "" || finished[shardID] {
				continue
			}
			if _, known := iterators[shardID]; known {
				continue
			}
			itOut, err := f.streams.GetShardIterator(ctx, shardIteratorInput(arn, shardID, lastSeq[shardID], initial))
			if err != nil {
				return err
			}
			if itOut.ShardIterator != nil {
				iterators[shardID] = *itOut.ShardIterator
			}
		}
		exclusiveStart = out.StreamDescription.LastEvaluatedShardId
		if exclusiveStart == nil {
			return nil
		}
	}
}

// shardIteratorInput picks where a shard's delivery resumes. A shard we have
// already delivered from resumes right after its last delivered record.
// Shards seen on the very first refresh start at LATEST: the subscription
// covers changes from "now", not the stream's retained history. Shards
// discovered later (children of a rotated shard, or a shard re-acquired
// after a GetRecords failure before anything was delivered) start at
// TRIM_HORIZON: a re-read is acceptable, a skipped record is not.
func shardIteratorInput(arn, shardID, lastSeq string, initial bool) *dynamodbstreams.GetShardIteratorInput {
	in := &dynamodbstreams.GetShardIteratorInput{
		StreamArn: aws.String(arn),
		ShardId:   aws.String(shardID),
	}
	switch {
	case lastSeq != "":
		in.ShardIteratorType = streamtypes.ShardIteratorTypeAfterSequenceNumber
		in.SequenceNumber = aws.String(lastSeq)
	case initial:
		in.ShardIteratorType = streamtypes.ShardIteratorTypeLatest
	default:
		in.ShardIteratorType = streamtypes.ShardIteratorTypeTrimHorizon
	}
	return in
}

func (f *StreamFeed) convert(collection string, record streamtypes.Record) (entities.ChangeEvent, error) {
	var kind entities.ChangeKind
	switch record.EventName {
	case streamtypes.OperationTypeInsert:
		kind = entities.ChangeKindInsert
	case streamtypes.OperationTypeModify:
		kind = entities.ChangeKindModify
	case streamtypes.OperationTypeRemove:
		kind = entities.ChangeKindRemove
	default:
		return entities.ChangeEvent{}, fmt.Errorf("unknown operation type %q", record.EventName)
	}

	ev := entities.ChangeEvent{
		Collection: collection,
		Kind:       kind,
		At:         time.Now().UTC(),
	}
	if record.Dynamodb != nil {
		ev.Sequence = aws.ToString(record.Dynamodb.SequenceNumber)
		if record.Dynamodb.ApproximateCreationDateTime != nil {
			ev.At = record.Dynamodb.ApproximateCreationDateTime.UTC()
		}
		before, err := repository.DecodeStreamImage(collection, record.Dynamodb.OldImage)
		if err != nil {
			return entities.ChangeEvent{}, err
		}
		after, err := repository.DecodeStreamImage(collection, record.Dynamodb.NewImage)
		if err != nil {
			return entities.ChangeEvent{}, err
		}
		ev.Before = before
		ev.After = after
	}
	return ev, nil
}
