package analytics

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/1Percent-hub/ScholarHub/pkg/kafka"
	"github.com/1Percent-hub/ScholarHub/pkg/metrics"
	"github.com/1Percent-hub/ScholarHub/pkg/resilience"
)

const (
	defaultBufferSize    = 10000
	defaultBatchSize     = 100
	defaultFlushInterval = 5 * time.Second
	finalFlushTimeout    = 5 * time.Second
	publishTimeout       = 10 * time.Second
)

// Collector ships chat events to Kafka. Track never blocks: events go into
// a buffered channel and are dropped (with a counter) when it is full. The
// background loop batches events and flushes on size or interval, with a
// final bounded flush on shutdown.
type Collector struct {
	producer *kafka.Producer
	metrics  *metrics.Metrics
	eventCh  chan ChatEvent
	dropped  atomic.Int64
	logger   *slog.Logger
	done     chan struct{}
}

// NewCollector creates a Collector over the given producer. bufferSize <= 0
// selects the default.
func NewCollector(producer *kafka.Producer, m *metrics.Metrics, bufferSize int) *Collector {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Collector{
		producer: producer,
		metrics:  m,
		eventCh:  make(chan ChatEvent, bufferSize),
		logger:   slog.Default().With("component", "analytics-collector"),
		done:     make(chan struct{}),
	}
}

// Start launches the flush loop. It returns immediately; the loop runs
// until ctx is cancelled or Close is called.
func (c *Collector) Start(ctx context.Context) {
	go func() {
		defer close(c.done)
		ticker := time.NewTicker(defaultFlushInterval)
		defer ticker.Stop()

		batch := make([]kafka.Event, 0, defaultBatchSize)
		for {
			select {
			case event, ok := <-c.eventCh:
				if !ok {
					c.flush(ctx, batch)
					return
				}
				batch = append(batch, kafka.Event{Key: string(event.Type), Value: event})
				if len(batch) >= defaultBatchSize {
					c.flush(ctx, batch)
					batch = batch[:0]
				}
			case <-ticker.C:
				c.flush(ctx, batch)
				batch = batch[:0]
			case <-ctx.Done():
				batch = c.drainRemaining(batch)
				flushCtx, cancel := context.WithTimeout(context.Background(), finalFlushTimeout)
				c.flush(flushCtx, batch)
				cancel()
				return
			}
		}
	}()
	c.logger.Info("analytics collector started", "buffer_size", cap(c.eventCh))
}

// Track queues an event for publishing. When the buffer is full the event
// is dropped and counted; callers are never blocked.
func (c *Collector) Track(event ChatEvent) {
	select {
	case c.eventCh <- event:
	default:
		c.dropped.Add(1)
		if c.metrics != nil {
			c.metrics.EventsPublishedTotal.WithLabelValues("dropped").Inc()
		}
		c.logger.Warn("chat event dropped (buffer full)", "type", event.Type)
	}
}

// Dropped reports how many events were discarded because the buffer was
// full.
func (c *Collector) Dropped() int64 {
	return c.dropped.Load()
}

// Close stops accepting events and waits for the flush loop to drain.
func (c *Collector) Close() {
	close(c.eventCh)
	<-c.done
}

func (c *Collector) flush(ctx context.Context, batch []kafka.Event) {
	if len(batch) == 0 {
		return
	}
	// A wedged broker must not stall the loop; the batch is lost past the
	// bound, same as any other publish failure.
	err := resilience.WithTimeout(ctx, publishTimeout, "event-batch-publish", func(ctx context.Context) error {
		return c.producer.PublishBatch(ctx, batch)
	})
	if err != nil {
		if c.metrics != nil {
			c.metrics.EventsPublishedTotal.WithLabelValues("error").Inc()
		}
		c.logger.Error("event batch publish failed", "batch_size", len(batch), "error", err)
		return
	}
	if c.metrics != nil {
		c.metrics.EventsPublishedTotal.WithLabelValues("ok").Add(float64(len(batch)))
	}
	c.logger.Debug("event batch flushed", "events", len(batch))
}

// drainRemaining empties whatever is still queued without blocking.
func (c *Collector) drainRemaining(batch []kafka.Event) []kafka.Event {
	for {
		select {
		case event, ok := <-c.eventCh:
			if !ok {
				return batch
			}
			batch = append(batch, kafka.Event{Key: string(event.Type), Value: event})
		default:
			return batch
		}
	}
}
