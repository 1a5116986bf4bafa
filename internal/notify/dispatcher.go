// Package notify turns domain mutations into notification records.
// Delivery is fire-and-forget: failures are logged and counted, never
// returned to the request that triggered them.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/notification"
)

const defaultTimeout = 10 * time.Second

var (
	notificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campuslearn_notifications_created_total",
		Help: "Notification rows written, by type.",
	}, []string{"type"})

	notificationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campuslearn_notifications_failed_total",
		Help: "Notification deliveries that failed, by stage.",
	}, []string{"stage"})
)

// Event a mutation worth telling people about
type Event struct {
	Type       string
	Recipients []uint
	Title      string
	Body       string
	Metadata   map[string]any
}

// Sink receives rows after they are stored (kafka, email)
type Sink interface {
	Name() string
	Deliver(ctx context.Context, ev Event, rows []notification.Notification) error
}

type Dispatcher struct {
	store   Store
	sinks   []Sink
	log     *logger.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(store Store, log *logger.Logger, sinks ...Sink) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{
		store:   store,
		sinks:   sinks,
		log:     log,
		timeout: defaultTimeout,
	}
}

// Dispatch returns immediately; delivery continues after the request ends
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if d == nil {
		return
	}
	ev.Recipients = Unique(ev.Recipients)
	if len(ev.Recipients) == 0 {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()
		d.deliver(ctx, ev)
	}()
}

// Wait blocks until in-flight deliveries finish
func (d *Dispatcher) Wait() {
	if d == nil {
		return
	}
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			notificationsFailed.WithLabelValues("panic").Inc()
			d.log.Error(ctx, "notification delivery panicked",
				zap.String("type", ev.Type),
				zap.String("panic", fmt.Sprint(r)),
			)
		}
	}()

	rows := make([]notification.Notification, 0, len(ev.Recipients))
	for _, userID := range ev.Recipients {
		rows = append(rows, notification.Notification{
			UserID:   userID,
			Type:     ev.Type,
			Title:    ev.Title,
			Body:     ev.Body,
			Metadata: ev.Metadata,
		})
	}

	stored, err := d.store.CreateBatch(ctx, rows)
	if err != nil {
		notificationsFailed.WithLabelValues("store").Inc()
		d.log.Error(ctx, "failed to store notifications",
			zap.String("type", ev.Type),
			zap.Uints("recipients", ev.Recipients),
			zap.Error(err),
		)
		return
	}
	notificationsCreated.WithLabelValues(ev.Type).Add(float64(len(stored)))

	for _, sink := range d.sinks {
		if err := sink.Deliver(ctx, ev, stored); err != nil {
			notificationsFailed.WithLabelValues(sink.Name()).Inc()
			d.log.Warn(ctx, "notification sink failed",
				zap.String("sink", sink.Name()),
				zap.String("type", ev.Type),
				zap.Error(err),
			)
		}
	}
}
