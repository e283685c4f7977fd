package kafka

import (
	"context"
	"log/slog"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.EventEmitter = (*ClientEventsProducer)(nil)

// A producer is used for composition: producing records to the
// broker and closing the underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(ctx context.Context, rs ...*kgo.Record) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// A ClientEventsProducer emits [domain.ClientEvent] records keyed
// by user id so one user's activity stays in partition order.
type ClientEventsProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewClientEventsProducer(opts ...ProducerOpt) (ClientEventsProducer, error) {
	const op = "NewClientEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ClientEventsProducer{}, opErr(err, op)
		}
	}

	opPrefix := "ClientEventsProducer"
	p := producer{
		opPrefix: opPrefix,
		cl:       options.cl,
	}

	return ClientEventsProducer{
		producer: p,
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p ClientEventsProducer) Close() {
	p.producer.close()
}

func (p ClientEventsProducer) Emit(
	ctx context.Context, v domain.ClientEvent,
) error {
	const op = "Emit"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	b, err := p.encoder.Encode(clientEventToSchemaV1(v))
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r := &kgo.Record{Key: []byte(v.UserID), Value: b}
	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// NoopProducer is wired when no broker is configured.
type NoopProducer struct{}

var _ port.EventEmitter = (*NoopProducer)(nil)

func (NoopProducer) Emit(context.Context, domain.ClientEvent) error {
	return nil
}

func (NoopProducer) Close() {}
