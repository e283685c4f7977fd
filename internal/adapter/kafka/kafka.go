// Package kafka emits storefront client events to the analytics
// stream. Emission is best-effort: the storefront works without a
// broker and callers only log producer failures.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var ErrTooFewOpts = errors.New("too few options")

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string, kgoOpts ...kgo.Opt,
) ProducerOpt {
	return func(opts *producerOpts) error {
		clOpts := append([]kgo.Opt{
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		}, kgoOpts...)

		cl, err := kgo.NewClient(clOpts...)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func clientEventToSchemaV1(v domain.ClientEvent) (s schema.ClientEventV1) {
	s.UserID = v.UserID
	s.EventType = string(v.Type)
	s.ProductID = v.ProductID
	s.Name = v.Name
	s.Price = v.Price
	s.Format = string(v.Format)
	s.Quantity = int64(v.Quantity)
	s.UnixTS = v.UnixTS
	return
}
