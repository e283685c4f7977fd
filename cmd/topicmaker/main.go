package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stitchkart/storefront/config"
	"github.com/stitchkart/storefront/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	partitions        = 3
	replicationFactor = 3
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	if !cfg.EventsEnabled() {
		fmt.Println("no broker configured, nothing to do")
		return
	}

	cl := createClient(cfg.Broker.SeedBrokers)
	defer cl.Close()

	fmt.Printf("initializing topic %q...\n", cfg.Broker.ClientEventsTopic)
	start := time.Now()

	if err := makeTopic(sigCtx, cl, cfg.Broker.ClientEventsTopic); err != nil {
		fmt.Printf("failed to create topic: \n%s\n", err)
		return
	}

	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func createClient(seedBrokers []string) *kadm.Client {
	cl, err := kadm.NewOptClient(
		kgo.SeedBrokers(seedBrokers...),
	)
	if err != nil {
		panic(err) // develop mistake
	}
	return cl
}

func makeTopic(ctx context.Context, cl *kadm.Client, topic string) error {
	var (
		cleanupPolicy = "delete"
		minISR        = "1"
	)

	config := map[string]*string{
		"cleanup.policy":      &cleanupPolicy,
		"min.insync.replicas": &minISR,
	}

	responses, err := cl.CreateTopics(
		ctx,
		partitions,
		replicationFactor,
		config,
		topic,
	)
	if err != nil {
		return err
	}

	var errs []error
	for _, res := range responses.Sorted() {
		if res.Err != nil {
			if errors.Is(res.Err, kerr.TopicAlreadyExists) {
				fmt.Printf("topic: %q already exists\n", res.Topic)
			} else {
				errs = append(errs, res.Err)
			}
			continue
		}
		fmt.Printf("topic: %q successfully created\n", res.Topic)
	}

	return errors.Join(errs...)
}
