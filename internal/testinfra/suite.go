//go:build integration

package testinfra

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type TestSuite struct {
	Kafka      *KafkaContainer
	OpenSearch *OpenSearchContainer
}

type SuiteOptions struct {
	WithKafka      bool
	WithOpenSearch bool
}

// NewTestSuite starts the requested containers in parallel.
func NewTestSuite(ctx context.Context, opts SuiteOptions) (*TestSuite, error) {
	suite := &TestSuite{}
	g, gctx := errgroup.WithContext(ctx)

	if opts.WithKafka {
		g.Go(func() error {
			k, err := NewKafka(gctx)
			if err != nil {
				return fmt.Errorf("kafka: %w", err)
			}
			suite.Kafka = k
			return nil
		})
	}
	if opts.WithOpenSearch {
		g.Go(func() error {
			os, err := NewOpenSearch(gctx)
			if err != nil {
				return fmt.Errorf("opensearch: %w", err)
			}
			suite.OpenSearch = os
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		suite.Cleanup(ctx)
		return nil, err
	}
	return suite, nil
}

func (s *TestSuite) Cleanup(ctx context.Context) {
	if s.OpenSearch != nil {
		s.OpenSearch.Cleanup(ctx)
	}
	if s.Kafka != nil {
		s.Kafka.Cleanup(ctx)
	}
}
