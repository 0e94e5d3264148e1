// Package opensearch keeps an audit index of terminal checkout outcomes.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/pkg/logger"
	"CheckoutSDK/pkg/metrics"

	"github.com/opensearch-project/opensearch-go"
	"github.com/shopspring/decimal"
)

const (
	sinkName          = "opensearch"
	defaultSearchSize = 100
	maxSearchSize     = 500
)

var _ checkout.OutcomeSink = (*OutcomeIndex)(nil)

// OutcomeIndex stores one document per session, keyed by session ID.
// Writes use op_type=create, so a repeated delivery is a no-op.
type OutcomeIndex struct {
	client *opensearch.Client
	index  string
}

func NewOutcomeIndex(ctx context.Context, urls []string, index string) (*OutcomeIndex, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}
	if index == "" {
		return nil, errors.New("no OpenSearch outcome index configured")
	}

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{MaxIdleConnsPerHost: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	idx := &OutcomeIndex{client: client, index: index}
	if err := idx.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return idx, nil
}

func (x *OutcomeIndex) ensureIndex(ctx context.Context) error {
	res, err := x.client.Indices.Exists([]string{x.index}, x.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"session_id":     map[string]any{"type": "keyword"},
				"outlet_id":      map[string]any{"type": "keyword"},
				"kind":           map[string]any{"type": "keyword"},
				"message":        map[string]any{"type": "text"},
				"amount":         map[string]any{"type": "scaled_float", "scaling_factor": 100},
				"currency_code":  map[string]any{"type": "keyword"},
				"correlation_id": map[string]any{"type": "keyword"},
				"occurred_at":    map[string]any{"type": "date"},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0,
		},
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}
	cr, err := x.client.Indices.Create(
		x.index,
		x.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		x.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

type outcomeDoc struct {
	SessionID     string               `json:"session_id"`
	OutletID      string               `json:"outlet_id,omitempty"`
	Kind          checkout.OutcomeKind `json:"kind"`
	Message       string               `json:"message,omitempty"`
	Amount        decimal.Decimal      `json:"amount"`
	CurrencyCode  string               `json:"currency_code"`
	CorrelationID string               `json:"correlation_id,omitempty"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

func (d outcomeDoc) sessionOutcome() checkout.SessionOutcome {
	return checkout.SessionOutcome{
		SessionID:    d.SessionID,
		OutletID:     d.OutletID,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		Outcome:      checkout.Outcome{Kind: d.Kind, Message: d.Message},
		OccurredAt:   d.OccurredAt,
	}
}

func (x *OutcomeIndex) Deliver(ctx context.Context, out checkout.SessionOutcome) error {
	if err := x.put(ctx, out); err != nil {
		metrics.OutcomeDeliveries.WithLabelValues(sinkName, "error").Inc()
		return err
	}
	metrics.OutcomeDeliveries.WithLabelValues(sinkName, "ok").Inc()
	return nil
}

func (x *OutcomeIndex) put(ctx context.Context, out checkout.SessionOutcome) error {
	if out.SessionID == "" {
		return errors.New("index outcome: empty session id")
	}
	payload, err := json.Marshal(outcomeDoc{
		SessionID:     out.SessionID,
		OutletID:      out.OutletID,
		Kind:          out.Outcome.Kind,
		Message:       out.Outcome.Message,
		Amount:        out.Amount,
		CurrencyCode:  out.CurrencyCode,
		CorrelationID: logger.CorrelationID(ctx),
		OccurredAt:    out.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal outcome: %w", err)
	}

	res, err := x.client.Index(
		x.index,
		bytes.NewReader(payload),
		x.client.Index.WithDocumentID(out.SessionID),
		x.client.Index.WithOpType("create"),
		x.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusConflict {
		slog.WarnContext(ctx, "Outcome already indexed", slog.String("session_id", out.SessionID))
		return nil
	}
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

// OutcomeQuery filters indexed outcomes. Zero values match everything.
type OutcomeQuery struct {
	OutletID string
	Kinds    []checkout.OutcomeKind
	Size     int
}

// Search returns matching outcomes, newest first.
func (x *OutcomeIndex) Search(ctx context.Context, q OutcomeQuery) ([]checkout.SessionOutcome, error) {
	filters := make([]map[string]any, 0, 2)
	if q.OutletID != "" {
		filters = append(filters, map[string]any{
			"term": map[string]any{"outlet_id": q.OutletID},
		})
	}
	if len(q.Kinds) > 0 {
		kinds := make([]string, 0, len(q.Kinds))
		for _, k := range q.Kinds {
			if k != "" {
				kinds = append(kinds, string(k))
			}
		}
		if len(kinds) > 0 {
			filters = append(filters, map[string]any{
				"terms": map[string]any{"kind": kinds},
			})
		}
	}

	size := q.Size
	if size <= 0 {
		size = defaultSearchSize
	}
	size = min(size, maxSearchSize)

	raw, err := json.Marshal(map[string]any{
		"size":  size,
		"query": map[string]any{"bool": map[string]any{"filter": filters}},
		"sort":  []map[string]any{{"occurred_at": map[string]any{"order": "desc"}}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	res, err := x.client.Search(
		x.client.Search.WithContext(ctx),
		x.client.Search.WithIndex(x.index),
		x.client.Search.WithBody(bytes.NewReader(raw)),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.String())
	}

	var sr struct {
		Hits struct {
			Hits []struct {
				Source outcomeDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search: %w", err)
	}

	out := make([]checkout.SessionOutcome, 0, len(sr.Hits.Hits))
	for _, h := range sr.Hits.Hits {
		out = append(out, h.Source.sessionOutcome())
	}
	return out, nil
}

// Ping reports whether the cluster answers.
func (x *OutcomeIndex) Ping(ctx context.Context) error {
	res, err := x.client.Ping(x.client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("ping: %s", res.Status())
	}
	return nil
}
