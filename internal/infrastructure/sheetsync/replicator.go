package sheetsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"vehicle-finance.backend/internal/domain/entities"
	domainerrors "vehicle-finance.backend/internal/domain/errors"
	"vehicle-finance.backend/pkg/logger"
)

// SheetReplicator posts one lead's flattened record to the remote
// script endpoint. Replication is advisory: the local collection is
// committed before any dispatch and is never rolled back.
type SheetReplicator struct {
	url     string
	client  *http.Client
	tracker *Tracker
}

func NewSheetReplicator(url string, timeout time.Duration, tracker *Tracker) *SheetReplicator {
	return &SheetReplicator{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		tracker: tracker,
	}
}

// Dispatch sends the payload once. A nil return means dispatched:
// the request left without a transport error. The script endpoint
// never exposes whether it durably stored the record, so there is no
// stronger outcome to report. No retry on failure.
func (r *SheetReplicator) Dispatch(ctx context.Context, lead *entities.Lead) error {
	if r.url == "" {
		return fmt.Errorf("%w: script url not configured", domainerrors.ErrDispatchFailed)
	}

	body, err := json.Marshal(BuildPayload(lead))
	if err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrDispatchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrDispatchFailed, err)
	}
	// The script endpoint only accepts text/plain bodies
	req.Header.Set("Content-Type", "text/plain")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrDispatchFailed, err)
	}
	defer resp.Body.Close()
	// The response is opaque by contract; drain it and move on
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// DispatchAsync fires a dispatch on its own goroutine. It never blocks
// the caller and its outcome cannot fail the mutation that triggered
// it; the tracker and metrics are the only observers.
func (r *SheetReplicator) DispatchAsync(lead *entities.Lead) {
	r.tracker.Begin()
	go func() {
		ctx := context.Background()
		err := r.Dispatch(ctx, lead)
		r.tracker.Finish(err)
		if err != nil {
			dispatchTotal.WithLabelValues(OutcomeFailed).Inc()
			if !errors.Is(err, domainerrors.ErrDispatchFailed) {
				err = fmt.Errorf("%w: %v", domainerrors.ErrDispatchFailed, err)
			}
			logger.Error(ctx, "lead sync dispatch failed",
				zap.String("case_id", lead.ID), zap.Error(err))
			return
		}
		dispatchTotal.WithLabelValues(OutcomeDispatched).Inc()
		logger.Info(ctx, "lead sync dispatched",
			zap.String("case_id", lead.ID))
	}()
}
