package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/usecase/interfaces"
	"piecework_tracker/pkg/logger"
)

var ErrMissingSinkURL = errors.New("missing SINK_URL")

// maxResponseBytes bounds how much of a sink response is read.
const maxResponseBytes = 8 << 20

// SpreadsheetSink talks to the remote spreadsheet web app. GET returns every
// stored row; POST appends a batch of rows.
//
// With SINK_MOCK enabled it keeps rows in process memory instead.
type SpreadsheetSink struct {
	url    string
	client *http.Client
	log    *logger.Logger

	mockMode bool
	mu       sync.Mutex
	rows     []entities.SinkRecord
}

var _ interfaces.IOrderSink = (*SpreadsheetSink)(nil)

func NewSpreadsheetSink(url string, client *http.Client, log *logger.Logger) (*SpreadsheetSink, error) {
	if log == nil {
		log = logger.Default()
	}
	log = log.WithComponent("sink")

	if isSinkMockEnabled() {
		log.Infow("[sink][gateway] mock mode enabled")
		return &SpreadsheetSink{mockMode: true, log: log}, nil
	}
	if strings.TrimSpace(url) == "" {
		return nil, ErrMissingSinkURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	log.Infow("[sink][gateway] client initialized", "url", url)
	return &SpreadsheetSink{url: url, client: client, log: log}, nil
}

func (s *SpreadsheetSink) FetchAll(ctx context.Context) ([]entities.SinkRecord, error) {
	if s.mockMode {
		s.mu.Lock()
		defer s.mu.Unlock()
		return append([]entities.SinkRecord(nil), s.rows...), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	body, err := s.do(req)
	if err != nil {
		return nil, err
	}

	var records []entities.SinkRecord
	if err := json.Unmarshal(body, &records); err != nil {
		s.log.Warnw("[sink][gateway] fetch decode failed", "err", err, "body_len", len(body))
		return nil, fmt.Errorf("%w: %v", interfaces.ErrSinkBadPayload, err)
	}
	s.log.Infow("[sink][gateway] fetch success", "records", len(records))
	return records, nil
}

func (s *SpreadsheetSink) PushBatch(ctx context.Context, records []entities.SinkRecord) error {
	if s.mockMode {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.rows = append(s.rows, records...)
		s.log.Infow("[sink][gateway] mock push success", "records", len(records))
		return nil
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if _, err := s.do(req); err != nil {
		return err
	}
	s.log.Infow("[sink][gateway] push success", "records", len(records))
	return nil
}

func (s *SpreadsheetSink) do(req *http.Request) ([]byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warnw("[sink][gateway] request failed", "method", req.Method, "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warnw("[sink][gateway] unexpected status", "method", req.Method, "status", resp.StatusCode)
		return nil, fmt.Errorf("sink responded %d", resp.StatusCode)
	}
	return body, nil
}

func isSinkMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SINK_MOCK"))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
