package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"piecework_tracker/internal/domain/entities"
	mock_interfaces "piecework_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reportMocks struct {
	reader *mock_interfaces.MockIOrderReader
	sent   *mock_interfaces.MockISentReportRepository
	sink   *mock_interfaces.MockIOrderSink
	mailer *mock_interfaces.MockIReportMailer
}

func newReportMocks(t *testing.T) reportMocks {
	ctrl := gomock.NewController(t)
	return reportMocks{
		reader: mock_interfaces.NewMockIOrderReader(ctrl),
		sent:   mock_interfaces.NewMockISentReportRepository(ctrl),
		sink:   mock_interfaces.NewMockIOrderSink(ctrl),
		mailer: mock_interfaces.NewMockIReportMailer(ctrl),
	}
}

func reportFixture() []entities.Order {
	return []entities.Order{
		closedOrder("A-1", "2026-01-21", "162.5", entities.Operation{Kind: entities.OperationCutArea, Detail: "panel", Area: 2.5, Quantity: 1}),
		openOrder("A-2", "2026-01-21", entities.Operation{Kind: entities.OperationTime, Detail: "assembly", Duration: 1, Quantity: 1}),
		closedOrder("B-1", "2026-01-20", "78", entities.Operation{Kind: entities.OperationLinearCut, Length: 3, Quantity: 1}),
	}
}

func TestReportUseCase_ReportForDate(t *testing.T) {
	ctx := context.Background()
	m := newReportMocks(t)
	m.reader.EXPECT().Snapshot(gomock.Any()).Return(reportFixture(), nil).Times(2)
	uc := NewReportUseCase(m.reader, m.sent, m.sink, nil, 0, fixedClock)

	rep, err := uc.ReportForDate(ctx, "2026-01-21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Orders) != 2 || !rep.GrandTotal.Equal(mustMoney("162.5")) {
		t.Fatalf("unexpected report: %+v", rep)
	}

	text, err := uc.ExportText(ctx, "2026-01-21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Day total: 162.50") || !strings.Contains(text, "Order #A-2 (open)") {
		t.Fatalf("unexpected text:\n%s", text)
	}
}

func TestReportUseCase_SubmitReport(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing configured", func(t *testing.T) {
		m := newReportMocks(t)
		uc := NewReportUseCase(m.reader, m.sent, nil, nil, 0, fixedClock)
		_, err := uc.SubmitReport(ctx, "2026-01-21")
		var sErr *SyncError
		if !errors.As(err, &sErr) || !errors.Is(err, ErrSinkNotConfigured) {
			t.Fatalf("expected SyncError(ErrSinkNotConfigured), got %v", err)
		}
	})

	t.Run("already sent", func(t *testing.T) {
		m := newReportMocks(t)
		m.sent.EXPECT().LoadSentReports(gomock.Any()).Return([]string{"2026-01-21"}, nil)
		uc := NewReportUseCase(m.reader, m.sent, m.sink, nil, 0, fixedClock)

		_, err := uc.SubmitReport(ctx, "2026-01-21")
		if !errors.Is(err, ErrReportAlreadySent) {
			t.Fatalf("expected ErrReportAlreadySent, got %v", err)
		}
	})

	t.Run("no closed orders", func(t *testing.T) {
		m := newReportMocks(t)
		m.sent.EXPECT().LoadSentReports(gomock.Any()).Return(nil, nil)
		m.reader.EXPECT().Snapshot(gomock.Any()).Return(reportFixture(), nil)
		uc := NewReportUseCase(m.reader, m.sent, m.sink, nil, 0, fixedClock)

		_, err := uc.SubmitReport(ctx, "2026-01-19")
		var sErr *InvalidStateError
		if !errors.As(err, &sErr) || !errors.Is(err, ErrNoClosedOrders) {
			t.Fatalf("expected InvalidStateError(ErrNoClosedOrders), got %v", err)
		}
	})

	t.Run("sink failure does not mark the date", func(t *testing.T) {
		m := newReportMocks(t)
		m.sent.EXPECT().LoadSentReports(gomock.Any()).Return(nil, nil)
		m.reader.EXPECT().Snapshot(gomock.Any()).Return(reportFixture(), nil)
		m.sink.EXPECT().PushBatch(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
		uc := NewReportUseCase(m.reader, m.sent, m.sink, nil, 0, fixedClock)

		_, err := uc.SubmitReport(ctx, "2026-01-21")
		if !errors.Is(err, ErrSinkUnavailable) {
			t.Fatalf("expected ErrSinkUnavailable, got %v", err)
		}
	})

	t.Run("success pushes closed orders only and records the date", func(t *testing.T) {
		m := newReportMocks(t)
		m.sent.EXPECT().LoadSentReports(gomock.Any()).Return([]string{"2026-01-20"}, nil)
		m.reader.EXPECT().Snapshot(gomock.Any()).Return(reportFixture(), nil)
		m.sink.EXPECT().PushBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, records []entities.SinkRecord) error {
				if len(records) != 1 || records[0].OrderNumber != "A-1" || records[0].Status != "closed" {
					t.Fatalf("unexpected records: %+v", records)
				}
				return nil
			},
		)
		m.mailer.EXPECT().SendReport(gomock.Any(), "2026-01-21", gomock.Any()).Return(errors.New("smtp down"))
		m.sent.EXPECT().SaveSentReports(gomock.Any(), []string{"2026-01-20", "2026-01-21"}).Return(nil)
		uc := NewReportUseCase(m.reader, m.sent, m.sink, m.mailer, 0, fixedClock)

		res, err := uc.SubmitReport(ctx, "2026-01-21")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Records != 1 || res.Mailed || !res.GrandTotal.Equal(mustMoney("162.5")) {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("mail only", func(t *testing.T) {
		m := newReportMocks(t)
		m.sent.EXPECT().LoadSentReports(gomock.Any()).Return(nil, nil)
		m.reader.EXPECT().Snapshot(gomock.Any()).Return(reportFixture(), nil)
		m.mailer.EXPECT().SendReport(gomock.Any(), "2026-01-21", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, body string) error {
				if !strings.Contains(body, "Day total: 162.50") {
					t.Fatalf("unexpected body:\n%s", body)
				}
				return nil
			},
		)
		m.sent.EXPECT().SaveSentReports(gomock.Any(), []string{"2026-01-21"}).Return(nil)
		uc := NewReportUseCase(m.reader, m.sent, nil, m.mailer, 0, fixedClock)

		res, err := uc.SubmitReport(ctx, "2026-01-21")
		if err != nil || !res.Mailed || res.Records != 0 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("mail only failure is fatal", func(t *testing.T) {
		m := newReportMocks(t)
		m.sent.EXPECT().LoadSentReports(gomock.Any()).Return(nil, nil)
		m.reader.EXPECT().Snapshot(gomock.Any()).Return(reportFixture(), nil)
		m.mailer.EXPECT().SendReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		uc := NewReportUseCase(m.reader, m.sent, nil, m.mailer, 0, fixedClock)

		if _, err := uc.SubmitReport(ctx, "2026-01-21"); !errors.Is(err, ErrSinkUnavailable) {
			t.Fatalf("expected ErrSinkUnavailable, got %v", err)
		}
	})
}

func TestReportUseCase_SubmitReport_ConcurrentSameDate(t *testing.T) {
	ctx := context.Background()
	m := newReportMocks(t)

	var (
		stateMu sync.Mutex
		saved   []string
		pushes  atomic.Int32
	)
	m.sent.EXPECT().LoadSentReports(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
		stateMu.Lock()
		defer stateMu.Unlock()
		return append([]string(nil), saved...), nil
	}).AnyTimes()
	m.sent.EXPECT().SaveSentReports(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, dates []string) error {
		stateMu.Lock()
		defer stateMu.Unlock()
		saved = append([]string(nil), dates...)
		return nil
	}).AnyTimes()
	m.reader.EXPECT().Snapshot(gomock.Any()).Return(reportFixture(), nil).AnyTimes()
	m.sink.EXPECT().PushBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, []entities.SinkRecord) error {
		pushes.Add(1)
		time.Sleep(50 * time.Millisecond)
		return nil
	}).AnyTimes()
	uc := NewReportUseCase(m.reader, m.sent, m.sink, nil, 0, fixedClock)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.SubmitReport(ctx, "2026-01-21")
		}(i)
	}
	wg.Wait()

	succeeded, refused := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrReportAlreadySent):
			refused++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || refused != 1 {
		t.Fatalf("expected one success and one refusal, got %d and %d", succeeded, refused)
	}
	if got := pushes.Load(); got != 1 {
		t.Fatalf("expected the date to reach the sink once, got %d pushes", got)
	}
	if len(saved) != 1 || saved[0] != "2026-01-21" {
		t.Fatalf("unexpected sent reports: %v", saved)
	}
}
