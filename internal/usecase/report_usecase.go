package usecase

import (
	"context"
	"sync"
	"time"

	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/domain/mirror"
	"piecework_tracker/internal/domain/report"
	"piecework_tracker/internal/usecase/interfaces"
	"piecework_tracker/pkg/logger"
)

// SubmitResult describes a report submission.
type SubmitResult struct {
	Date       string         `json:"date"`
	Records    int            `json:"records"`
	GrandTotal entities.Money `json:"grand_total"`
	Mailed     bool           `json:"mailed"`
}

// IReportUseCase builds shift reports and submits them to the external sink
// at most once per date.

type IReportUseCase interface {
	ReportForDate(ctx context.Context, date string) (report.Report, error)
	ExportText(ctx context.Context, date string) (string, error)
	SubmitReport(ctx context.Context, date string) (SubmitResult, error)
	SentReports(ctx context.Context) ([]string, error)
}

type ReportUseCase struct {
	orders  interfaces.IOrderReader
	sent    interfaces.ISentReportRepository
	sink    interfaces.IOrderSink
	mailer  interfaces.IReportMailer
	timeout time.Duration
	clock   Clock

	// mu serializes submissions so a date reaches the sink at most once.
	mu sync.Mutex
}

var _ IReportUseCase = (*ReportUseCase)(nil)

// NewReportUseCase accepts a nil sink or mailer; submission then uses
// whichever is configured.
func NewReportUseCase(
	orders interfaces.IOrderReader,
	sent interfaces.ISentReportRepository,
	sink interfaces.IOrderSink,
	mailer interfaces.IReportMailer,
	timeout time.Duration,
	clock Clock,
) *ReportUseCase {
	if clock == nil {
		clock = SystemClock(nil)
	}
	return &ReportUseCase{orders: orders, sent: sent, sink: sink, mailer: mailer, timeout: timeout, clock: clock}
}

func (u *ReportUseCase) ReportForDate(ctx context.Context, date string) (report.Report, error) {
	date, err := resolveDate(u.clock, date)
	if err != nil {
		return report.Report{}, err
	}
	all, err := u.orders.Snapshot(ctx)
	if err != nil {
		return report.Report{}, err
	}
	return report.Build(all, date), nil
}

func (u *ReportUseCase) ExportText(ctx context.Context, date string) (string, error) {
	r, err := u.ReportForDate(ctx, date)
	if err != nil {
		return "", err
	}
	return report.RenderString(r), nil
}

// SubmitReport pushes the closed orders of date to the sink and records the
// date as sent. A date that was already sent is refused.
func (u *ReportUseCase) SubmitReport(ctx context.Context, date string) (SubmitResult, error) {
	log := logger.FromContext(ctx)

	date, err := resolveDate(u.clock, date)
	if err != nil {
		return SubmitResult{}, err
	}
	if u.sink == nil && u.mailer == nil {
		return SubmitResult{}, syncErr(ErrSinkNotConfigured, nil)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	sent, err := u.sent.LoadSentReports(ctx)
	if err != nil {
		return SubmitResult{}, err
	}
	for _, d := range sent {
		if d == date {
			return SubmitResult{}, invalidStateErr(ErrReportAlreadySent)
		}
	}

	all, err := u.orders.Snapshot(ctx)
	if err != nil {
		return SubmitResult{}, err
	}
	closed := make([]entities.Order, 0)
	for _, o := range all {
		if o.Date == date && o.IsClosed() {
			closed = append(closed, o)
		}
	}
	if len(closed) == 0 {
		return SubmitResult{}, invalidStateErr(ErrNoClosedOrders)
	}

	rep := report.Build(all, date)
	res := SubmitResult{Date: date, GrandTotal: rep.GrandTotal}

	if u.sink != nil {
		records := mirror.Flatten(closed)
		callCtx, cancel := withTimeout(ctx, u.timeout)
		err := u.sink.PushBatch(callCtx, records)
		cancel()
		if err != nil {
			log.Warnw("[report][usecase] sink push failed", "date", date, "err", err)
			return SubmitResult{}, syncErr(ErrSinkUnavailable, err)
		}
		res.Records = len(records)
	}

	if u.mailer != nil {
		if err := u.mailer.SendReport(ctx, date, report.RenderString(rep)); err != nil {
			log.Warnw("[report][usecase] report mail failed", "date", date, "err", err)
			if u.sink == nil {
				return SubmitResult{}, syncErr(ErrSinkUnavailable, err)
			}
		} else {
			res.Mailed = true
		}
	}

	if err := u.sent.SaveSentReports(ctx, append(sent, date)); err != nil {
		return SubmitResult{}, err
	}
	log.Infow("[report][usecase] submitted", "date", date, "records", res.Records, "mailed", res.Mailed, "grand_total", res.GrandTotal.StringFixed(2))
	return res, nil
}

func (u *ReportUseCase) SentReports(ctx context.Context) ([]string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sent.LoadSentReports(ctx)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
