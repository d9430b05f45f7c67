package performance

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/csaops/shrinkage-backend-go/internal/domain/performance"
	"github.com/csaops/shrinkage-backend-go/internal/domain/schedule"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/email"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// performanceColumns are the headers a metrics workbook must carry.
var performanceColumns = []string{"username", "week", "metric1", "metric2"}

type PerformanceServiceImpl struct {
	performanceRepo performance.Repository
	emailService    email.EmailService
}

func NewPerformanceService(performanceRepo performance.Repository, emailService email.EmailService) performance.Service {
	return &PerformanceServiceImpl{
		performanceRepo: performanceRepo,
		emailService:    emailService,
	}
}

// Import implements performance.Service. Header validation happens
// before any row is stored so a malformed workbook applies nothing.
func (s *PerformanceServiceImpl) Import(ctx context.Context, r io.Reader) (performance.ImportResponse, error) {
	metrics, err := parsePerformanceWorkbook(r)
	if err != nil {
		return performance.ImportResponse{}, err
	}

	imported, err := s.performanceRepo.CreateBatch(ctx, metrics)
	if err != nil {
		return performance.ImportResponse{}, err
	}

	return performance.ImportResponse{
		BatchID:  uuid.New().String(),
		Imported: imported,
	}, nil
}

func parsePerformanceWorkbook(r io.Reader) ([]performance.Metric, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", schedule.ErrImportColumnsMissing, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, schedule.ErrImportEmpty
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, name := range performanceColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", schedule.ErrImportColumnsMissing, strings.Join(missing, ", "))
	}

	var metrics []performance.Metric
	for _, row := range rows[1:] {
		field := func(name string) string {
			i := index[name]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		username := field("username")
		if username == "" {
			continue
		}
		week, err := strconv.Atoi(field("week"))
		if err != nil {
			continue
		}
		metric1, _ := strconv.ParseFloat(field("metric1"), 64)
		metric2, _ := strconv.ParseFloat(field("metric2"), 64)

		metrics = append(metrics, performance.Metric{
			Username: username,
			Week:     week,
			Metric1:  metric1,
			Metric2:  metric2,
		})
	}
	if len(metrics) == 0 {
		return nil, schedule.ErrImportEmpty
	}
	return metrics, nil
}

// buildTrend orders metrics by week ascending and fills in
// week-over-week deltas. The earliest week has no predecessor, so its
// deltas stay nil.
func buildTrend(username string, metrics []performance.Metric) performance.TrendResponse {
	sort.Slice(metrics, func(i, j int) bool { return metrics[i].Week < metrics[j].Week })

	resp := performance.TrendResponse{Username: username}
	for i, m := range metrics {
		row := performance.TrendRow{
			Week:    m.Week,
			Metric1: m.Metric1,
			Metric2: m.Metric2,
		}
		if i > 0 {
			prev := metrics[i-1]
			d1 := m.Metric1 - prev.Metric1
			d2 := m.Metric2 - prev.Metric2
			row.Metric1Delta = &d1
			row.Metric2Delta = &d2
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp
}

// Trend implements performance.Service.
func (s *PerformanceServiceImpl) Trend(ctx context.Context, username string) (performance.TrendResponse, error) {
	metrics, err := s.performanceRepo.ListByUsername(ctx, username)
	if err != nil {
		return performance.TrendResponse{}, err
	}
	if len(metrics) == 0 {
		return performance.TrendResponse{}, performance.ErrNoData
	}
	return buildTrend(username, metrics), nil
}

// ListUsernames implements performance.Service.
func (s *PerformanceServiceImpl) ListUsernames(ctx context.Context) ([]string, error) {
	return s.performanceRepo.ListUsernames(ctx)
}

func formatDelta(d *float64) string {
	if d == nil {
		return ""
	}
	return strconv.FormatFloat(*d, 'f', 2, 64)
}

func renderTrendCSV(trend performance.TrendResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"username", "week", "metric1", "metric1_delta", "metric2", "metric2_delta"}); err != nil {
		return nil, err
	}
	for _, row := range trend.Rows {
		record := []string{
			trend.Username,
			strconv.Itoa(row.Week),
			strconv.FormatFloat(row.Metric1, 'f', 2, 64),
			formatDelta(row.Metric1Delta),
			strconv.FormatFloat(row.Metric2, 'f', 2, 64),
			formatDelta(row.Metric2Delta),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportCSV implements performance.Service.
func (s *PerformanceServiceImpl) ExportCSV(ctx context.Context, username string) ([]byte, error) {
	trend, err := s.Trend(ctx, username)
	if err != nil {
		return nil, err
	}
	return renderTrendCSV(trend)
}

// EmailReport implements performance.Service.
func (s *PerformanceServiceImpl) EmailReport(ctx context.Context, req performance.EmailReportRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	data, err := s.ExportCSV(ctx, req.Username)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Performance trend for %s", req.Username)
	body := fmt.Sprintf("Attached is the weekly performance trend for %s.", req.Username)
	filename := fmt.Sprintf("%s-performance.csv", req.Username)
	return s.emailService.SendCSVReport(req.To, subject, body, filename, data)
}
