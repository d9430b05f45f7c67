package report

import (
	"context"
	"sort"

	"github.com/csaops/shrinkage-backend-go/internal/domain/leave"
	"github.com/csaops/shrinkage-backend-go/internal/domain/report"
	"github.com/csaops/shrinkage-backend-go/internal/domain/schedule"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	scheduleRepo schedule.Repository
	leaveRepo    leave.Repository
	reportRepo   report.Repository
}

func NewReportService(scheduleRepo schedule.Repository, leaveRepo leave.Repository, reportRepo report.Repository) report.Service {
	return &ReportServiceImpl{
		scheduleRepo: scheduleRepo,
		leaveRepo:    leaveRepo,
		reportRepo:   reportRepo,
	}
}

// shrinkagePct is leaves over scheduled in percent, rounded to two
// decimals. Zero scheduled means zero shrinkage, never a division error.
func shrinkagePct(scheduled, leaves int) float64 {
	if scheduled == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(leaves)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(scheduled))).
		Round(2).
		InexactFloat64()
}

// DayShrinkage implements report.Service.
func (s *ReportServiceImpl) DayShrinkage(ctx context.Context, week int, day calendar.Day, year int) (report.DayShrinkage, error) {
	scheduled, leaves, err := s.reportRepo.DayCounts(ctx, week, day)
	if err != nil {
		return report.DayShrinkage{}, err
	}

	resp := report.DayShrinkage{
		Week:      week,
		Day:       day.String(),
		Scheduled: scheduled,
		Leaves:    leaves,
		Pct:       shrinkagePct(scheduled, leaves),
	}
	if year > 0 {
		dates := calendar.WeekDates(week, year)
		resp.Date = dates[day].Format("2006-01-02")
	}

	records, err := s.leaveRepo.ListByWeekDay(ctx, week, day)
	if err != nil {
		return report.DayShrinkage{}, err
	}
	for _, record := range records {
		resp.Details = append(resp.Details, report.LeaveDetail{
			Login:      record.Login,
			LeaveType:  record.LeaveType,
			Annotation: record.Annotation,
		})
	}
	return resp, nil
}

// WeekShrinkage implements report.Service.
func (s *ReportServiceImpl) WeekShrinkage(ctx context.Context, week int) (report.WeekShrinkage, error) {
	scheduled, leaves, err := s.reportRepo.WeekCounts(ctx, week)
	if err != nil {
		return report.WeekShrinkage{}, err
	}

	resp := report.WeekShrinkage{
		Week:      week,
		Scheduled: scheduled,
		Leaves:    leaves,
		Pct:       shrinkagePct(scheduled, leaves),
	}
	for _, day := range calendar.Days {
		dayScheduled, dayLeaves, err := s.reportRepo.DayCounts(ctx, week, day)
		if err != nil {
			return report.WeekShrinkage{}, err
		}
		resp.Days = append(resp.Days, report.DayShrinkage{
			Week:      week,
			Day:       day.String(),
			Scheduled: dayScheduled,
			Leaves:    dayLeaves,
			Pct:       shrinkagePct(dayScheduled, dayLeaves),
		})
	}
	return resp, nil
}

// WeeklyOverview implements report.Service.
func (s *ReportServiceImpl) WeeklyOverview(ctx context.Context) ([]report.OverviewRow, error) {
	weeks, err := s.scheduleRepo.ListWeeks(ctx)
	if err != nil {
		return nil, err
	}
	sort.Ints(weeks)

	rows := make([]report.OverviewRow, 0, len(weeks))
	for _, week := range weeks {
		scheduled, leaves, err := s.reportRepo.WeekCounts(ctx, week)
		if err != nil {
			return nil, err
		}
		rows = append(rows, report.OverviewRow{
			Week:      week,
			Scheduled: scheduled,
			Leaves:    leaves,
			Pct:       shrinkagePct(scheduled, leaves),
		})
	}
	return rows, nil
}

// MonthlyReport implements report.Service. Every cell of every entry is
// mapped to its calendar date for the given year; only cells landing in
// the requested month are counted, so a week straddling a month
// boundary contributes to both months' reports.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, month, year int, goalPct float64) (report.MonthlyReport, error) {
	entries, err := s.scheduleRepo.ListAll(ctx)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	resp := report.MonthlyReport{Month: month, Year: year}
	for _, entry := range entries {
		wd := calendar.WeekDates(entry.Week, year)
		for _, day := range calendar.Days {
			date := wd[day]
			if int(date.Month()) != month || date.Year() != year {
				continue
			}
			status := entry.Cell(day)
			if status == schedule.StatusOff {
				continue
			}
			resp.Scheduled++
			if schedule.IsLeaveCode(status) {
				resp.Leaves++
				resp.Details = append(resp.Details, report.MonthDetail{
					Week:   entry.Week,
					Day:    day.String(),
					Date:   date.Format("2006-01-02"),
					Status: string(status),
				})
			}
		}
	}

	resp.Pct = shrinkagePct(resp.Scheduled, resp.Leaves)
	if goalPct > 0 {
		met := resp.Pct <= goalPct
		resp.GoalMet = &met
	}
	return resp, nil
}

// AnnualReport implements report.Service. The twelve monthly reports
// are independent reads, so they run concurrently.
func (s *ReportServiceImpl) AnnualReport(ctx context.Context, year int, goalPct float64) (report.AnnualReport, error) {
	var months [12]report.MonthlyReport

	g, gCtx := errgroup.WithContext(ctx)
	for month := 1; month <= 12; month++ {
		month := month
		g.Go(func() error {
			monthly, err := s.MonthlyReport(gCtx, month, year, goalPct)
			if err != nil {
				return err
			}
			monthly.Details = nil
			months[month-1] = monthly
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.AnnualReport{}, err
	}

	resp := report.AnnualReport{Year: year, Months: months[:]}
	for _, monthly := range months {
		resp.Scheduled += monthly.Scheduled
		resp.Leaves += monthly.Leaves
	}
	resp.Pct = shrinkagePct(resp.Scheduled, resp.Leaves)
	return resp, nil
}

// AnalyzeGoalForWeek implements report.Service.
func (s *ReportServiceImpl) AnalyzeGoalForWeek(ctx context.Context, week int, goalPct float64) (report.GoalAnalysis, error) {
	scheduled, leaves, err := s.reportRepo.WeekCounts(ctx, week)
	if err != nil {
		return report.GoalAnalysis{}, err
	}
	if scheduled == 0 {
		return report.GoalAnalysis{}, report.ErrWeekNotFound
	}
	return AnalyzeGoal(scheduled, leaves, goalPct), nil
}
