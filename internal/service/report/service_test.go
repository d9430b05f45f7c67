package report

import (
	"context"
	"testing"

	"github.com/csaops/shrinkage-backend-go/internal/domain/leave"
	"github.com/csaops/shrinkage-backend-go/internal/domain/schedule"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduleRepo serves a fixed entry set; only the read methods the
// report service touches are meaningful.
type fakeScheduleRepo struct {
	entries []schedule.Entry
}

func (f *fakeScheduleRepo) CreateBatch(ctx context.Context, entries []schedule.Entry) (int, error) {
	return 0, nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id int64) (schedule.Entry, error) {
	return schedule.Entry{}, schedule.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) GetByLoginWeek(ctx context.Context, login string, week int) (schedule.Entry, error) {
	return schedule.Entry{}, schedule.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) GetByLoginWeekForUpdate(ctx context.Context, login string, week int) (schedule.Entry, error) {
	return schedule.Entry{}, schedule.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) ListByWeek(ctx context.Context, week int) ([]schedule.Entry, error) {
	var out []schedule.Entry
	for _, e := range f.entries {
		if e.Week == week {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListAll(ctx context.Context) ([]schedule.Entry, error) {
	return f.entries, nil
}

func (f *fakeScheduleRepo) ListWeeks(ctx context.Context) ([]int, error) {
	seen := map[int]bool{}
	var weeks []int
	for _, e := range f.entries {
		if !seen[e.Week] {
			seen[e.Week] = true
			weeks = append(weeks, e.Week)
		}
	}
	return weeks, nil
}

func (f *fakeScheduleRepo) ListLogins(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) UpdateCell(ctx context.Context, login string, week int, day calendar.Day, value schedule.CellStatus) error {
	return nil
}

func (f *fakeScheduleRepo) DeleteByLoginWeek(ctx context.Context, login string, week int) (int64, error) {
	return 0, nil
}

func (f *fakeScheduleRepo) DeleteByWeek(ctx context.Context, week int) (int64, error) {
	return 0, nil
}

func (f *fakeScheduleRepo) DeleteByID(ctx context.Context, id int64) error {
	return nil
}

type fakeLeaveRepo struct {
	records []leave.Record
}

func (f *fakeLeaveRepo) Create(ctx context.Context, record leave.Record) (leave.Record, error) {
	return record, nil
}

func (f *fakeLeaveRepo) DeleteByCell(ctx context.Context, login string, week int, day calendar.Day) (int64, error) {
	return 0, nil
}

func (f *fakeLeaveRepo) DeleteByLoginWeek(ctx context.Context, login string, week int) (int64, error) {
	return 0, nil
}

func (f *fakeLeaveRepo) DeleteByWeek(ctx context.Context, week int) (int64, error) {
	return 0, nil
}

func (f *fakeLeaveRepo) ListByWeekDay(ctx context.Context, week int, day calendar.Day) ([]leave.Record, error) {
	var out []leave.Record
	for _, r := range f.records {
		if r.Week == week && r.Day == day {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByLogin(ctx context.Context, login string) ([]leave.Record, error) {
	return nil, nil
}

// fakeReportRepo derives counts from the same entry set the schedule
// fake serves, mirroring what the SQL aggregation does.
type fakeReportRepo struct {
	entries []schedule.Entry
}

func (f *fakeReportRepo) DayCounts(ctx context.Context, week int, day calendar.Day) (int, int, error) {
	var scheduled, leaves int
	for _, e := range f.entries {
		if e.Week != week {
			continue
		}
		cell := e.Cell(day)
		if cell != schedule.StatusOff {
			scheduled++
		}
		if schedule.IsLeaveCode(cell) {
			leaves++
		}
	}
	return scheduled, leaves, nil
}

func (f *fakeReportRepo) WeekCounts(ctx context.Context, week int) (int, int, error) {
	var scheduled, leaves int
	for _, day := range calendar.Days {
		s, l, _ := f.DayCounts(ctx, week, day)
		scheduled += s
		leaves += l
	}
	return scheduled, leaves, nil
}

func newTestService(entries []schedule.Entry, records []leave.Record) *ReportServiceImpl {
	return &ReportServiceImpl{
		scheduleRepo: &fakeScheduleRepo{entries: entries},
		leaveRepo:    &fakeLeaveRepo{records: records},
		reportRepo:   &fakeReportRepo{entries: entries},
	}
}

func entryWithLeave(login string, week int, day calendar.Day, code schedule.CellStatus) schedule.Entry {
	e := schedule.NewEntry(login, week, "general", nil)
	e.SetCell(day, code)
	return e
}

func TestDayShrinkage(t *testing.T) {
	entries := []schedule.Entry{
		entryWithLeave("csa1", 5, calendar.Mon, schedule.LeaveAnnual),
		schedule.NewEntry("csa2", 5, "general", map[calendar.Day]bool{calendar.Mon: true}),
		schedule.NewEntry("csa3", 5, "general", nil),
	}
	records := []leave.Record{
		{Login: "csa1", Week: 5, Day: calendar.Mon, LeaveType: "AL", Annotation: "trip"},
	}

	svc := newTestService(entries, records)
	got, err := svc.DayShrinkage(context.Background(), 5, calendar.Mon, 0)
	require.NoError(t, err)

	// csa2 is weekoff on Monday, so two are scheduled and one is out
	assert.Equal(t, 2, got.Scheduled)
	assert.Equal(t, 1, got.Leaves)
	assert.Equal(t, 50.0, got.Pct)
	require.Len(t, got.Details, 1)
	assert.Equal(t, "csa1", got.Details[0].Login)
	assert.Equal(t, "AL", got.Details[0].LeaveType)
}

func TestDayShrinkageSingleScheduledOnLeave(t *testing.T) {
	entries := []schedule.Entry{
		entryWithLeave("csa1", 5, calendar.Mon, schedule.LeaveAnnual),
	}

	svc := newTestService(entries, nil)
	got, err := svc.DayShrinkage(context.Background(), 5, calendar.Mon, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, got.Scheduled)
	assert.Equal(t, 1, got.Leaves)
	assert.Equal(t, 100.0, got.Pct)
}

func TestWeeklyOverviewOrdering(t *testing.T) {
	entries := []schedule.Entry{
		schedule.NewEntry("csa1", 9, "general", nil),
		schedule.NewEntry("csa1", 2, "general", nil),
		schedule.NewEntry("csa1", 5, "general", nil),
	}

	svc := newTestService(entries, nil)
	rows, err := svc.WeeklyOverview(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, 2, rows[0].Week)
	assert.Equal(t, 5, rows[1].Week)
	assert.Equal(t, 9, rows[2].Week)
}

func TestMonthlyReportSplitsWeekAcrossMonths(t *testing.T) {
	// 2024 week 5 runs Jan 28 .. Feb 3, so one entry's cells land in
	// both January and February.
	entries := []schedule.Entry{
		entryWithLeave("csa1", 5, calendar.Fri, schedule.LeaveSick),
	}

	svc := newTestService(entries, nil)

	jan, err := svc.MonthlyReport(context.Background(), 1, 2024, 0)
	require.NoError(t, err)
	feb, err := svc.MonthlyReport(context.Background(), 2, 2024, 0)
	require.NoError(t, err)

	assert.Equal(t, 4, jan.Scheduled) // Sun Jan 28 .. Wed Jan 31
	assert.Equal(t, 3, feb.Scheduled) // Thu Feb 1 .. Sat Feb 3
	assert.Equal(t, 0, jan.Leaves)
	assert.Equal(t, 1, feb.Leaves) // Friday Feb 2
	require.Len(t, feb.Details, 1)
	assert.Equal(t, "2024-02-02", feb.Details[0].Date)
	assert.Equal(t, "SL", feb.Details[0].Status)
	assert.Nil(t, jan.GoalMet)
}

func TestAnnualReportCountsEachCellOnce(t *testing.T) {
	entries := []schedule.Entry{
		entryWithLeave("csa1", 5, calendar.Fri, schedule.LeaveSick),
		entryWithLeave("csa2", 20, calendar.Mon, schedule.LeaveGeneric),
		schedule.NewEntry("csa3", 30, "general", map[calendar.Day]bool{calendar.Sun: true}),
	}

	svc := newTestService(entries, nil)
	annual, err := svc.AnnualReport(context.Background(), 2024, 6)
	require.NoError(t, err)

	// every non-OFF cell of the three entries lands in exactly one month
	assert.Equal(t, 7+7+6, annual.Scheduled)
	assert.Equal(t, 2, annual.Leaves)
	require.Len(t, annual.Months, 12)

	var scheduled, leaves int
	for _, month := range annual.Months {
		scheduled += month.Scheduled
		leaves += month.Leaves
		require.NotNil(t, month.GoalMet)
	}
	assert.Equal(t, annual.Scheduled, scheduled)
	assert.Equal(t, annual.Leaves, leaves)
}

func TestAnalyzeGoalForWeekNotFound(t *testing.T) {
	svc := newTestService(nil, nil)
	_, err := svc.AnalyzeGoalForWeek(context.Background(), 12, 5)
	assert.Error(t, err)
}
