package schedule

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/csaops/shrinkage-backend-go/internal/domain/schedule"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// scheduleColumns are the headers a schedule workbook must carry,
// matched exactly against the first row of the first sheet.
var scheduleColumns = []string{"CSA Logins", "Week", "year", "shift", "Weekoff"}

// parseScheduleWorkbook reads an uploaded xlsx into one
// CreateScheduleRequest per data row. Header validation happens before
// any row is returned so a malformed workbook applies nothing.
func parseScheduleWorkbook(r io.Reader) ([]schedule.CreateScheduleRequest, string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", schedule.ErrImportColumnsMissing, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", schedule.ErrImportEmpty
	}

	index, missing := columnIndex(rows[0], scheduleColumns)
	if len(missing) > 0 {
		return nil, "", fmt.Errorf("%w: %s", schedule.ErrImportColumnsMissing, strings.Join(missing, ", "))
	}
	if len(rows) == 1 {
		return nil, "", schedule.ErrImportEmpty
	}

	var reqs []schedule.CreateScheduleRequest
	for _, row := range rows[1:] {
		logins := validator.SplitList(cell(row, index["CSA Logins"]))
		if len(logins) == 0 {
			continue
		}

		week, err := strconv.Atoi(strings.TrimSpace(cell(row, index["Week"])))
		if err != nil {
			continue
		}
		year, _ := strconv.Atoi(strings.TrimSpace(cell(row, index["year"])))
		if year == 0 {
			year = time.Now().Year()
		}

		reqs = append(reqs, schedule.CreateScheduleRequest{
			Logins:   logins,
			Weeks:    []int{week},
			Year:     year,
			Shift:    strings.TrimSpace(cell(row, index["shift"])),
			Weekoffs: validator.SplitList(cell(row, index["Weekoff"])),
		})
	}
	if len(reqs) == 0 {
		return nil, "", schedule.ErrImportEmpty
	}

	return reqs, uuid.New().String(), nil
}

// columnIndex maps each required header to its position in the header
// row and reports the ones that are absent.
func columnIndex(header []string, required []string) (map[string]int, []string) {
	index := make(map[string]int, len(required))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	return index, missing
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
