// Package report exports attendance reports to spreadsheets and reads course
// data back from them.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/oasys/internal/attendance"
)

const (
	SheetAttendance = "Attendance"
	SheetEvents     = "Events"
	SheetSummary    = "Summary"
)

var (
	attendanceHeader = []any{"ID", "Course", "Attended", "Total", "Percent", "Missable", "Status"}
	eventsHeader     = []any{"ID", "Event", "Date", "Type"}
)

// Build creates a workbook with attendance, events and summary sheets.
// The caller must Close the returned file.
func Build(courses []attendance.Course, events []attendance.Event) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetAttendance); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	summary := attendance.Summarize(courses)

	if err := setRow(f, SheetAttendance, 1, attendanceHeader); err != nil {
		f.Close()
		return nil, err
	}
	for i, cs := range summary.Courses {
		row := []any{
			cs.Course.ID,
			cs.Course.Name,
			cs.Course.AttendedClasses,
			cs.Course.TotalClasses,
			cs.Percent,
			cs.Missable,
			cs.Badge(),
		}
		if err := setRow(f, SheetAttendance, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	if _, err := f.NewSheet(SheetEvents); err != nil {
		f.Close()
		return nil, fmt.Errorf("add events sheet: %w", err)
	}
	if err := setRow(f, SheetEvents, 1, eventsHeader); err != nil {
		f.Close()
		return nil, err
	}
	for i, e := range attendance.SortByDate(events) {
		if err := setRow(f, SheetEvents, i+2, []any{e.ID, e.Name, e.Date, string(e.Category)}); err != nil {
			f.Close()
			return nil, err
		}
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("add summary sheet: %w", err)
	}
	summaryRows := [][]any{
		{"Overall attendance", summary.Overall},
		{"Status", summary.Status()},
		{"Alerts", len(summary.Alerts())},
		{"Threshold", attendance.ThresholdPercent},
	}
	for i, row := range summaryRows {
		if err := setRow(f, SheetSummary, i+1, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Export writes the report to path.
func Export(path string, courses []attendance.Course, events []attendance.Event) error {
	f, err := Build(courses, events)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// Write streams the report to w.
func Write(w io.Writer, courses []attendance.Course, events []attendance.Event) error {
	f, err := Build(courses, events)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Sheet contents read back from a workbook.
type Sheet struct {
	Courses []attendance.Course
	Events  []attendance.Event
}

// ImportFile reads courses and events from the workbook at path.
func ImportFile(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return read(f)
}

// Import reads courses and events from a workbook stream.
func Import(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return read(f)
}

func read(f *excelize.File) (*Sheet, error) {
	// Courses come from the Attendance sheet, or the first sheet when the
	// workbook was not produced by Export.
	sheetName := SheetAttendance
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		sheetName = f.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, fmt.Errorf("workbook does not contain any sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheetName, err)
	}

	var out Sheet
	for i, row := range rows {
		if i == 0 || blank(row) {
			// Header row.
			continue
		}
		c, err := courseFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w", sheetName, i+1, err)
		}
		out.Courses = append(out.Courses, c)
	}

	if idx, err := f.GetSheetIndex(SheetEvents); err == nil && idx >= 0 {
		rows, err := f.GetRows(SheetEvents)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", SheetEvents, err)
		}
		for i, row := range rows {
			if i == 0 || blank(row) {
				continue
			}
			e, err := eventFromRow(row)
			if err != nil {
				return nil, fmt.Errorf("sheet %s row %d: %w", SheetEvents, i+1, err)
			}
			out.Events = append(out.Events, e)
		}
	}

	return &out, nil
}

func courseFromRow(row []string) (attendance.Course, error) {
	if len(row) < 4 {
		return attendance.Course{}, fmt.Errorf("expected at least 4 columns, got %d", len(row))
	}
	var c attendance.Course
	var err error
	if c.ID, err = atoi(row[0], "ID"); err != nil {
		return c, err
	}
	c.Name = strings.TrimSpace(row[1])
	if c.AttendedClasses, err = atoi(row[2], "Attended"); err != nil {
		return c, err
	}
	if c.TotalClasses, err = atoi(row[3], "Total"); err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func eventFromRow(row []string) (attendance.Event, error) {
	if len(row) < 3 {
		return attendance.Event{}, fmt.Errorf("expected at least 3 columns, got %d", len(row))
	}
	id, err := atoi(row[0], "ID")
	if err != nil {
		return attendance.Event{}, err
	}
	e := attendance.Event{
		ID:       id,
		Name:     strings.TrimSpace(row[1]),
		Date:     strings.TrimSpace(row[2]),
		Category: attendance.CategoryOther,
	}
	if len(row) > 3 {
		e.Category = attendance.ParseCategory(row[3])
	}
	if err := e.Validate(); err != nil {
		return e, err
	}
	return e, nil
}

func atoi(s, column string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a whole number", column, s)
	}
	return n, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
	}
	return nil
}
