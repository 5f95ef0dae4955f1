package converter

import (
	"fmt"
	"strings"

	"github.com/tealeg/xlsx/v3"

	"github.com/notaneet/ttmerge/model"
	"github.com/notaneet/ttmerge/utils"
)

const xlsxSheet = "Timetable"

// XLSXConverter lays the timetable out as a grid: one row per day, one column
// per slot, every class of a slot on its own line within the cell.
type XLSXConverter struct{}

func (XLSXConverter) Write(t *model.Timetable, out string) error {
	if out == "" {
		return fmt.Errorf("output can not be empty")
	}
	if t == nil {
		t = model.New()
	}

	f := xlsx.NewFile()
	sh, err := f.AddSheet(xlsxSheet)
	if err != nil {
		return err
	}

	slots := t.SlotOrder()
	header := sh.AddRow()
	header.AddCell().SetString("Day")
	for _, slot := range slots {
		header.AddCell().SetString(utils.FormatSlot(slot))
	}

	for _, day := range t.Days() {
		sched, _ := t.Day(day)
		row := sh.AddRow()
		row.AddCell().SetString(day)
		for _, slot := range slots {
			list, _ := sched.Classes(slot)
			lines := make([]string, 0, len(list))
			for _, c := range list {
				lines = append(lines, c.String())
			}
			row.AddCell().SetString(strings.Join(lines, "\n"))
		}
	}

	return f.Save(out)
}
