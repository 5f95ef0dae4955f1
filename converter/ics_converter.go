package converter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/rs/zerolog"

	"github.com/notaneet/ttmerge/config"
	"github.com/notaneet/ttmerge/model"
	"github.com/notaneet/ttmerge/utils"
)

const uidDomain = "college-timetable"

// ICSConverter exports the timetable as weekly recurring calendar events.
type ICSConverter struct {
	Config config.ICSConfig
	Log    zerolog.Logger
	Now    func() time.Time
}

func (c ICSConverter) Write(t *model.Timetable, out string) error {
	if out == "" {
		return fmt.Errorf("output can not be empty")
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := c.GenerateICS(t, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}
	return file.Close()
}

// GenerateICS writes one event per class, joining a class that fills several
// consecutive slots alone into a single event.
func (c ICSConverter) GenerateICS(t *model.Timetable, w io.Writer) error {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	stamp := now()
	monday, err := c.Config.Start(stamp)
	if err != nil {
		return err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	if c.Config.ProdID != "" {
		cal.SetProductId(c.Config.ProdID)
	}

	slots := t.SlotOrder()
	uids := map[string]int{}
	for _, day := range t.Days() {
		wd, ok := utils.ParseWeekday(day)
		if !ok {
			c.Log.Warn().Str("day", day).Msg("skipping day that is not a weekday name")
			continue
		}
		date := monday.AddDate(0, 0, (int(wd)+6)%7)
		sched, _ := t.Day(day)

		for i := 0; i < len(slots); {
			list, _ := sched.Classes(slots[i])
			if len(list) != 1 {
				for _, class := range list {
					c.addEvent(cal, uids, stamp, date, day, class, slots[i], slots[i])
				}
				i++
				continue
			}

			j := i + 1
			for ; j < len(slots); j++ {
				next, _ := sched.Classes(slots[j])
				if len(next) != 1 || !next[0].Equal(list[0]) {
					break
				}
				if _, _, err := utils.ParseSlot(slots[j]); err != nil {
					break
				}
			}
			c.addEvent(cal, uids, stamp, date, day, list[0], slots[i], slots[j-1])
			i = j
		}
	}

	return cal.SerializeTo(w)
}

// addEvent adds an event running from the start of first to the end of last.
func (c ICSConverter) addEvent(cal *ics.Calendar, uids map[string]int, stamp, date time.Time, day string, class model.Class, first, last string) {
	start, _, err := utils.ParseSlot(first)
	if err != nil {
		c.Log.Warn().Str("day", day).Str("course", class.CourseID).Err(err).Msg("skipping class with unreadable slot")
		return
	}
	_, end, err := utils.ParseSlot(last)
	if err != nil {
		c.Log.Warn().Str("day", day).Str("course", class.CourseID).Err(err).Msg("skipping class with unreadable slot")
		return
	}

	uid := fmt.Sprintf("%s-%s-%s-%s", class.CourseID, day, start, end)
	uids[uid]++
	if n := uids[uid]; n > 1 {
		uid = fmt.Sprintf("%s-%d", uid, n)
	}

	event := cal.AddEvent(strings.ReplaceAll(uid, " ", "_") + "@" + uidDomain)
	event.SetDtStampTime(stamp)
	event.SetStartAt(utils.AddTimeToDate(date, start.Afternoon()))
	event.SetEndAt(utils.AddTimeToDate(date, end.Afternoon()))
	event.SetSummary(class.CourseID)
	if class.Classroom != "" {
		event.SetLocation(class.Classroom)
	}
	if class.ClassType != "" {
		event.SetDescription(class.ClassType)
	}
	event.AddRrule("FREQ=WEEKLY")
}
