package model

import (
	"errors"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/notaneet/ttmerge/utils"
)

// ErrNotObject is returned when a timetable, day or slot map is not an object.
var ErrNotObject = errors.New("expected an object")

// Timetable maps day names to their schedules and remembers day order.
// The zero value is an empty timetable ready to use.
type Timetable struct {
	days *orderedmap.OrderedMap[string, *DaySchedule]
}

// New returns an empty timetable.
func New() *Timetable {
	return &Timetable{days: orderedmap.New[string, *DaySchedule]()}
}

// Days returns the day names in document order.
func (t *Timetable) Days() []string {
	if t == nil || t.days == nil {
		return nil
	}
	out := make([]string, 0, t.days.Len())
	for pair := t.days.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Len returns the number of days.
func (t *Timetable) Len() int {
	if t == nil || t.days == nil {
		return 0
	}
	return t.days.Len()
}

// Day returns the schedule of day. The schedule is shared with the timetable.
func (t *Timetable) Day(day string) (*DaySchedule, bool) {
	if t == nil || t.days == nil {
		return nil, false
	}
	return t.days.Get(day)
}

// Set stores sched under day. A new day goes after the existing ones, an
// existing day keeps its position.
func (t *Timetable) Set(day string, sched *DaySchedule) {
	if t.days == nil {
		t.days = orderedmap.New[string, *DaySchedule]()
	}
	if sched == nil {
		sched = NewDaySchedule()
	}
	t.days.Set(day, sched)
}

// Clone returns a deep copy.
func (t *Timetable) Clone() *Timetable {
	out := New()
	for _, day := range t.Days() {
		sched, _ := t.Day(day)
		out.Set(day, sched.Clone())
	}
	return out
}

// Filter keeps every day and slot but only the classes match accepts.
// A nil match keeps everything.
func (t *Timetable) Filter(match func(Class) bool) *Timetable {
	if match == nil {
		return t.Clone()
	}
	out := New()
	for _, day := range t.Days() {
		src, _ := t.Day(day)
		dst := NewDaySchedule()
		for _, slot := range src.Slots() {
			list, _ := src.Classes(slot)
			kept := ClassList{}
			for _, c := range list {
				if match(c) {
					kept = append(kept, c)
				}
			}
			dst.Set(slot, kept)
		}
		out.Set(day, dst)
	}
	return out
}

// Courses returns the distinct course identifiers in first-seen order.
func (t *Timetable) Courses() []string {
	seen := map[string]bool{}
	var out []string
	t.each(func(_, _ string, c Class) {
		if !seen[c.CourseID] {
			seen[c.CourseID] = true
			out = append(out, c.CourseID)
		}
	})
	return out
}

// SlotOrder returns the union of slot names over all days, ordered by start
// time. Slots that do not parse as "H:MM-H:MM" follow in first-seen order.
func (t *Timetable) SlotOrder() []string {
	seen := map[string]bool{}
	var slots []string
	for _, day := range t.Days() {
		sched, _ := t.Day(day)
		for _, slot := range sched.Slots() {
			if !seen[slot] {
				seen[slot] = true
				slots = append(slots, slot)
			}
		}
	}

	start := func(slot string) (int, bool) {
		s, _, err := utils.ParseSlot(slot)
		if err != nil {
			return 0, false
		}
		return s.Afternoon().Minutes(), true
	}
	sort.SliceStable(slots, func(i, j int) bool {
		a, aok := start(slots[i])
		b, bok := start(slots[j])
		if aok != bok {
			return aok
		}
		return aok && a < b
	})
	return slots
}

func (t *Timetable) each(fn func(day, slot string, c Class)) {
	for _, day := range t.Days() {
		sched, _ := t.Day(day)
		for _, slot := range sched.Slots() {
			list, _ := sched.Classes(slot)
			for _, c := range list {
				fn(day, slot, c)
			}
		}
	}
}

func (t *Timetable) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("{}"), nil
	}
	return marshalObject(t.days)
}

func (t *Timetable) UnmarshalJSON(data []byte) error {
	days, err := unmarshalObject[*DaySchedule](data)
	if err != nil {
		return err
	}
	if err := requireObjects(days); err != nil {
		return err
	}
	t.days = days
	return nil
}

func (t *Timetable) MarshalYAML() (interface{}, error) {
	if t == nil || t.days == nil {
		return &yaml.Node{Kind: yaml.MappingNode}, nil
	}
	return t.days, nil
}

func (t *Timetable) UnmarshalYAML(value *yaml.Node) error {
	days, err := unmarshalMapping[*DaySchedule](value)
	if err != nil {
		return err
	}
	if err := requireObjects(days); err != nil {
		return err
	}
	t.days = days
	return nil
}
