package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// DaySchedule maps slot names to class lists and remembers slot order.
// The zero value is an empty schedule ready to use.
type DaySchedule struct {
	slots *orderedmap.OrderedMap[string, ClassList]
}

// NewDaySchedule returns an empty schedule.
func NewDaySchedule() *DaySchedule {
	return &DaySchedule{slots: orderedmap.New[string, ClassList]()}
}

// Slots returns the slot names in document order.
func (d *DaySchedule) Slots() []string {
	if d == nil || d.slots == nil {
		return nil
	}
	out := make([]string, 0, d.slots.Len())
	for pair := d.slots.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Len returns the number of slots.
func (d *DaySchedule) Len() int {
	if d == nil || d.slots == nil {
		return 0
	}
	return d.slots.Len()
}

// Classes returns the list held in slot. The slice is shared with the schedule.
func (d *DaySchedule) Classes(slot string) (ClassList, bool) {
	if d == nil || d.slots == nil {
		return nil, false
	}
	return d.slots.Get(slot)
}

// Set stores list under slot. A new slot goes after the existing ones, an
// existing slot keeps its position.
func (d *DaySchedule) Set(slot string, list ClassList) {
	if d.slots == nil {
		d.slots = orderedmap.New[string, ClassList]()
	}
	d.slots.Set(slot, list)
}

// Append adds list to the end of slot, creating the slot if needed.
func (d *DaySchedule) Append(slot string, list ClassList) {
	cur, ok := d.Classes(slot)
	if !ok {
		d.Set(slot, list.Clone())
		return
	}
	merged := make(ClassList, 0, len(cur)+len(list))
	merged = append(merged, cur...)
	merged = append(merged, list...)
	d.Set(slot, merged)
}

// Clone returns a deep copy.
func (d *DaySchedule) Clone() *DaySchedule {
	out := NewDaySchedule()
	for _, slot := range d.Slots() {
		list, _ := d.Classes(slot)
		out.Set(slot, list.Clone())
	}
	return out
}

func (d *DaySchedule) MarshalJSON() ([]byte, error) {
	return marshalObject(d.slots)
}

func (d *DaySchedule) UnmarshalJSON(data []byte) error {
	slots, err := unmarshalObject[ClassList](data)
	if err != nil {
		return err
	}
	d.slots = slots
	return nil
}

func (d *DaySchedule) MarshalYAML() (interface{}, error) {
	if d.slots == nil {
		return &yaml.Node{Kind: yaml.MappingNode}, nil
	}
	return d.slots, nil
}

func (d *DaySchedule) UnmarshalYAML(value *yaml.Node) error {
	slots, err := unmarshalMapping[ClassList](value)
	if err != nil {
		return err
	}
	d.slots = slots
	return nil
}
