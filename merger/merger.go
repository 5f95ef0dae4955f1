// Package merger combines timetables slot by slot.
package merger

import "github.com/notaneet/ttmerge/model"

// Merge returns t1 with t2 folded into it. Days and slots missing from t1 are
// added after t1's own keys; classes of a slot present in both are appended
// after t1's. Neither input is modified.
func Merge(t1, t2 *model.Timetable) *model.Timetable {
	merged := t1.Clone()

	for _, day := range t2.Days() {
		slots, _ := t2.Day(day)

		cur, ok := merged.Day(day)
		if !ok {
			merged.Set(day, slots.Clone())
			continue
		}

		for _, slot := range slots.Slots() {
			classes, _ := slots.Classes(slot)
			cur.Append(slot, classes)
		}
	}

	return merged
}

// MergeAll folds Merge over ts from left to right.
func MergeAll(ts ...*model.Timetable) *model.Timetable {
	merged := model.New()
	for _, t := range ts {
		merged = Merge(merged, t)
	}
	return merged
}
