package converter

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/notaneet/ttmerge/model"
)

// SQLConverter replaces the contents of the timetable tables of a database.
// out is a postgres DSN or a SQLite file path, depending on Driver.
type SQLConverter struct {
	Driver string
}

var createTables = []string{
	`CREATE TABLE IF NOT EXISTS timetable_slots (
		day TEXT NOT NULL,
		day_pos INTEGER NOT NULL,
		slot TEXT NOT NULL,
		slot_pos INTEGER NOT NULL,
		PRIMARY KEY (day, slot)
	)`,
	`CREATE TABLE IF NOT EXISTS timetable_classes (
		day TEXT NOT NULL,
		slot TEXT NOT NULL,
		position INTEGER NOT NULL,
		course_id TEXT NOT NULL,
		classroom TEXT NOT NULL,
		class_type TEXT NOT NULL,
		bare BOOLEAN NOT NULL,
		PRIMARY KEY (day, slot, position)
	)`,
}

const DropClasses = "DELETE FROM timetable_classes"
const DropSlots = "DELETE FROM timetable_slots"
const InsertSlotQuery = "INSERT INTO timetable_slots (day, day_pos, slot, slot_pos) VALUES (?, ?, ?, ?)"
const InsertClassQuery = "INSERT INTO timetable_classes (day, slot, position, course_id, classroom, class_type, bare) VALUES (?, ?, ?, ?, ?, ?, ?)"

func (s SQLConverter) Write(t *model.Timetable, out string) error {
	if out == "" {
		return fmt.Errorf("credentials can not be empty")
	}

	conn, err := sqlx.Connect(s.Driver, out)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, q := range createTables {
		if _, err := conn.Exec(q); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	tx, err := conn.Beginx()
	if err != nil {
		return err
	}
	if err := writeRows(tx, t); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func writeRows(tx *sqlx.Tx, t *model.Timetable) error {
	for _, q := range []string{DropClasses, DropSlots} {
		if _, err := tx.Exec(q); err != nil {
			return err
		}
	}

	insertSlot, err := tx.Preparex(tx.Rebind(InsertSlotQuery))
	if err != nil {
		return err
	}
	defer insertSlot.Close()

	insertClass, err := tx.Preparex(tx.Rebind(InsertClassQuery))
	if err != nil {
		return err
	}
	defer insertClass.Close()

	for dayPos, day := range t.Days() {
		sched, _ := t.Day(day)
		for slotPos, slot := range sched.Slots() {
			if _, err := insertSlot.Exec(day, dayPos, slot, slotPos); err != nil {
				return fmt.Errorf("insert slot %s/%s: %w", day, slot, err)
			}
			list, _ := sched.Classes(slot)
			for pos, c := range list {
				if _, err := insertClass.Exec(day, slot, pos, c.CourseID, c.Classroom, c.ClassType, c.Bare); err != nil {
					return fmt.Errorf("insert class %s/%s/%d: %w", day, slot, pos, err)
				}
			}
		}
	}
	return nil
}
