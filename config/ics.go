package config

import (
	"fmt"
	"time"

	"github.com/notaneet/ttmerge/utils"
)

const weekStartLayout = "2006-01-02"

// ICSConfig controls calendar export.
type ICSConfig struct {
	// WeekStart is the Monday of the first exported week (YYYY-MM-DD).
	// Empty means the coming Monday.
	WeekStart string `json:"week_start"`
	// Timezone is an IANA name or "Local".
	Timezone string `json:"timezone"`
	ProdID   string `json:"prod_id"`
}

func (c *ICSConfig) SetDefaults() {
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.ProdID == "" {
		c.ProdID = "-//College Timetable//EN"
	}
}

func (c ICSConfig) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.WeekStart != "" {
		if _, err := time.Parse(weekStartLayout, c.WeekStart); err != nil {
			return fmt.Errorf("week_start: %w", err)
		}
	}
	return nil
}

// Location resolves Timezone.
func (c ICSConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone: %w", err)
	}
	return loc, nil
}

// Start returns midnight of the first exported week in the configured location.
func (c ICSConfig) Start(now time.Time) (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	if c.WeekStart == "" {
		return utils.NextMonday(now.In(loc)), nil
	}
	return time.ParseInLocation(weekStartLayout, c.WeekStart, loc)
}
