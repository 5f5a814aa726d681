// Package schedule models the periodic-task table handed to the beat process:
// a task name mapped to a crontab recurrence rule, validated before any entry
// is registered with the scheduler.
package schedule

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Entry maps a task name to a crontab recurrence rule. The queue is the broker
// queue the periodic task is enqueued to when the rule fires.
type Entry struct {
	TaskName string
	Cronspec string
	Queue    string
}

// standard 5-field crontab: minute hour dom month dow
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Validate checks the entry's crontab expression. Malformed specs are rejected
// at startup instead of surfacing as silent no-op schedules.
func (e Entry) Validate() error {
	if e.TaskName == "" {
		return fmt.Errorf("schedule entry missing task name")
	}

	if _, err := parser.Parse(e.Cronspec); err != nil {
		return fmt.Errorf("invalid cronspec %q for task %q: %w", e.Cronspec, e.TaskName, err)
	}

	return nil
}

// Next returns the first time after now the entry's rule fires, in loc.
func (e Entry) Next(now time.Time, loc *time.Location) (time.Time, error) {
	sched, err := parser.Parse(e.Cronspec)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cronspec %q: %w", e.Cronspec, err)
	}

	return sched.Next(now.In(loc)), nil
}

// ValidateAll validates every entry and reports the first failure.
func ValidateAll(entries []Entry) error {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Location resolves a timezone name ("UTC", "America/Sao_Paulo") used for
// interpreting recurrence rules.
func Location(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}

	return loc, nil
}
