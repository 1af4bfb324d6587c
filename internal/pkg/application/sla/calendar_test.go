package sla

import (
	"testing"
	"time"

	"github.com/diwise/oncall-mgmt/pkg/types"
	"github.com/matryer/is"
)

func officeHours() types.TeamSLASettings {
	return types.TeamSLASettings{
		BusinessHoursOnly:  true,
		BusinessHoursStart: "09:00",
		BusinessHoursEnd:   "17:00",
		BusinessDays:       []int{1, 2, 3, 4, 5},
		Timezone:           "UTC",
	}
}

func TestDeadlineWithinSameWindow(t *testing.T) {
	is := is.New(t)

	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC) // a Monday
	deadline, err := Deadline(start, 120, officeHours())

	is.NoErr(err)
	is.True(deadline.Equal(time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)))
}

func TestDeadlineSpillsOverWeekend(t *testing.T) {
	is := is.New(t)

	// a Friday, 10 minutes before closing, so 20 minutes carry over to Monday
	start := time.Date(2025, 3, 7, 16, 50, 0, 0, time.UTC)
	deadline, err := Deadline(start, 30, officeHours())

	is.NoErr(err)
	is.True(deadline.Equal(time.Date(2025, 3, 10, 9, 20, 0, 0, time.UTC)))
}

func TestDeadlineStartedOutsideWindow(t *testing.T) {
	is := is.New(t)

	// a Saturday, nothing is consumed until Monday 09:00
	start := time.Date(2025, 3, 8, 13, 0, 0, 0, time.UTC)
	deadline, err := Deadline(start, 60, officeHours())

	is.NoErr(err)
	is.True(deadline.Equal(time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)))
}

func TestDeadlineBeforeOpeningSameDay(t *testing.T) {
	is := is.New(t)

	start := time.Date(2025, 3, 3, 7, 0, 0, 0, time.UTC) // a Monday
	deadline, err := Deadline(start, 60, officeHours())

	is.NoErr(err)
	is.True(deadline.Equal(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)))
}

func TestDeadlineIgnoresCalendarWhenDisabled(t *testing.T) {
	is := is.New(t)

	settings := officeHours()
	settings.BusinessHoursOnly = false

	start := time.Date(2025, 3, 8, 13, 0, 0, 0, time.UTC) // a Saturday
	deadline, err := Deadline(start, 45, settings)

	is.NoErr(err)
	is.True(deadline.Equal(start.Add(45 * time.Minute)))
}

func TestDeadlineInLocalTimezone(t *testing.T) {
	is := is.New(t)

	settings := officeHours()
	settings.Timezone = "Europe/Stockholm"

	// Friday 16:50 in Stockholm (UTC+1 in early March)
	start := time.Date(2025, 3, 7, 15, 50, 0, 0, time.UTC)
	deadline, err := Deadline(start, 30, settings)

	is.NoErr(err)
	is.True(deadline.Equal(time.Date(2025, 3, 10, 8, 20, 0, 0, time.UTC))) // Monday 09:20 local
}

func TestElapsedIsTheInverseOfDeadline(t *testing.T) {
	is := is.New(t)

	start := time.Date(2025, 3, 7, 16, 50, 0, 0, time.UTC)

	for _, target := range []int{5, 30, 480, 2000} {
		deadline, err := Deadline(start, target, officeHours())
		is.NoErr(err)

		elapsed, err := ElapsedBusinessMinutes(start, deadline, officeHours())
		is.NoErr(err)
		is.Equal(elapsed, float64(target))
	}
}

func TestElapsedSkipsTheWeekend(t *testing.T) {
	is := is.New(t)

	start := time.Date(2025, 3, 7, 16, 0, 0, 0, time.UTC)  // Friday
	end := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)   // Monday

	elapsed, err := ElapsedBusinessMinutes(start, end, officeHours())

	is.NoErr(err)
	is.Equal(elapsed, 120.0) // one hour Friday, one hour Monday
}

func TestElapsedIsZeroWhenEndPrecedesStart(t *testing.T) {
	is := is.New(t)

	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	elapsed, err := ElapsedBusinessMinutes(start, start.Add(-time.Hour), officeHours())

	is.NoErr(err)
	is.Equal(elapsed, 0.0)
}

func TestDeadlineRejectsEmptyBusinessDays(t *testing.T) {
	is := is.New(t)

	settings := officeHours()
	settings.BusinessDays = []int{}

	_, err := Deadline(time.Now(), 30, settings)
	is.True(err == ErrNoBusinessDays)
}

func TestDeadlineRejectsInvertedWindow(t *testing.T) {
	is := is.New(t)

	settings := officeHours()
	settings.BusinessHoursStart = "17:00"
	settings.BusinessHoursEnd = "09:00"

	_, err := Deadline(time.Now(), 30, settings)
	is.True(err == ErrInvalidWindow)
}

func TestDeadlineRejectsUnknownTimezone(t *testing.T) {
	is := is.New(t)

	settings := officeHours()
	settings.Timezone = "Mars/Olympus_Mons"

	_, err := Deadline(time.Now(), 30, settings)
	is.True(err != nil)
}
