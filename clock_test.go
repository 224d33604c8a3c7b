package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimezone(t *testing.T) {
	tz, err := NewTimezone(8, 0)
	require.NoError(t, err)
	assert.Equal(t, 480, tz.OffsetMinutes())
	assert.Equal(t, "+08:00", tz.String())

	tz, err = NewTimezone(5, 30)
	require.NoError(t, err)
	assert.Equal(t, 330, tz.OffsetMinutes())

	tz, err = NewTimezone(-5, -30)
	require.NoError(t, err)
	assert.Equal(t, -330, tz.OffsetMinutes())
	assert.Equal(t, "-05:30", tz.String())
}

func TestNewTimezone_Invalid(t *testing.T) {
	_, err := NewTimezone(25, 0)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
	_, err = NewTimezone(-25, 0)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
	_, err = NewTimezone(0, 60)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestNewTimezoneMinutes(t *testing.T) {
	tz, err := NewTimezoneMinutes(330)
	require.NoError(t, err)
	assert.Equal(t, 330, tz.OffsetMinutes())

	_, err = NewTimezoneMinutes(1441)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
	_, err = NewTimezoneMinutes(-1441)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestTimezone_ZeroValueIsUTC(t *testing.T) {
	var tz Timezone
	assert.Equal(t, 0, tz.OffsetMinutes())
	assert.Equal(t, "+00:00", tz.String())
}

func TestToLocal(t *testing.T) {
	// 2024-12-25 10:30 UTC，周三。
	instant := time.Date(2024, time.December, 25, 10, 30, 0, 0, time.UTC)

	var utc Timezone
	d, tod, weekday := utc.toLocal(instant)
	assert.Equal(t, MustDate(2024, time.December, 25), d)
	assert.Equal(t, MustTime(10, 30), tod)
	assert.Equal(t, 3, weekday)

	plus8, _ := NewTimezone(8, 0)
	d, tod, weekday = plus8.toLocal(instant)
	assert.Equal(t, MustDate(2024, time.December, 25), d)
	assert.Equal(t, MustTime(18, 30), tod)
	assert.Equal(t, 3, weekday)
}

func TestToLocal_DateRollover(t *testing.T) {
	// 负偏移使本地日期相对 UTC 后退一天，星期随之换算。
	instant := time.Date(2024, time.December, 25, 0, 30, 0, 0, time.UTC)
	minus1, _ := NewTimezone(-1, 0)

	d, tod, weekday := minus1.toLocal(instant)
	assert.Equal(t, MustDate(2024, time.December, 24), d)
	assert.Equal(t, MustTime(23, 30), tod)
	assert.Equal(t, 2, weekday, "2024-12-24 是周二")

	// 正偏移把前一日深夜推进到次日。
	instant = time.Date(2024, time.December, 24, 23, 30, 0, 0, time.UTC)
	plus8, _ := NewTimezone(8, 0)
	d, tod, weekday = plus8.toLocal(instant)
	assert.Equal(t, MustDate(2024, time.December, 25), d)
	assert.Equal(t, MustTime(7, 30), tod)
	assert.Equal(t, 3, weekday)
}

func TestWeekdayOf(t *testing.T) {
	// 周一=1 .. 周日=7。
	assert.Equal(t, 1, weekdayOf(time.Date(2024, time.December, 23, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 6, weekdayOf(time.Date(2024, time.December, 21, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 7, weekdayOf(time.Date(2024, time.December, 22, 0, 0, 0, 0, time.UTC)))
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, MustTime(9, 30), tod)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("9:30pm")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-12-25")
	require.NoError(t, err)
	assert.Equal(t, MustDate(2024, time.December, 25), d)

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
	_, err = ParseDate("2024-02-30")
	assert.Error(t, err)
}

func TestNewDate_Invalid(t *testing.T) {
	_, err := NewDate(2024, time.February, 30)
	assert.Error(t, err)
	_, err = NewDate(2024, time.February, 29)
	assert.NoError(t, err, "2024 是闰年")
}

func TestDateOrdering(t *testing.T) {
	a := MustDate(2024, time.December, 24)
	b := MustDate(2024, time.December, 25)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
}
