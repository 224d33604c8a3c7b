package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidate(t *testing.T) {
	assert.NoError(t, Wait(10).Validate())
	assert.NoError(t, Interval(30).Validate())
	assert.NoError(t, At(MustTime(14, 30)).Validate())
	assert.NoError(t, Once(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)).Validate())

	assert.Error(t, Wait(0).Validate())
	assert.Error(t, Wait(-1).Validate())
	assert.Error(t, Interval(0).Validate())
	assert.Error(t, Once(time.Time{}).Validate())
	assert.Error(t, At(TimeOfDay{Hour: 25}).Validate())
}

func TestTaskEqual(t *testing.T) {
	assert.True(t, Wait(10).Equal(Wait(10)))
	assert.False(t, Wait(10).Equal(Wait(20)))
	assert.False(t, Wait(10).Equal(Interval(10)))
	assert.True(t, At(MustTime(14, 30)).Equal(At(MustTime(14, 30))))
	assert.False(t, At(MustTime(14, 30)).Equal(At(MustTime(14, 31))))

	instant := time.Date(2030, time.January, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, Once(instant).Equal(Once(instant)))
	assert.False(t, Once(instant).Equal(Once(instant.Add(time.Second))))
}

func TestTaskEqual_WithSkips(t *testing.T) {
	d12, err := SkipWeekdays(1, 2)
	require.NoError(t, err)
	d12b, err := SkipWeekdays(1, 2)
	require.NoError(t, err)
	d34, err := SkipWeekdays(3, 4)
	require.NoError(t, err)

	assert.True(t, Wait(10, d12).Equal(Wait(10, d12b)))
	assert.False(t, Wait(10, d12).Equal(Wait(10, d34)))
	assert.False(t, Wait(10, d12).Equal(Wait(10)))
}

func TestTaskString(t *testing.T) {
	assert.Equal(t, "wait: 10", Wait(10).String())
	assert.Equal(t, "interval: 30", Interval(30).String())
	assert.Equal(t, "at: 14:30", At(MustTime(14, 30)).String())

	once := Once(time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, "once: 2024-01-01 10:00:00 +00:00", once.String())
}

func TestTaskString_WithSkips(t *testing.T) {
	days, err := SkipWeekdays(1, 2)
	require.NoError(t, err)
	task := Wait(10, days, SkipTime(MustTime(12, 0)))

	s := task.String()
	assert.Contains(t, s, "wait: 10")
	assert.Contains(t, s, "day: [1 2]")
	assert.Contains(t, s, "time: 12:00")
}

func TestTaskSkips(t *testing.T) {
	days, err := SkipWeekdays(6, 7)
	require.NoError(t, err)

	assert.Len(t, Wait(10, days).Skips(), 1)
	assert.Empty(t, Wait(10).Skips())
}
