package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimezone 表示时区偏移超出合法范围。
var ErrInvalidTimezone = errors.New("schedule: invalid timezone offset")

// TimeOfDay 表示分钟精度的本地时刻（24 小时制）。
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTime 构造 TimeOfDay，越界返回错误。
func NewTime(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("schedule: invalid time of day %02d:%02d", hour, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// MustTime 同 NewTime，越界时 panic，用于常量场合。
func MustTime(hour, minute int) TimeOfDay {
	t, err := NewTime(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay 解析 "HH:MM" 格式。
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("schedule: invalid time %q, expected HH:MM", s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// minuteOfDay 返回自 00:00 起的分钟数，用于比较。
func (t TimeOfDay) minuteOfDay() int { return t.Hour*60 + t.Minute }

// Date 表示本地日历日期。
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate 构造 Date，非法日期（如 2 月 30 日）返回错误。
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("schedule: invalid date %04d-%02d-%02d", year, month, day)
	}
	return d, nil
}

// MustDate 同 NewDate，非法时 panic。
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate 解析 "YYYY-MM-DD" 格式。
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("schedule: invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ordinal 映射为可比较的整数（年月日字典序）。
func (d Date) ordinal() int { return d.Year*10000 + int(d.Month)*100 + d.Day }

// Before 判断 d 是否早于 other。
func (d Date) Before(other Date) bool { return d.ordinal() < other.ordinal() }

// After 判断 d 是否晚于 other。
func (d Date) After(other Date) bool { return d.ordinal() > other.ordinal() }

// Timezone 为固定 UTC 偏移（分钟）的时区上下文，构造后不可变，不处理 DST。
// 零值即 UTC。
type Timezone struct {
	minutes int
}

// NewTimezone 以（小时, 分钟）构造时区，任一分量超出 ±24h 范围视为配置错误。
func NewTimezone(hours, minutes int) (Timezone, error) {
	if hours < -24 || hours > 24 || minutes < -59 || minutes > 59 {
		return Timezone{}, fmt.Errorf("%w: %dh%dm", ErrInvalidTimezone, hours, minutes)
	}
	return NewTimezoneMinutes(hours*60 + minutes)
}

// NewTimezoneMinutes 以总分钟偏移构造时区，合法范围 -1440..1440。
func NewTimezoneMinutes(minutes int) (Timezone, error) {
	if minutes < -1440 || minutes > 1440 {
		return Timezone{}, fmt.Errorf("%w: %d minutes", ErrInvalidTimezone, minutes)
	}
	return Timezone{minutes: minutes}, nil
}

// OffsetMinutes 返回相对 UTC 的偏移分钟数。
func (z Timezone) OffsetMinutes() int { return z.minutes }

func (z Timezone) String() string {
	sign := "+"
	m := z.minutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}

// location 返回等价的 *time.Location。
func (z Timezone) location() *time.Location {
	if z.minutes == 0 {
		return time.UTC
	}
	return time.FixedZone(z.String(), z.minutes*60)
}

// toLocal 将一个瞬时时间投影为本地（日期, 时刻, 星期）。
// 偏移可能使本地日期相对 UTC 前移或后移一天，星期随日期一致换算。
func (z Timezone) toLocal(t time.Time) (Date, TimeOfDay, int) {
	lt := t.In(z.location())
	d := Date{Year: lt.Year(), Month: lt.Month(), Day: lt.Day()}
	tod := TimeOfDay{Hour: lt.Hour(), Minute: lt.Minute()}
	return d, tod, weekdayOf(lt)
}

// weekdayOf 将 time.Weekday（周日=0）换算为周一=1..周日=7。
func weekdayOf(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
