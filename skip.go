package schedule

import (
	"fmt"
	"strings"
)

type skipKind int

const (
	skipDate skipKind = iota
	skipDateRange
	skipWeekday
	skipWeekdayRange
	skipTime
	skipTimeRange
)

// Skip 为跳过规则：对（日期, 时刻, 星期）三元组的谓词。
// 通过 Skip* 构造函数创建，构造后不可变。
type Skip struct {
	kind     skipKind
	date     Date
	dateTo   Date
	days     []int
	dayFrom  int
	dayTo    int
	at       TimeOfDay
	atTo     TimeOfDay
}

// SkipDate 跳过指定日期。
func SkipDate(d Date) Skip {
	return Skip{kind: skipDate, date: d}
}

// SkipDateRange 跳过闭区间 [from, to] 内的日期，from 晚于 to 视为配置错误。
func SkipDateRange(from, to Date) (Skip, error) {
	if from.After(to) {
		return Skip{}, fmt.Errorf("schedule: invalid date range %s - %s", from, to)
	}
	return Skip{kind: skipDateRange, date: from, dateTo: to}, nil
}

// SkipWeekdays 跳过指定星期集合，1=周一 .. 7=周日。
func SkipWeekdays(days ...int) (Skip, error) {
	if len(days) == 0 {
		return Skip{}, fmt.Errorf("schedule: empty weekday set")
	}
	for _, d := range days {
		if d < 1 || d > 7 {
			return Skip{}, fmt.Errorf("schedule: weekday must be 1-7, got %d", d)
		}
	}
	return Skip{kind: skipWeekday, days: append([]int(nil), days...)}, nil
}

// SkipWeekdayRange 跳过星期区间 [from, to]；from > to 表示跨周回绕，
// 例如 (6, 1) 命中周六、周日与周一。
func SkipWeekdayRange(from, to int) (Skip, error) {
	if from < 1 || from > 7 || to < 1 || to > 7 {
		return Skip{}, fmt.Errorf("schedule: weekday range must be within 1-7, got %d - %d", from, to)
	}
	return Skip{kind: skipWeekdayRange, dayFrom: from, dayTo: to}, nil
}

// SkipTime 跳过指定时刻（分钟精度）。
func SkipTime(t TimeOfDay) Skip {
	return Skip{kind: skipTime, at: t}
}

// SkipTimeRange 跳过时间区间 [from, to]；from > to 表示跨夜区间，
// 例如 (22:00, 06:00) 命中 [22:00, 24:00) 与 [00:00, 06:00]。
func SkipTimeRange(from, to TimeOfDay) Skip {
	return Skip{kind: skipTimeRange, at: from, atTo: to}
}

// matches 判断规则是否命中给定的本地投影。纯函数。
func (s Skip) matches(d Date, t TimeOfDay, weekday int) bool {
	switch s.kind {
	case skipDate:
		return d == s.date
	case skipDateRange:
		return !d.Before(s.date) && !d.After(s.dateTo)
	case skipWeekday:
		for _, day := range s.days {
			if day == weekday {
				return true
			}
		}
		return false
	case skipWeekdayRange:
		if s.dayFrom <= s.dayTo {
			return weekday >= s.dayFrom && weekday <= s.dayTo
		}
		// 回绕：{from..7} ∪ {1..to}
		return weekday >= s.dayFrom || weekday <= s.dayTo
	case skipTime:
		return t == s.at
	case skipTimeRange:
		cur := t.minuteOfDay()
		if s.at.minuteOfDay() <= s.atTo.minuteOfDay() {
			return cur >= s.at.minuteOfDay() && cur <= s.atTo.minuteOfDay()
		}
		// 跨夜：[from,24:00) ∪ [00:00,to]
		return cur >= s.at.minuteOfDay() || cur <= s.atTo.minuteOfDay()
	}
	return false
}

func (s Skip) String() string {
	switch s.kind {
	case skipDate:
		return fmt.Sprintf("date: %s", s.date)
	case skipDateRange:
		return fmt.Sprintf("date range: %s - %s", s.date, s.dateTo)
	case skipWeekday:
		return fmt.Sprintf("day: %v", s.days)
	case skipWeekdayRange:
		return fmt.Sprintf("day range: %d - %d", s.dayFrom, s.dayTo)
	case skipTime:
		return fmt.Sprintf("time: %s", s.at)
	case skipTimeRange:
		return fmt.Sprintf("time range: %s - %s", s.at, s.atTo)
	}
	return "none"
}

func (s Skip) equal(other Skip) bool {
	if s.kind != other.kind {
		return false
	}
	if len(s.days) != len(other.days) {
		return false
	}
	for i := range s.days {
		if s.days[i] != other.days[i] {
			return false
		}
	}
	return s.date == other.date && s.dateTo == other.dateTo &&
		s.dayFrom == other.dayFrom && s.dayTo == other.dayTo &&
		s.at == other.at && s.atTo == other.atTo
}

// SkipSet 为有序的跳过规则集合，任一规则命中即跳过；空集合永不跳过。
type SkipSet []Skip

// Matches 判断给定本地投影是否被任一规则命中。纯函数，O(规则数)。
func (set SkipSet) Matches(d Date, t TimeOfDay, weekday int) bool {
	for _, s := range set {
		if s.matches(d, t, weekday) {
			return true
		}
	}
	return false
}

func (set SkipSet) String() string {
	parts := make([]string, len(set))
	for i, s := range set {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

func (set SkipSet) equal(other SkipSet) bool {
	if len(set) != len(other) {
		return false
	}
	for i := range set {
		if !set[i].equal(other[i]) {
			return false
		}
	}
	return true
}
