package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// onceLayout 对应 "YYYY-MM-DD HH:MM:SS +HH"。
const onceLayout = "2006-01-02 15:04:05 -07"

// ParseError 描述无法解析的任务字符串：原始输入与失败原因。
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("schedule: cannot parse %q: %s", e.Input, e.Reason)
}

// Parse 解析 "kind(args)" 形式的任务字符串，例如：
//
//	wait(30)
//	interval(60, weekday 6)
//	at(09:30, time 12:00..13:00)
//	once(2024-01-01 10:00:00 +08)
//	wait(10, [weekday 6, weekday 7])
//
// 失败返回 *ParseError，绝不退化为默认任务。
func Parse(s string) (Task, error) {
	in := strings.TrimSpace(s)

	openParen := strings.Index(in, "(")
	if openParen < 0 {
		return Task{}, &ParseError{Input: s, Reason: "invalid task format, expected like 'wait(10)'"}
	}
	closeParen := strings.LastIndex(in, ")")
	if closeParen < 0 {
		return Task{}, &ParseError{Input: s, Reason: "missing closing parenthesis"}
	}
	if closeParen <= openParen {
		return Task{}, &ParseError{Input: s, Reason: "invalid parentheses"}
	}

	name := strings.TrimSpace(in[:openParen])
	primary, skips, err := parseArguments(s, strings.TrimSpace(in[openParen+1:closeParen]))
	if err != nil {
		return Task{}, err
	}

	var task Task
	switch name {
	case "wait":
		n, convErr := strconv.Atoi(primary)
		if convErr != nil {
			return Task{}, &ParseError{Input: s, Reason: fmt.Sprintf("invalid seconds value %q in wait(%s)", primary, primary)}
		}
		task = Wait(n, skips...)
	case "interval":
		n, convErr := strconv.Atoi(primary)
		if convErr != nil {
			return Task{}, &ParseError{Input: s, Reason: fmt.Sprintf("invalid seconds value %q in interval(%s)", primary, primary)}
		}
		task = Interval(n, skips...)
	case "at":
		tod, todErr := ParseTimeOfDay(primary)
		if todErr != nil {
			return Task{}, &ParseError{Input: s, Reason: fmt.Sprintf("invalid time format %q in at(%s), expected HH:MM", primary, primary)}
		}
		task = At(tod, skips...)
	case "once":
		instant, onceErr := time.Parse(onceLayout, primary)
		if onceErr != nil {
			return Task{}, &ParseError{Input: s, Reason: fmt.Sprintf("invalid datetime format %q in once(%s), expected YYYY-MM-DD HH:MM:SS +HH", primary, primary)}
		}
		task = Once(instant, skips...)
	default:
		return Task{}, &ParseError{Input: s, Reason: fmt.Sprintf("unknown task type %q, supported types: wait, interval, at, once", name)}
	}

	if err := task.Validate(); err != nil {
		return Task{}, &ParseError{Input: s, Reason: err.Error()}
	}
	return task, nil
}

// MustParse 同 Parse，解析失败时 panic，仅用于已在外部校验过输入的场合。
func MustParse(s string) Task {
	task, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("schedule: failed to parse task from %q: %v", s, err))
	}
	return task
}

// parseArguments 按第一个逗号切出主参数与跳过条件。
func parseArguments(input, args string) (string, []Skip, error) {
	comma := strings.Index(args, ",")
	if comma < 0 {
		return args, nil, nil
	}
	primary := strings.TrimSpace(args[:comma])
	skips, err := parseSkipConditions(input, strings.TrimSpace(args[comma+1:]))
	if err != nil {
		return "", nil, err
	}
	return primary, skips, nil
}

// parseSkipConditions 解析单个条件或 [a, b, ...] 列表。
func parseSkipConditions(input, s string) ([]Skip, error) {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		var skips []Skip
		for _, part := range strings.Split(s[1:len(s)-1], ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			skip, err := parseSingleSkip(input, part)
			if err != nil {
				return nil, err
			}
			skips = append(skips, skip)
		}
		return skips, nil
	}
	skip, err := parseSingleSkip(input, s)
	if err != nil {
		return nil, err
	}
	return []Skip{skip}, nil
}

// parseSingleSkip 解析一个跳过条件：
//
//	weekday N        N 为 1..7
//	date YYYY-MM-DD
//	time HH:MM 或 time HH:MM..HH:MM
func parseSingleSkip(input, s string) (Skip, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return Skip{}, &ParseError{Input: input, Reason: "empty skip condition"}
	}

	switch parts[0] {
	case "weekday":
		if len(parts) != 2 {
			return Skip{}, &ParseError{Input: input, Reason: fmt.Sprintf("invalid weekday format %q, expected 'weekday N'", s)}
		}
		day, err := strconv.Atoi(parts[1])
		if err != nil {
			return Skip{}, &ParseError{Input: input, Reason: fmt.Sprintf("invalid weekday number %q", parts[1])}
		}
		skip, err := SkipWeekdays(day)
		if err != nil {
			return Skip{}, &ParseError{Input: input, Reason: fmt.Sprintf("weekday must be between 1-7, got %d", day)}
		}
		return skip, nil

	case "date":
		if len(parts) != 2 {
			return Skip{}, &ParseError{Input: input, Reason: fmt.Sprintf("invalid date format %q, expected 'date YYYY-MM-DD'", s)}
		}
		d, err := ParseDate(parts[1])
		if err != nil {
			return Skip{}, &ParseError{Input: input, Reason: fmt.Sprintf("invalid date %q", parts[1])}
		}
		return SkipDate(d), nil

	case "time":
		if len(parts) != 2 {
			return Skip{}, &ParseError{Input: input, Reason: fmt.Sprintf("invalid time format %q, expected 'time HH:MM..HH:MM'", s)}
		}
		spec := parts[1]
		if from, to, isRange := strings.Cut(spec, ".."); isRange {
			start, err := ParseTimeOfDay(from)
			if err != nil {
				return Skip{}, &ParseError{Input: input, Reason: fmt.Sprintf("invalid start time %q", from)}
			}
			end, err := ParseTimeOfDay(to)
			if err != nil {
				return Skip{}, &ParseError{Input: input, Reason: fmt.Sprintf("invalid end time %q", to)}
			}
			return SkipTimeRange(start, end), nil
		}
		tod, err := ParseTimeOfDay(spec)
		if err != nil {
			return Skip{}, &ParseError{Input: input, Reason: fmt.Sprintf("invalid time %q", spec)}
		}
		return SkipTime(tod), nil
	}

	return Skip{}, &ParseError{Input: input, Reason: fmt.Sprintf("unknown skip type %q, supported types: weekday, date, time", parts[0])}
}
