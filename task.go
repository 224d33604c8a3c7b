package schedule

import (
	"fmt"
	"strings"
	"time"
)

type taskKind int

const (
	taskWait taskKind = iota
	taskInterval
	taskAt
	taskOnce
)

func (k taskKind) String() string {
	switch k {
	case taskWait:
		return "wait"
	case taskInterval:
		return "interval"
	case taskAt:
		return "at"
	case taskOnce:
		return "once"
	}
	return "unknown"
}

// Task 为任务的调度描述，四种形态之一，构造后不可变：
//   - Wait：启动后延时 N 秒触发一次
//   - Interval：每 N 秒触发一次，从上次触发时刻起算
//   - At：每天在指定本地时刻触发
//   - Once：在固定时刻触发一次
type Task struct {
	kind    taskKind
	seconds int
	at      TimeOfDay
	instant time.Time
	skips   SkipSet
}

// Wait 构造延时一次性任务。
func Wait(seconds int, skips ...Skip) Task {
	return Task{kind: taskWait, seconds: seconds, skips: SkipSet(skips)}
}

// Interval 构造固定周期任务。
func Interval(seconds int, skips ...Skip) Task {
	return Task{kind: taskInterval, seconds: seconds, skips: SkipSet(skips)}
}

// At 构造每日定时任务。
func At(t TimeOfDay, skips ...Skip) Task {
	return Task{kind: taskAt, at: t, skips: SkipSet(skips)}
}

// Once 构造固定时刻一次性任务；早于解析基准时刻的 instant 永不触发。
func Once(instant time.Time, skips ...Skip) Task {
	return Task{kind: taskOnce, instant: instant, skips: SkipSet(skips)}
}

// Validate 校验任务描述，构造期错误在此暴露而非运行期。
func (t Task) Validate() error {
	switch t.kind {
	case taskWait, taskInterval:
		if t.seconds <= 0 {
			return fmt.Errorf("schedule: %s seconds must be positive, got %d", t.kind, t.seconds)
		}
	case taskAt:
		if _, err := NewTime(t.at.Hour, t.at.Minute); err != nil {
			return err
		}
	case taskOnce:
		if t.instant.IsZero() {
			return fmt.Errorf("schedule: once instant is zero")
		}
	}
	return nil
}

// Skips 返回任务的跳过规则集合。
func (t Task) Skips() SkipSet { return t.skips }

// Equal 判断两个任务描述等价。
func (t Task) Equal(other Task) bool {
	if t.kind != other.kind || !t.skips.equal(other.skips) {
		return false
	}
	switch t.kind {
	case taskWait, taskInterval:
		return t.seconds == other.seconds
	case taskAt:
		return t.at == other.at
	case taskOnce:
		return t.instant.Equal(other.instant)
	}
	return false
}

func (t Task) String() string {
	var b strings.Builder
	switch t.kind {
	case taskWait:
		fmt.Fprintf(&b, "wait: %d", t.seconds)
	case taskInterval:
		fmt.Fprintf(&b, "interval: %d", t.seconds)
	case taskAt:
		fmt.Fprintf(&b, "at: %s", t.at)
	case taskOnce:
		fmt.Fprintf(&b, "once: %s", t.instant.Format("2006-01-02 15:04:05 -07:00"))
	}
	if len(t.skips) > 0 {
		fmt.Fprintf(&b, " %s", t.skips)
	}
	return b.String()
}
