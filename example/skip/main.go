package main

import (
	"context"
	"fmt"
	"time"

	schedule "github.com/rain2307/easy-schedule"
)

func main() {
	ctx := context.Background()

	s, err := schedule.New(schedule.WithTimezone(8))
	if err != nil { panic(err) }
	defer func() { _ = s.Close(ctx) }()

	// 跳过周末的每日任务：周六周日不触发，自动顺延到下周一
	weekend, err := schedule.SkipWeekdays(6, 7)
	if err != nil { panic(err) }
	daily := schedule.At(schedule.MustTime(9, 30), weekend)

	if next, ok := s.NextRunTime(daily); ok {
		fmt.Println("[Skip] 下次触发:", next.Format("2006-01-02 15:04:05 -07:00"))
	}

	// 所有工作日都被跳过时，解析器得不到有效时间，任务以跳过通知结束
	all, err := schedule.SkipWeekdays(1, 2, 3, 4, 5, 6, 7)
	if err != nil { panic(err) }
	h, err := s.Start(&schedule.NotifyFunc{
		Spec: schedule.Interval(60, all),
		Skip: func(ctx context.Context, h *schedule.TaskHandle) {
			fmt.Println("[Skip] 任务被全部跳过:", h.Task())
		},
	})
	if err != nil { panic(err) }

	select {
	case <-h.Done():
		fmt.Println("[Skip] 任务结束，状态:", h.State())
	case <-time.After(2 * time.Second):
		fmt.Println("[Skip] 等待超时")
	}
}
