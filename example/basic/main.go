package main

import (
	"context"
	"fmt"
	"time"

	schedule "github.com/rain2307/easy-schedule"
)

func main() {
	ctx := context.Background()

	// 默认 UTC 时区，每个任务一个独立 goroutine
	s, err := schedule.New()
	if err != nil { panic(err) }
	defer func() { _ = s.Close(ctx) }()

	// 一次性延迟任务：1 秒后触发一次
	_, err = s.Start(&schedule.NotifyFunc{
		Spec: schedule.Wait(1),
		Time: func(ctx context.Context, h *schedule.TaskHandle) {
			fmt.Println("[Wait] 触发", h.ID())
		},
	})
	if err != nil { panic(err) }

	// 周期任务：每秒触发一次
	count := 0
	_, err = s.Start(&schedule.NotifyFunc{
		Spec: schedule.Interval(1),
		Time: func(ctx context.Context, h *schedule.TaskHandle) {
			count++
			fmt.Println("[Interval] tick", count)
		},
	})
	if err != nil { panic(err) }

	fmt.Println("[Schedule] 已启动，本示例将运行约 3.5s...")
	time.Sleep(3500 * time.Millisecond)
	s.Stop()
	fmt.Println("[Schedule] 已停止，示例结束")
}
