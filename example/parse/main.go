package main

import (
	"context"
	"fmt"

	schedule "github.com/rain2307/easy-schedule"
)

func main() {
	ctx := context.Background()

	s, err := schedule.New()
	if err != nil { panic(err) }
	defer func() { _ = s.Close(ctx) }()

	// 从文本描述构造任务，等价于直接调用构造函数
	specs := []string{
		"wait(10)",
		"interval(3600, weekday 6)",
		"at(09:30, [weekday 6, weekday 7])",
		"once(2027-01-01 10:00:00 +08)",
		"interval(60, time 22:00..06:00)",
	}

	for _, text := range specs {
		task, err := schedule.Parse(text)
		if err != nil {
			fmt.Println("[Parse] 解析失败:", err)
			continue
		}
		if next, ok := s.NextRunTime(task); ok {
			fmt.Printf("[Parse] %-40s -> %s\n", task, next.Format("2006-01-02 15:04:05"))
		} else {
			fmt.Printf("[Parse] %-40s -> 永不触发\n", task)
		}
	}
}
