package schedule

// Package schedule 提供声明式的任务调度能力：四种任务形态
// （wait 延时一次 / interval 固定周期 / at 每日定时 / once 固定时刻），
// 配合可组合的跳过规则（日期、日期范围、星期、星期范围、时间、跨夜时间范围）。
// 核心是纯函数的下次触发时刻解析器，执行引擎为每个任务维护独立协程，
// 支持协作式取消与字符串语法解析（如 "at(09:00, weekday 7)"）。
