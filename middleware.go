package schedule

import "context"

// Handler 执行一次任务触发。
type Handler func(ctx context.Context, h *TaskHandle)

// Middleware 包装触发执行，用于日志、指标等横切逻辑。
// 在 Start 时传入，按声明顺序由外向内生效。
type Middleware func(next Handler) Handler

// chain 将中间件逆序折叠到最终 Handler 上。
func chain(mws []Middleware, final Handler) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		final = mws[i](final)
	}
	return final
}
