package schedule

import "context"

// Notifiable 定义可被调度的任务：提供调度描述，并在触发/跳过时收到回调。
// 回调拿到自身的句柄，可在其中取消自己的任务实例
// （例如在 Interval 形态上实现"只执行一次后停止"）。
type Notifiable interface {
	// Task 返回调度描述。
	Task() Task
	// OnTime 在触发时刻被调用。引擎不对其施加超时，长耗时只会推迟
	// 本实例的下一次解析，不会影响其他任务实例。
	OnTime(ctx context.Context, h *TaskHandle)
	// OnSkip 在解析得出"不会再触发"时被调用一次：一次性任务的候选
	// 被跳过规则抑制、Once 已过期，或周期任务在搜索上限内无有效候选。
	OnSkip(ctx context.Context, h *TaskHandle)
}

// NotifyFunc 以函数字段实现 Notifiable，便于轻量注册任务。
// Skip 为空时跳过通知被忽略。
type NotifyFunc struct {
	Spec Task
	Time func(ctx context.Context, h *TaskHandle)
	Skip func(ctx context.Context, h *TaskHandle)
}

func (n NotifyFunc) Task() Task { return n.Spec }

func (n NotifyFunc) OnTime(ctx context.Context, h *TaskHandle) {
	if n.Time != nil {
		n.Time(ctx, h)
	}
}

func (n NotifyFunc) OnSkip(ctx context.Context, h *TaskHandle) {
	if n.Skip != nil {
		n.Skip(ctx, h)
	}
}
