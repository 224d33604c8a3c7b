package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ErrSchedulerClosed 表示调度器已停止，不再接受新任务。
var ErrSchedulerClosed = errors.New("schedule: scheduler stopped")

// TaskState 为任务实例的生命周期状态。
type TaskState int32

const (
	// StateScheduled 已解析出下次触发时刻，等待中。
	StateScheduled TaskState = iota
	// StateFiring 正在执行触发回调。
	StateFiring
	// StateRescheduling 触发完成，正在解析下一次。
	StateRescheduling
	// StateCancelled 已取消（终态）。
	StateCancelled
	// StateExhausted 不会再触发（终态）：一次性任务已执行，或解析得出 Never。
	StateExhausted
)

func (s TaskState) String() string {
	switch s {
	case StateScheduled:
		return "scheduled"
	case StateFiring:
		return "firing"
	case StateRescheduling:
		return "rescheduling"
	case StateCancelled:
		return "cancelled"
	case StateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// TaskHandle 为已注册任务实例的句柄，可单独取消。
type TaskHandle struct {
	id     string
	task   Task
	cancel context.CancelFunc
	done   chan struct{}
	state  atomic.Int32
}

// ID 返回实例标识。
func (h *TaskHandle) ID() string { return h.id }

// Task 返回实例的调度描述。
func (h *TaskHandle) Task() Task { return h.task }

// Cancel 取消本实例，幂等；在下一个挂起点生效，不打断在途回调。
func (h *TaskHandle) Cancel() { h.cancel() }

// Done 在实例到达终态后关闭。
func (h *TaskHandle) Done() <-chan struct{} { return h.done }

// State 返回当前状态。
func (h *TaskHandle) State() TaskState { return TaskState(h.state.Load()) }

func (h *TaskHandle) setState(s TaskState) { h.state.Store(int32(s)) }

// Scheduler 驱动任务实例的 解析 → 等待 → 触发 循环。
// 每个实例运行在独立协程上，句柄注册表是唯一的共享可变状态。
// 通过 New 构造；并发安全。
type Scheduler struct {
	tz      Timezone
	horizon int
	logger  Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	handles map[string]*TaskHandle
}

// Option 允许注入替换默认行为（如 Logger、时区）。
type Option func(*Scheduler) error

// WithTimezone 指定（小时, 分钟）时区偏移。
func WithTimezone(hours, minutes int) Option {
	return func(s *Scheduler) error {
		tz, err := NewTimezone(hours, minutes)
		if err != nil {
			return err
		}
		s.tz = tz
		return nil
	}
}

// WithTimezoneMinutes 指定总分钟数时区偏移。
func WithTimezoneMinutes(minutes int) Option {
	return func(s *Scheduler) error {
		tz, err := NewTimezoneMinutes(minutes)
		if err != nil {
			return err
		}
		s.tz = tz
		return nil
	}
}

// WithLogger 注入自定义日志实现。
func WithLogger(l Logger) Option {
	return func(s *Scheduler) error {
		if l != nil {
			s.logger = l
		}
		return nil
	}
}

// WithSearchHorizon 调整解析器搜索步数上限，须为正数。
func WithSearchHorizon(n int) Option {
	return func(s *Scheduler) error {
		if n < 1 {
			return fmt.Errorf("schedule: search horizon must be positive, got %d", n)
		}
		s.horizon = n
		return nil
	}
}

// New 创建调度器，默认 UTC 时区。
func New(opts ...Option) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		horizon: DefaultSearchHorizon,
		logger:  newDefaultLogger(),
		ctx:     ctx,
		cancel:  cancel,
		handles: make(map[string]*TaskHandle),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			cancel()
			return nil, err
		}
	}
	return s, nil
}

// Timezone 返回本调度会话的时区上下文。
func (s *Scheduler) Timezone() Timezone { return s.tz }

// Start 注册并启动任务，返回可单独取消的句柄。
// 中间件按声明顺序由外向内包裹每次触发。
func (s *Scheduler) Start(n Notifiable, mws ...Middleware) (*TaskHandle, error) {
	task := n.Task()
	if err := task.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return nil, ErrSchedulerClosed
	}
	ctx, cancel := context.WithCancel(s.ctx)
	h := &TaskHandle{
		id:     uuid.NewString(),
		task:   task,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.handles[h.id] = h
	s.wg.Add(1)
	s.mu.Unlock()

	fire := chain(mws, func(ctx context.Context, h *TaskHandle) { n.OnTime(ctx, h) })
	go s.run(ctx, h, n, fire)
	s.logger.Debug(ctx, "task started", "task_id", h.id, "task", task.String())
	return h, nil
}

// NextRunTime 计算给定调度描述的下次触发时刻，ok 为 false 表示不会触发。
// 纯查询：以当前时刻为基准、无历史触发，不注册任何任务实例。
func (s *Scheduler) NextRunTime(t Task) (time.Time, bool) {
	if t.Validate() != nil {
		return time.Time{}, false
	}
	return nextRun(t, s.tz, time.Now(), nil, s.horizon)
}

// Running 返回当前注册表中的任务实例数。
func (s *Scheduler) Running() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// Stop 取消全部任务实例（幂等），不等待在途触发完成。
// 持锁取消，保证与 Start 的注册全序：取消之后不会再有新实例入册。
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
}

// Close 停止调度并等待全部任务协程退出，等待受 ctx 限制。
func (s *Scheduler) Close(ctx context.Context) error {
	s.Stop()
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run 为单个任务实例的主循环：解析 → 定时等待 → 复查取消 → 触发。
// 同一实例的触发严格有序，至多一个在途；取消只在挂起点生效。
func (s *Scheduler) run(ctx context.Context, h *TaskHandle, n Notifiable, fire Handler) {
	defer s.wg.Done()
	defer close(h.done)
	defer s.remove(h.id)

	start := time.Now()
	var last *time.Time
	for {
		ref := start
		if last != nil {
			ref = time.Now()
		}
		next, ok := nextRun(h.task, s.tz, ref, last, s.horizon)
		if !ok {
			h.setState(StateExhausted)
			s.logger.Debug(ctx, "task will not run", "task_id", h.id)
			s.invokeSkip(ctx, h, n)
			return
		}
		h.setState(StateScheduled)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			h.setState(StateCancelled)
			return
		case <-timer.C:
		}
		if ctx.Err() != nil {
			h.setState(StateCancelled)
			return
		}

		h.setState(StateFiring)
		s.logger.Debug(ctx, "task fired", "task_id", h.id, "at", next)
		s.invoke(ctx, h, fire)

		if h.task.kind == taskWait || h.task.kind == taskOnce {
			h.setState(StateExhausted)
			return
		}
		h.setState(StateRescheduling)
		fired := next
		last = &fired
	}
}

// invoke 执行一次触发并恢复 panic，回调故障不影响引擎与其他实例。
func (s *Scheduler) invoke(ctx context.Context, h *TaskHandle, fire Handler) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "task callback panicked", "task_id", h.id, "panic", fmt.Sprint(r))
		}
	}()
	fire(ctx, h)
}

func (s *Scheduler) invokeSkip(ctx context.Context, h *TaskHandle, n Notifiable) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "skip callback panicked", "task_id", h.id, "panic", fmt.Sprint(r))
		}
	}()
	n.OnSkip(ctx, h)
}

func (s *Scheduler) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.handles, id)
}
