package schedule

import "time"

// DefaultSearchHorizon 为解析器的搜索步数上限：Interval 最多前探 366 个周期，
// At 最多前探 366 天。规则集可能覆盖未来全部候选（如跳过全部七个星期），
// 上限保证解析必然终止，超限视为 Never。
const DefaultSearchHorizon = 366

// nextRun 计算任务在 ref 之后的下一个有效触发时刻。
// last 为上次触发时刻（首次解析为 nil）。ok 为 false 表示 Never：
// 当前规则下不存在未来的有效时刻，属正常终态而非错误。
// 纯函数，不阻塞、不产生副作用。
func nextRun(t Task, tz Timezone, ref time.Time, last *time.Time, horizon int) (next time.Time, ok bool) {
	if horizon < 1 {
		horizon = 1
	}
	switch t.kind {
	case taskWait:
		// 一次性任务没有周期可退避，候选被跳过即永久抑制。
		candidate := ref.Add(time.Duration(t.seconds) * time.Second)
		if skippedAt(t.skips, tz, candidate) {
			return time.Time{}, false
		}
		return candidate, true

	case taskOnce:
		if !t.instant.After(ref) {
			return time.Time{}, false
		}
		if skippedAt(t.skips, tz, t.instant) {
			return time.Time{}, false
		}
		return t.instant, true

	case taskInterval:
		period := time.Duration(t.seconds) * time.Second
		base := ref
		if last != nil {
			base = *last
		}
		candidate := base.Add(period)
		if !candidate.After(ref) {
			// 错过的候选不补发：直接跳到 ref 之后的第一个网格点。
			n := int64(ref.Sub(candidate)/period) + 1
			candidate = candidate.Add(time.Duration(n) * period)
		}
		for i := 0; i < horizon; i++ {
			if !skippedAt(t.skips, tz, candidate) {
				return candidate, true
			}
			candidate = candidate.Add(period)
		}
		return time.Time{}, false

	case taskAt:
		loc := tz.location()
		local := ref.In(loc)
		candidate := time.Date(local.Year(), local.Month(), local.Day(),
			t.at.Hour, t.at.Minute, 0, 0, loc)
		if !candidate.After(ref) {
			candidate = candidate.AddDate(0, 0, 1)
		}
		for i := 0; i < horizon; i++ {
			if !skippedAt(t.skips, tz, candidate) {
				return candidate, true
			}
			candidate = candidate.AddDate(0, 0, 1)
		}
		return time.Time{}, false
	}
	return time.Time{}, false
}

// skippedAt 在候选时刻的本地投影上求值跳过规则。
func skippedAt(set SkipSet, tz Timezone, ts time.Time) bool {
	if len(set) == 0 {
		return false
	}
	d, tod, weekday := tz.toLocal(ts)
	return set.Matches(d, tod, weekday)
}
