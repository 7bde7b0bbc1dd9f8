package service

import (
	"StudyHub/internal/model"
	"StudyHub/internal/pkg/util"
	"time"
)

// ComputeNextStreak 连续学习的唯一状态转移函数，日粒度
// 返回的 bool 表示是否需要落库：同一天内的重复活动不产生任何写入
//
// 分支判定顺序固定：同日 > 昨日 > 其他
//   - 同日：原样返回，不写
//   - 昨日：连续 +1
//   - 有记录但间隔 >= 2 天（含时钟回拨出现的"未来"记录）：重置为 1
//   - 无记录：首次活动，全部从 1 开始
func ComputeNextStreak(prev model.StreakRecord, now time.Time) (model.StreakRecord, bool) {
	today := util.Midnight(now)

	if prev.LastStudyDate != nil {
		last := util.Midnight(*prev.LastStudyDate)

		if last.Equal(today) {
			return prev, false
		}

		next := prev
		if last.AddDate(0, 0, 1).Equal(today) {
			next.CurrentStreak = prev.CurrentStreak + 1
		} else {
			next.CurrentStreak = 1
		}
		next.TotalStudyDays = prev.TotalStudyDays + 1
		if next.CurrentStreak > next.LongestStreak {
			next.LongestStreak = next.CurrentStreak
		}
		next.LastStudyDate = &today
		return next, true
	}

	next := prev
	next.CurrentStreak = 1
	next.TotalStudyDays = 1
	if next.LongestStreak < 1 {
		next.LongestStreak = 1
	}
	next.LastStudyDate = &today
	return next, true
}
