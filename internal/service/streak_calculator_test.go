package service

import (
	"StudyHub/internal/model"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(current, longest, days int, last *time.Time) model.StreakRecord {
	return model.StreakRecord{
		UserID:         1,
		CurrentStreak:  current,
		LongestStreak:  longest,
		TotalStudyDays: days,
		LastStudyDate:  last,
	}
}

func TestComputeNextStreakFirstActivity(t *testing.T) {
	next, changed := ComputeNextStreak(record(0, 0, 0, nil), date(2024, 1, 10))
	if !changed {
		t.Fatal("first activity must produce a write")
	}
	if next.CurrentStreak != 1 || next.LongestStreak != 1 || next.TotalStudyDays != 1 {
		t.Fatalf("got current=%d longest=%d days=%d, want all 1",
			next.CurrentStreak, next.LongestStreak, next.TotalStudyDays)
	}
	if next.LastStudyDate == nil || !next.LastStudyDate.Equal(date(2024, 1, 10)) {
		t.Fatalf("lastStudyDate = %v, want 2024-01-10", next.LastStudyDate)
	}
}

func TestComputeNextStreakSameDayNoOp(t *testing.T) {
	last := date(2024, 1, 10)
	prev := record(1, 1, 1, &last)

	next, changed := ComputeNextStreak(prev, date(2024, 1, 10))
	if changed {
		t.Fatal("same-day activity must be a no-op")
	}
	if next != prev {
		t.Fatalf("record changed on no-op: %+v", next)
	}

	// 同一天晚些时候也不变
	_, changed = ComputeNextStreak(prev, time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC))
	if changed {
		t.Fatal("later same-day activity must still be a no-op")
	}
}

func TestComputeNextStreakConsecutiveDay(t *testing.T) {
	last := date(2024, 1, 10)
	next, changed := ComputeNextStreak(record(1, 1, 1, &last), date(2024, 1, 11))
	if !changed {
		t.Fatal("next-day activity must produce a write")
	}
	if next.CurrentStreak != 2 || next.LongestStreak != 2 || next.TotalStudyDays != 2 {
		t.Fatalf("got current=%d longest=%d days=%d, want 2/2/2",
			next.CurrentStreak, next.LongestStreak, next.TotalStudyDays)
	}
}

func TestComputeNextStreakGapResets(t *testing.T) {
	last := date(2024, 1, 10)
	next, changed := ComputeNextStreak(record(5, 5, 12, &last), date(2024, 1, 13))
	if !changed {
		t.Fatal("gap activity must produce a write")
	}
	if next.CurrentStreak != 1 {
		t.Fatalf("current = %d, want reset to 1", next.CurrentStreak)
	}
	if next.LongestStreak != 5 {
		t.Fatalf("longest = %d, want 5 preserved", next.LongestStreak)
	}
	if next.TotalStudyDays != 13 {
		t.Fatalf("totalStudyDays = %d, want 13 (gap adds exactly one day)", next.TotalStudyDays)
	}
}

func TestComputeNextStreakClockSkewResets(t *testing.T) {
	// 最后学习日期在"未来"：按间隔处理，重置而非崩溃
	last := date(2024, 1, 15)
	next, changed := ComputeNextStreak(record(3, 4, 7, &last), date(2024, 1, 10))
	if !changed {
		t.Fatal("skewed activity must produce a write")
	}
	if next.CurrentStreak != 1 || next.LongestStreak != 4 || next.TotalStudyDays != 8 {
		t.Fatalf("got current=%d longest=%d days=%d, want 1/4/8",
			next.CurrentStreak, next.LongestStreak, next.TotalStudyDays)
	}
}

func TestComputeNextStreakInvariants(t *testing.T) {
	// 跑一串混合活动序列，检查每个可达状态都满足不变量
	days := []time.Time{
		date(2024, 1, 1), date(2024, 1, 2), date(2024, 1, 2),
		date(2024, 1, 3), date(2024, 1, 7), date(2024, 1, 8),
		date(2024, 1, 9), date(2024, 1, 10), date(2024, 1, 20),
	}
	prev := model.StreakRecord{UserID: 1}
	for _, day := range days {
		next, changed := ComputeNextStreak(prev, day)
		if next.LongestStreak < next.CurrentStreak {
			t.Fatalf("day %v: longest %d < current %d", day, next.LongestStreak, next.CurrentStreak)
		}
		if next.TotalStudyDays < next.CurrentStreak {
			t.Fatalf("day %v: totalDays %d < current %d", day, next.TotalStudyDays, next.CurrentStreak)
		}
		if changed {
			prev = next
		}
	}
	if prev.LongestStreak != 4 {
		t.Fatalf("longest = %d, want 4 (run of Jan 7-10)", prev.LongestStreak)
	}
	if prev.TotalStudyDays != 8 {
		t.Fatalf("totalStudyDays = %d, want 8 distinct days", prev.TotalStudyDays)
	}
}
