package service

import (
	"StudyHub/internal/api/dto"
	"testing"
	"time"
)

func msg(id string, sec int) *dto.ChatMessageDTO {
	return &dto.ChatMessageDTO{
		ID:        id,
		GroupID:   1,
		UserID:    1,
		Content:   "hi " + id,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, sec, 0, time.UTC),
	}
}

func ids(tl *MessageTimeline) []string {
	out := make([]string, 0, tl.Len())
	for _, m := range tl.Messages() {
		out = append(out, m.ID)
	}
	return out
}

func assertOrder(t *testing.T, tl *MessageTimeline, want ...string) {
	t.Helper()
	got := ids(tl)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestTimelineDedup(t *testing.T) {
	tl := NewMessageTimeline()
	tl.InsertBatch([]*dto.ChatMessageDTO{msg("m1", 1), msg("m2", 2)})

	// 实时订阅把刚发的 m2 回显回来
	if tl.Insert(msg("m2", 2)) {
		t.Fatal("duplicate id must not be inserted")
	}
	assertOrder(t, tl, "m1", "m2")
}

func TestTimelineOutOfOrder(t *testing.T) {
	tl := NewMessageTimeline()
	tl.Insert(msg("m2", 2))
	tl.Insert(msg("m3", 3))
	tl.Insert(msg("m1", 1))
	assertOrder(t, tl, "m1", "m2", "m3")
}

func TestTimelineTailAppend(t *testing.T) {
	tl := NewMessageTimeline()
	for i := 1; i <= 5; i++ {
		if !tl.Insert(msg(string(rune('a'+i-1)), i)) {
			t.Fatalf("insert %d rejected", i)
		}
	}
	assertOrder(t, tl, "a", "b", "c", "d", "e")
}

func TestTimelineTieBreakByID(t *testing.T) {
	// 同一时间戳按 ID 排序，两种到达顺序收敛到同一结果
	tl1 := NewMessageTimeline()
	tl1.Insert(msg("b", 1))
	tl1.Insert(msg("a", 1))

	tl2 := NewMessageTimeline()
	tl2.Insert(msg("a", 1))
	tl2.Insert(msg("b", 1))

	assertOrder(t, tl1, "a", "b")
	assertOrder(t, tl2, "a", "b")
}

func TestTimelineBulkThenLiveMerge(t *testing.T) {
	tl := NewMessageTimeline()
	// 实时消息先到，随后历史批量到达并包含重叠
	tl.Insert(msg("m4", 4))
	inserted := tl.InsertBatch([]*dto.ChatMessageDTO{msg("m1", 1), msg("m2", 2), msg("m3", 3), msg("m4", 4)})
	if inserted != 3 {
		t.Fatalf("inserted = %d, want 3", inserted)
	}
	assertOrder(t, tl, "m1", "m2", "m3", "m4")
}
