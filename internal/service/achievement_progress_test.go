package service

import (
	"StudyHub/internal/model"
	"testing"
)

func def(reqType string, reqValue float64) *model.Achievement {
	return &model.Achievement{ID: 1, RequirementType: reqType, RequirementValue: reqValue}
}

func TestProgressClamp(t *testing.T) {
	stats := &StatsSnapshot{CurrentStreak: 30}
	if got := Progress(def("streak", 7), stats); got != 100 {
		t.Fatalf("over-satisfied progress = %v, want clamped to 100", got)
	}
	if got := Progress(def("streak", 7), &StatsSnapshot{}); got != 0 {
		t.Fatalf("zero stats progress = %v, want 0", got)
	}
}

func TestProgressMapping(t *testing.T) {
	stats := &StatsSnapshot{
		TotalStudySeconds:   18000, // 5 小时
		CurrentStreak:       3,
		ChallengesCompleted: 2,
		GroupsJoined:        1,
		MessagesSent:        50,
	}
	cases := []struct {
		reqType  string
		reqValue float64
		want     float64
	}{
		{"time", 10, 50},
		{"streak", 6, 50},
		{"challenges", 4, 50},
		{"groups", 2, 50},
		{"messages", 100, 50},
		{"sessions", 10, 0}, // 无统计来源
		{"unknown", 10, 0},
	}
	for _, c := range cases {
		if got := Progress(def(c.reqType, c.reqValue), stats); got != c.want {
			t.Errorf("Progress(%s/%v) = %v, want %v", c.reqType, c.reqValue, got, c.want)
		}
	}
}

func TestProgressNonPositiveRequirement(t *testing.T) {
	if got := Progress(def("streak", 0), &StatsSnapshot{}); got != 100 {
		t.Fatalf("requirement 0 progress = %v, want 100", got)
	}
	if got := Progress(def("time", -5), &StatsSnapshot{}); got != 100 {
		t.Fatalf("negative requirement progress = %v, want 100", got)
	}
}

func TestProgressMonotonic(t *testing.T) {
	d := def("messages", 100)
	prev := float64(-1)
	for sent := int64(0); sent <= 150; sent += 10 {
		got := Progress(d, &StatsSnapshot{MessagesSent: sent})
		if got < prev {
			t.Fatalf("progress decreased: %v -> %v at sent=%d", prev, got, sent)
		}
		prev = got
	}
}
