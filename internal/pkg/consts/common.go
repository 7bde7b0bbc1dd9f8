package consts

const (
	DefaultAvatarURL = "default_avatar.png"

	GroupCodeLength = 6
)

// 成就要求类型，与 achievements 表的 requirement_type 字段一致
const (
	RequirementTime       = "time"
	RequirementStreak     = "streak"
	RequirementChallenges = "challenges"
	RequirementGroups     = "groups"
	RequirementMessages   = "messages"
	RequirementSessions   = "sessions"
)

// 学习活动事件类型，对应 Kafka study-activity 主题
const (
	ActivitySession   = "session"
	ActivityMessage   = "message"
	ActivityChallenge = "challenge"
)
