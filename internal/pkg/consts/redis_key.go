package consts

const (
	ChatGroupKey    = "chat:group:"
	UserStatsKey    = "user:stats:"
	UserSimpleKey   = "user:simple:"
	StudyMetricsKey = "study:metrics:"
)

const (
	StreakUpdateLock   = "lock:streak:update:"
	StreakReminderLock = "lock:streak:reminder:"
)
