package model

import "time"

// ChallengeSubmission 编程挑战完成记录，(user_id, challenge_id) 唯一
type ChallengeSubmission struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"not null;uniqueIndex:idx_user_challenge"`
	ChallengeID string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_user_challenge"`
	Language    string    `gorm:"type:varchar(30)"`
	CompletedAt time.Time `gorm:"not null"`
}

func (ChallengeSubmission) TableName() string {
	return "challenge_submissions"
}
