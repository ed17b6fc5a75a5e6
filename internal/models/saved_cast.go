package models

import (
	"time"
)

// SavedCast 一条被保存的 cast 记录
// hash is the original cast's content hash. It is indexed but deliberately
// not unique: saving the same cast twice inserts two rows (last write wins).
type SavedCast struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Hash           string    `gorm:"index;not null" json:"hash"`
	Text           string    `gorm:"type:text" json:"text"`
	AuthorFID      int64     `gorm:"column:author_fid;not null" json:"author_fid"`
	AuthorUsername string    `gorm:"column:author_username" json:"author_username"`
	SavedByFID     int64     `gorm:"column:saved_by_fid;not null;index" json:"saved_by_fid"`
	Timestamp      time.Time `json:"timestamp"`
	CreatedAt      time.Time `json:"created_at"`
}
