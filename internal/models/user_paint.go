package models

import (
	"time"

	"github.com/google/uuid"
)

// PaintStatus tracks how much of an owned pot is left.
type PaintStatus string

const (
	StatusFull  PaintStatus = "full"
	StatusLow   PaintStatus = "low"
	StatusEmpty PaintStatus = "empty"
)

// Next cycles full → low → empty → full.
func (s PaintStatus) Next() PaintStatus {
	switch s {
	case StatusFull:
		return StatusLow
	case StatusLow:
		return StatusEmpty
	default:
		return StatusFull
	}
}

// UserPaint records that a user owns a catalog paint.
type UserPaint struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID   `json:"userId" gorm:"type:char(36);not null;uniqueIndex:uq_user_paint,priority:1"`
	PaintID   uint        `json:"paintId" gorm:"not null;uniqueIndex:uq_user_paint,priority:2"`
	Status    PaintStatus `json:"status" gorm:"size:16;not null;default:full"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`

	User  User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Paint Paint `json:"paint" gorm:"foreignKey:PaintID;constraint:OnDelete:CASCADE"`
}
