package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a user-authored mixing formula. Components are replaced
// wholesale on edit and removed with the recipe.
type Recipe struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);not null;index"`
	Name      string    `json:"name" gorm:"size:128;not null"`
	Note      string    `json:"note" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	User       User              `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Components []RecipeComponent `json:"components" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// RecipeComponent is one paint in a recipe. Ratio is in parts:
// 2 parts Abaddon Black to 1 part Lahmian Medium is ratio 2 and 1.
type RecipeComponent struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	RecipeID uint `json:"recipeId" gorm:"not null;index"`
	PaintID  uint `json:"paintId" gorm:"not null"`
	Ratio    int  `json:"ratio" gorm:"not null;default:1"`

	Paint Paint `json:"paint" gorm:"foreignKey:PaintID;constraint:OnDelete:CASCADE"`
}
