package models

// Paint is static catalog reference data, read-only after seeding.
// A paint is globally unique by brand + range + name.
type Paint struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Brand     string `json:"brand" gorm:"size:64;not null;index;uniqueIndex:uq_paint_brand_range_name,priority:1"`
	Range     string `json:"range" gorm:"column:range;size:64;not null;index;uniqueIndex:uq_paint_brand_range_name,priority:2"`
	Name      string `json:"name" gorm:"size:128;not null;uniqueIndex:uq_paint_brand_range_name,priority:3"`
	Hex       string `json:"hex" gorm:"size:7;not null"`
	PaintType string `json:"paintType" gorm:"size:32;not null"`
}
