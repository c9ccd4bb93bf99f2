package models

import (
	"time"

	"gorm.io/datatypes"
)

// Report is one cleaning visit write-up submitted by a staff member.
type Report struct {
	ID        uint           `gorm:"primaryKey"                  json:"id"`
	Date      string         `gorm:"column:date;not null"        json:"date"`
	StaffName string         `gorm:"column:staff_name;not null"  json:"staffName"`
	Summary   string         `gorm:"column:summary;not null"     json:"summary"`
	Notes     string         `gorm:"column:notes"                json:"notes"`
	Areas     datatypes.JSON `gorm:"column:areas"                json:"areas"`
	Photos    datatypes.JSON `gorm:"column:photos"               json:"photos"`
	CreatedAt time.Time      `gorm:"autoCreateTime"              json:"-"`
}

// ApplyDefaults substitutes the documented fallbacks for fields the client
// omitted. Required strings already default to "" as Go zero values.
func (r *Report) ApplyDefaults() {
	if len(r.Areas) == 0 {
		r.Areas = datatypes.JSON("[]")
	}
	if len(r.Photos) == 0 {
		r.Photos = datatypes.JSON("[]")
	}
}
