package models

import (
	"time"

	"gorm.io/datatypes"
)

// Preset is a reusable site template of cleaning sections. Its database id
// is server-internal and never surfaced or accepted over the API.
type Preset struct {
	ID        uint           `gorm:"primaryKey"                 json:"-"`
	SiteName  string         `gorm:"column:site_name;not null"  json:"siteName"`
	Sections  datatypes.JSON `gorm:"column:sections"            json:"sections"`
	CreatedAt time.Time      `gorm:"autoCreateTime"             json:"-"`
}

// ApplyDefaults substitutes an empty section list when the client omitted it.
func (p *Preset) ApplyDefaults() {
	if len(p.Sections) == 0 {
		p.Sections = datatypes.JSON("[]")
	}
}
