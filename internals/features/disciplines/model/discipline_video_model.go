// file: internals/features/disciplines/model/discipline_video_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxVideosPerDiscipline is the platform cap on live videos per discipline.
const MaxVideosPerDiscipline = 10

type DisciplineVideoModel struct {
	DisciplineVideoID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:discipline_video_id" json:"discipline_video_id"`
	DisciplineVideoDisciplineID uuid.UUID `gorm:"type:uuid;not null;index;column:discipline_video_discipline_id" json:"discipline_video_discipline_id"`

	DisciplineVideoTitle *string `gorm:"type:varchar(200);column:discipline_video_title" json:"discipline_video_title,omitempty"`
	DisciplineVideoURL   string  `gorm:"type:text;not null;column:discipline_video_url" json:"discipline_video_url"`

	// declared source; NULL means "detect from url"
	DisciplineVideoSource    *string `gorm:"type:varchar(16);column:discipline_video_source" json:"discipline_video_source,omitempty"`
	DisciplineVideoStartTime *string `gorm:"type:varchar(8);column:discipline_video_start_time" json:"discipline_video_start_time,omitempty"`
	DisciplineVideoOrder     int     `gorm:"not null;default:0;column:discipline_video_order" json:"discipline_video_order"`

	DisciplineVideoCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:discipline_video_created_at" json:"discipline_video_created_at"`
	DisciplineVideoUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:discipline_video_updated_at" json:"discipline_video_updated_at"`
	DisciplineVideoDeletedAt gorm.DeletedAt `gorm:"column:discipline_video_deleted_at;index" json:"discipline_video_deleted_at,omitempty"`
}

func (DisciplineVideoModel) TableName() string { return "discipline_videos" }
