// file: internals/features/disciplines/model/discipline_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type DisciplineModel struct {
	DisciplineID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:discipline_id" json:"discipline_id"`

	DisciplineCode        string         `gorm:"type:varchar(40);not null;index:uq_disciplines_code_live,unique,where:discipline_deleted_at IS NULL;column:discipline_code" json:"discipline_code"`
	DisciplineName        string         `gorm:"type:varchar(160);not null;column:discipline_name" json:"discipline_name"`
	DisciplineSlug        *string        `gorm:"type:varchar(160);column:discipline_slug" json:"discipline_slug,omitempty"`
	DisciplineDescription *string        `gorm:"type:text;column:discipline_description" json:"discipline_description,omitempty"`
	DisciplineTags        pq.StringArray `gorm:"type:text[];column:discipline_tags" json:"discipline_tags"`
	DisciplineWorkloadHrs *int           `gorm:"column:discipline_workload_hours" json:"discipline_workload_hours,omitempty"`

	DisciplineIsActive  bool           `gorm:"not null;default:true;column:discipline_is_active" json:"discipline_is_active"`
	DisciplineCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:discipline_created_at" json:"discipline_created_at"`
	DisciplineUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:discipline_updated_at" json:"discipline_updated_at"`
	DisciplineDeletedAt gorm.DeletedAt `gorm:"column:discipline_deleted_at;index" json:"discipline_deleted_at,omitempty"`
}

func (DisciplineModel) TableName() string { return "disciplines" }
