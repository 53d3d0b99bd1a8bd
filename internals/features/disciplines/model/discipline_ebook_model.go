// file: internals/features/disciplines/model/discipline_ebook_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EbookKind string

const (
	EbookKindStatic      EbookKind = "static"
	EbookKindInteractive EbookKind = "interactive"
)

func (k EbookKind) Valid() bool {
	return k == EbookKindStatic || k == EbookKindInteractive
}

// One live row per (discipline, kind).
type DisciplineEbookModel struct {
	DisciplineEbookID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:discipline_ebook_id" json:"discipline_ebook_id"`
	DisciplineEbookDisciplineID uuid.UUID `gorm:"type:uuid;not null;index;index:uq_discipline_ebooks_kind_live,unique,where:discipline_ebook_deleted_at IS NULL;column:discipline_ebook_discipline_id" json:"discipline_ebook_discipline_id"`
	DisciplineEbookKind         EbookKind `gorm:"type:varchar(12);not null;index:uq_discipline_ebooks_kind_live,unique,where:discipline_ebook_deleted_at IS NULL;column:discipline_ebook_kind" json:"discipline_ebook_kind"`

	DisciplineEbookURL         string  `gorm:"type:text;not null;column:discipline_ebook_url" json:"discipline_ebook_url"`
	DisciplineEbookTitle       *string `gorm:"type:varchar(200);column:discipline_ebook_title" json:"discipline_ebook_title,omitempty"`
	DisciplineEbookDescription *string `gorm:"type:text;column:discipline_ebook_description" json:"discipline_ebook_description,omitempty"`

	DisciplineEbookCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:discipline_ebook_created_at" json:"discipline_ebook_created_at"`
	DisciplineEbookUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:discipline_ebook_updated_at" json:"discipline_ebook_updated_at"`
	DisciplineEbookDeletedAt gorm.DeletedAt `gorm:"column:discipline_ebook_deleted_at;index" json:"discipline_ebook_deleted_at,omitempty"`
}

func (DisciplineEbookModel) TableName() string { return "discipline_ebooks" }
