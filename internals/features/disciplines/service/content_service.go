// file: internals/features/disciplines/service/content_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"edupolo_backend/internals/features/disciplines/completeness"
	"edupolo_backend/internals/features/disciplines/dto"
	"edupolo_backend/internals/features/disciplines/model"
	"edupolo_backend/internals/features/disciplines/videourl"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDisciplineNotFound = errors.New("discipline not found")
	ErrVideoNotFound      = errors.New("video not found")
	ErrEbookNotFound      = errors.New("ebook not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrVideoLimitReached  = errors.New("video limit reached for this discipline")
)

type Service struct {
	DB        *gorm.DB
	Policy    completeness.Policy
	Videos    *videourl.Normalizer
	MaxVideos int
}

func New(db *gorm.DB, policy completeness.Policy, videos *videourl.Normalizer, maxVideos int) *Service {
	if maxVideos <= 0 {
		maxVideos = model.MaxVideosPerDiscipline
	}
	if videos == nil {
		videos = videourl.New(nil)
	}
	return &Service{DB: db, Policy: policy, Videos: videos, MaxVideos: maxVideos}
}

// tx boleh nil → pakai s.DB
func (s *Service) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return s.DB.WithContext(ctx)
}

/* =========================================================
   Discipline lookup
========================================================= */

func (s *Service) GetDiscipline(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.DisciplineModel, error) {
	var m model.DisciplineModel
	err := s.conn(ctx, tx).Where("discipline_id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDisciplineNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// lockDiscipline takes a row lock so concurrent writers on the same discipline serialize.
func lockDiscipline(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	var m model.DisciplineModel
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("discipline_id").
		Where("discipline_id = ?", id).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrDisciplineNotFound
	}
	return err
}

/* =========================================================
   Snapshot & completeness
========================================================= */

// LoadSnapshot reads the discipline and all of its live content.
func (s *Service) LoadSnapshot(ctx context.Context, id uuid.UUID) (dto.ContentSnapshot, error) {
	var snap dto.ContentSnapshot

	d, err := s.GetDiscipline(ctx, nil, id)
	if err != nil {
		return snap, err
	}
	snap.Discipline = *d

	db := s.conn(ctx, nil)

	if snap.Videos, err = s.ListVideos(ctx, id); err != nil {
		return snap, err
	}

	var ebooks []model.DisciplineEbookModel
	if err := db.Where("discipline_ebook_discipline_id = ?", id).
		Order("discipline_ebook_updated_at DESC").
		Find(&ebooks).Error; err != nil {
		return snap, fmt.Errorf("load ebooks: %w", err)
	}
	for i := range ebooks {
		e := ebooks[i]
		switch e.DisciplineEbookKind {
		case model.EbookKindStatic:
			if snap.StaticEbook == nil {
				snap.StaticEbook = &e
			}
		case model.EbookKindInteractive:
			if snap.InteractiveEbook == nil {
				snap.InteractiveEbook = &e
			}
		}
	}

	var questions []model.DisciplineQuestionModel
	if err := db.Where("discipline_question_discipline_id = ?", id).
		Order("discipline_question_order ASC, discipline_question_created_at ASC").
		Find(&questions).Error; err != nil {
		return snap, fmt.Errorf("load questions: %w", err)
	}
	for _, q := range questions {
		switch q.DisciplineQuestionExamKind {
		case model.ExamKindSimulado:
			snap.Simulado = append(snap.Simulado, q)
		case model.ExamKindAvaliacaoFinal:
			snap.FinalExam = append(snap.FinalExam, q)
		}
	}
	return snap, nil
}

// Summary is the full content view with its completeness result.
func (s *Service) Summary(ctx context.Context, id uuid.UUID) (dto.ContentSummaryResponse, error) {
	snap, err := s.LoadSnapshot(ctx, id)
	if err != nil {
		return dto.ContentSummaryResponse{}, err
	}
	return dto.FromContentSnapshot(snap, s.Videos, s.Policy), nil
}

// Completeness evaluates one discipline from COUNT queries only.
func (s *Service) Completeness(ctx context.Context, id uuid.UUID) (completeness.Result, error) {
	if _, err := s.GetDiscipline(ctx, nil, id); err != nil {
		return completeness.Result{}, err
	}
	counts, err := s.CountsFor(ctx, []uuid.UUID{id})
	if err != nil {
		return completeness.Result{}, err
	}
	return s.Policy.EvaluateCounts(counts[id]), nil
}

// EvaluateMany is used by list endpoints; ids without content map to an incomplete result.
func (s *Service) EvaluateMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]completeness.Result, error) {
	counts, err := s.CountsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]completeness.Result, len(ids))
	for _, id := range ids {
		out[id] = s.Policy.EvaluateCounts(counts[id])
	}
	return out, nil
}

type countRow struct {
	DisciplineID uuid.UUID `gorm:"column:discipline_id"`
	Kind         string    `gorm:"column:kind"`
	N            int       `gorm:"column:n"`
}

// CountsFor aggregates live content per discipline with three grouped queries.
func (s *Service) CountsFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]completeness.Counts, error) {
	out := make(map[uuid.UUID]completeness.Counts, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	db := s.conn(ctx, nil)

	var videos []countRow
	if err := db.Model(&model.DisciplineVideoModel{}).
		Select("discipline_video_discipline_id AS discipline_id, '' AS kind, COUNT(*) AS n").
		Where("discipline_video_discipline_id IN ?", ids).
		Group("discipline_video_discipline_id").
		Scan(&videos).Error; err != nil {
		return nil, fmt.Errorf("count videos: %w", err)
	}
	for _, r := range videos {
		c := out[r.DisciplineID]
		c.Videos = r.N
		out[r.DisciplineID] = c
	}

	var ebooks []countRow
	if err := db.Model(&model.DisciplineEbookModel{}).
		Select("discipline_ebook_discipline_id AS discipline_id, discipline_ebook_kind AS kind, COUNT(*) AS n").
		Where("discipline_ebook_discipline_id IN ?", ids).
		Group("discipline_ebook_discipline_id, discipline_ebook_kind").
		Scan(&ebooks).Error; err != nil {
		return nil, fmt.Errorf("count ebooks: %w", err)
	}
	for _, r := range ebooks {
		c := out[r.DisciplineID]
		switch model.EbookKind(r.Kind) {
		case model.EbookKindStatic:
			c.HasStaticEbook = r.N > 0
		case model.EbookKindInteractive:
			c.HasInteractiveEbook = r.N > 0
		}
		out[r.DisciplineID] = c
	}

	var questions []countRow
	if err := db.Model(&model.DisciplineQuestionModel{}).
		Select("discipline_question_discipline_id AS discipline_id, discipline_question_exam_kind AS kind, COUNT(*) AS n").
		Where("discipline_question_discipline_id IN ?", ids).
		Group("discipline_question_discipline_id, discipline_question_exam_kind").
		Scan(&questions).Error; err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	for _, r := range questions {
		c := out[r.DisciplineID]
		switch model.ExamKind(r.Kind) {
		case model.ExamKindSimulado:
			c.SimuladoQuestions = r.N
		case model.ExamKindAvaliacaoFinal:
			c.FinalExamQuestions = r.N
		}
		out[r.DisciplineID] = c
	}
	return out, nil
}
