// file: internals/features/disciplines/service/content_write_service.go
package service

import (
	"context"
	"errors"

	"edupolo_backend/internals/features/disciplines/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   Videos
========================================================= */

func (s *Service) ListVideos(ctx context.Context, disciplineID uuid.UUID) ([]model.DisciplineVideoModel, error) {
	var list []model.DisciplineVideoModel
	err := s.conn(ctx, nil).
		Where("discipline_video_discipline_id = ?", disciplineID).
		Order("discipline_video_order ASC, discipline_video_created_at ASC").
		Find(&list).Error
	return list, err
}

// AddVideo enforces the per-discipline cap inside a locked transaction.
// Order 0 appends after the current last video.
func (s *Service) AddVideo(ctx context.Context, m *model.DisciplineVideoModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockDiscipline(ctx, tx, m.DisciplineVideoDisciplineID); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&model.DisciplineVideoModel{}).
			Where("discipline_video_discipline_id = ?", m.DisciplineVideoDisciplineID).
			Count(&n).Error; err != nil {
			return err
		}
		if int(n) >= s.MaxVideos {
			return ErrVideoLimitReached
		}
		if m.DisciplineVideoOrder <= 0 {
			m.DisciplineVideoOrder = int(n) + 1
		}
		return tx.Create(m).Error
	})
}

func (s *Service) GetVideo(ctx context.Context, disciplineID, videoID uuid.UUID) (*model.DisciplineVideoModel, error) {
	var m model.DisciplineVideoModel
	err := s.conn(ctx, nil).
		Where("discipline_video_id = ? AND discipline_video_discipline_id = ?", videoID, disciplineID).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVideoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) SaveVideo(ctx context.Context, m *model.DisciplineVideoModel) error {
	return s.conn(ctx, nil).Save(m).Error
}

func (s *Service) DeleteVideo(ctx context.Context, disciplineID, videoID uuid.UUID) error {
	res := s.conn(ctx, nil).
		Where("discipline_video_id = ? AND discipline_video_discipline_id = ?", videoID, disciplineID).
		Delete(&model.DisciplineVideoModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return nil
}

/* =========================================================
   E-books (one live row per kind)
========================================================= */

// UpsertEbook replaces the live e-book of the same kind, or creates it.
func (s *Service) UpsertEbook(ctx context.Context, in model.DisciplineEbookModel) (*model.DisciplineEbookModel, error) {
	var out model.DisciplineEbookModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockDiscipline(ctx, tx, in.DisciplineEbookDisciplineID); err != nil {
			return err
		}
		err := tx.Where("discipline_ebook_discipline_id = ? AND discipline_ebook_kind = ?",
			in.DisciplineEbookDisciplineID, in.DisciplineEbookKind).
			Take(&out).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			out = in
			return tx.Create(&out).Error
		case err != nil:
			return err
		}
		out.DisciplineEbookURL = in.DisciplineEbookURL
		out.DisciplineEbookTitle = in.DisciplineEbookTitle
		out.DisciplineEbookDescription = in.DisciplineEbookDescription
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) DeleteEbook(ctx context.Context, disciplineID uuid.UUID, kind model.EbookKind) error {
	res := s.conn(ctx, nil).
		Where("discipline_ebook_discipline_id = ? AND discipline_ebook_kind = ?", disciplineID, kind).
		Delete(&model.DisciplineEbookModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEbookNotFound
	}
	return nil
}

/* =========================================================
   Questions
========================================================= */

func (s *Service) AddQuestion(ctx context.Context, m *model.DisciplineQuestionModel) error {
	if _, err := s.GetDiscipline(ctx, nil, m.DisciplineQuestionDisciplineID); err != nil {
		return err
	}
	return s.conn(ctx, nil).Create(m).Error
}

// ListQuestions returns questions of one discipline; empty kind lists both exams.
func (s *Service) ListQuestions(ctx context.Context, disciplineID uuid.UUID, kind model.ExamKind) ([]model.DisciplineQuestionModel, error) {
	q := s.conn(ctx, nil).Where("discipline_question_discipline_id = ?", disciplineID)
	if kind != "" {
		q = q.Where("discipline_question_exam_kind = ?", kind)
	}
	var list []model.DisciplineQuestionModel
	err := q.Order("discipline_question_exam_kind ASC, discipline_question_order ASC, discipline_question_created_at ASC").
		Find(&list).Error
	return list, err
}

func (s *Service) DeleteQuestion(ctx context.Context, disciplineID, questionID uuid.UUID) error {
	res := s.conn(ctx, nil).
		Where("discipline_question_id = ? AND discipline_question_discipline_id = ?", questionID, disciplineID).
		Delete(&model.DisciplineQuestionModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}
