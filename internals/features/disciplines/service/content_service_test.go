package service

import (
	"context"
	"testing"

	"edupolo_backend/internals/features/disciplines/completeness"
	"edupolo_backend/internals/features/disciplines/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockService(t *testing.T, maxVideos int) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return New(db, completeness.DefaultPolicy, nil, maxVideos), mock
}

func expectLock(mock sqlmock.Sqlmock, id uuid.UUID) {
	mock.ExpectQuery(`FROM "disciplines" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"discipline_id"}).AddRow(id.String()))
}

func TestNew_Defaults(t *testing.T) {
	s := New(nil, completeness.DefaultPolicy, nil, 0)

	assert.Equal(t, model.MaxVideosPerDiscipline, s.MaxVideos)
	require.NotNil(t, s.Videos)

	s = New(nil, completeness.DefaultPolicy, nil, 3)
	assert.Equal(t, 3, s.MaxVideos)
}

func TestCountsFor_NoIDs(t *testing.T) {
	s := New(nil, completeness.DefaultPolicy, nil, 0)

	out, err := s.CountsFor(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	res, err := s.EvaluateMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestCountsFor_GroupsRowsPerDiscipline(t *testing.T) {
	s, mock := newMockService(t, 0)
	full, partial, empty := uuid.New(), uuid.New(), uuid.New()
	cols := []string{"discipline_id", "kind", "n"}

	mock.ExpectQuery(`FROM "discipline_videos"`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(full.String(), "", 3).
			AddRow(partial.String(), "", 1))
	mock.ExpectQuery(`FROM "discipline_ebooks"`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(full.String(), "interactive", 1).
			AddRow(partial.String(), "static", 1))
	mock.ExpectQuery(`FROM "discipline_questions"`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(full.String(), "simulado", 5).
			AddRow(full.String(), "avaliacao_final", 2).
			AddRow(partial.String(), "simulado", 4))

	out, err := s.CountsFor(context.Background(), []uuid.UUID{full, partial, empty})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, completeness.Counts{
		Videos:              3,
		HasInteractiveEbook: true,
		SimuladoQuestions:   5,
		FinalExamQuestions:  2,
	}, out[full])
	assert.Equal(t, completeness.Counts{
		Videos:            1,
		HasStaticEbook:    true,
		SimuladoQuestions: 4,
	}, out[partial])
	assert.Equal(t, completeness.Counts{}, out[empty])

	assert.True(t, s.Policy.EvaluateCounts(out[full]).IsComplete)
	res := s.Policy.EvaluateCounts(out[partial])
	assert.False(t, res.IsComplete)
	assert.True(t, res.Requirements.HasEbook)
	assert.False(t, res.Requirements.HasAvaliacaoFinal)
}

func TestAddVideo_LimitReached(t *testing.T) {
	s, mock := newMockService(t, 0)
	discID := uuid.New()

	mock.ExpectBegin()
	expectLock(mock, discID)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "discipline_videos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(model.MaxVideosPerDiscipline))
	mock.ExpectRollback()

	err := s.AddVideo(context.Background(), &model.DisciplineVideoModel{
		DisciplineVideoDisciplineID: discID,
		DisciplineVideoURL:          "https://youtu.be/dQw4w9WgXcQ",
	})
	assert.ErrorIs(t, err, ErrVideoLimitReached)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddVideo_AppendsWhenOrderOmitted(t *testing.T) {
	s, mock := newMockService(t, 0)
	discID, videoID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectLock(mock, discID)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "discipline_videos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`INSERT INTO "discipline_videos"`).
		WillReturnRows(sqlmock.NewRows([]string{"discipline_video_id"}).AddRow(videoID.String()))
	mock.ExpectCommit()

	m := &model.DisciplineVideoModel{
		DisciplineVideoDisciplineID: discID,
		DisciplineVideoURL:          "https://vimeo.com/76979871",
	}
	require.NoError(t, s.AddVideo(context.Background(), m))
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 4, m.DisciplineVideoOrder)
	assert.Equal(t, videoID, m.DisciplineVideoID)
}

func TestAddVideo_UnknownDiscipline(t *testing.T) {
	s, mock := newMockService(t, 0)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM "disciplines" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"discipline_id"}))
	mock.ExpectRollback()

	err := s.AddVideo(context.Background(), &model.DisciplineVideoModel{DisciplineVideoDisciplineID: uuid.New()})
	assert.ErrorIs(t, err, ErrDisciplineNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertEbook_CreatesWhenMissing(t *testing.T) {
	s, mock := newMockService(t, 0)
	discID, ebookID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectLock(mock, discID)
	mock.ExpectQuery(`SELECT \* FROM "discipline_ebooks"`).
		WillReturnRows(sqlmock.NewRows([]string{"discipline_ebook_id"}))
	mock.ExpectQuery(`INSERT INTO "discipline_ebooks"`).
		WillReturnRows(sqlmock.NewRows([]string{"discipline_ebook_id"}).AddRow(ebookID.String()))
	mock.ExpectCommit()

	out, err := s.UpsertEbook(context.Background(), model.DisciplineEbookModel{
		DisciplineEbookDisciplineID: discID,
		DisciplineEbookKind:         model.EbookKindStatic,
		DisciplineEbookURL:          "https://cdn.edupolo.com.br/apostila.pdf",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, ebookID, out.DisciplineEbookID)
	assert.Equal(t, "https://cdn.edupolo.com.br/apostila.pdf", out.DisciplineEbookURL)
}

func TestUpsertEbook_UpdatesExisting(t *testing.T) {
	s, mock := newMockService(t, 0)
	discID, ebookID := uuid.New(), uuid.New()
	title := "Apostila v2"

	mock.ExpectBegin()
	expectLock(mock, discID)
	mock.ExpectQuery(`SELECT \* FROM "discipline_ebooks"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"discipline_ebook_id", "discipline_ebook_discipline_id", "discipline_ebook_kind", "discipline_ebook_url",
		}).AddRow(ebookID.String(), discID.String(), "interactive", "https://old.example.com/livro"))
	mock.ExpectExec(`UPDATE "discipline_ebooks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	out, err := s.UpsertEbook(context.Background(), model.DisciplineEbookModel{
		DisciplineEbookDisciplineID: discID,
		DisciplineEbookKind:         model.EbookKindInteractive,
		DisciplineEbookURL:          "https://livro.edupolo.com.br/mat101",
		DisciplineEbookTitle:        &title,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, ebookID, out.DisciplineEbookID)
	assert.Equal(t, "https://livro.edupolo.com.br/mat101", out.DisciplineEbookURL)
	require.NotNil(t, out.DisciplineEbookTitle)
	assert.Equal(t, title, *out.DisciplineEbookTitle)
}

func TestDeleteVideo_NotFound(t *testing.T) {
	s, mock := newMockService(t, 0)

	mock.ExpectExec(`UPDATE "discipline_videos" SET "discipline_video_deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeleteVideo(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrVideoNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
