package dto

import (
	"encoding/json"
	"testing"

	"edupolo_backend/internals/features/disciplines/completeness"
	"edupolo_backend/internals/features/disciplines/model"
	"edupolo_backend/internals/features/disciplines/videourl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateDisciplineRequest_NormalizeAndModel(t *testing.T) {
	req := CreateDisciplineRequest{
		DisciplineCode: "  mat101 ",
		DisciplineName: " Matemática Básica ",
		DisciplineTags: []string{" Exatas", "exatas", "", "EAD"},
	}
	req.Normalize()
	m := req.ToModel("matematica-basica")

	assert.Equal(t, "MAT101", m.DisciplineCode)
	assert.Equal(t, "Matemática Básica", m.DisciplineName)
	assert.Equal(t, []string{"exatas", "ead"}, []string(m.DisciplineTags))
	require.NotNil(t, m.DisciplineSlug)
	assert.Equal(t, "matematica-basica", *m.DisciplineSlug)
	assert.True(t, m.DisciplineIsActive)

	resp := FromDisciplineModel(model.DisciplineModel{})
	assert.NotNil(t, resp.DisciplineTags)
}

func TestUpdateDisciplineRequest_Apply(t *testing.T) {
	m := model.DisciplineModel{DisciplineName: "Old", DisciplineCode: "A1", DisciplineIsActive: true}
	req := UpdateDisciplineRequest{DisciplineName: ptr(" New "), DisciplineIsActive: ptr(false)}
	req.Normalize()
	req.Apply(&m)

	assert.Equal(t, "New", m.DisciplineName)
	assert.Equal(t, "A1", m.DisciplineCode)
	assert.False(t, m.DisciplineIsActive)
}

func TestCreateVideoRequest_StartTimeErrors(t *testing.T) {
	req := CreateVideoRequest{DisciplineVideoURL: "https://youtu.be/dQw4w9WgXcQ", DisciplineVideoStartTime: ptr("1:2:3")}
	req.Normalize()
	assert.Contains(t, req.FieldErrors(), "discipline_video_start_time")

	req.DisciplineVideoStartTime = ptr("01:30")
	assert.Empty(t, req.FieldErrors())

	req.DisciplineVideoStartTime = ptr("153722867280912931:00")
	assert.Contains(t, req.FieldErrors(), "discipline_video_start_time")
}

func TestUpdateVideoRequest_BlankStartTimeClears(t *testing.T) {
	m := model.DisciplineVideoModel{DisciplineVideoStartTime: ptr("00:10")}
	req := UpdateVideoRequest{DisciplineVideoStartTime: ptr("  ")}

	assert.Empty(t, req.FieldErrors())
	req.Apply(&m)
	assert.Nil(t, m.DisciplineVideoStartTime)
}

func TestUpdateVideoRequest_BlankSourceClears(t *testing.T) {
	m := model.DisciplineVideoModel{DisciplineVideoSource: ptr("vimeo")}
	req := UpdateVideoRequest{DisciplineVideoSource: ptr(" ")}
	req.Normalize()
	require.NotNil(t, req.DisciplineVideoSource)

	req.Apply(&m)
	assert.Nil(t, m.DisciplineVideoSource)

	m.DisciplineVideoSource = ptr("vimeo")
	req = UpdateVideoRequest{DisciplineVideoSource: ptr(" YouTube ")}
	req.Normalize()
	req.Apply(&m)
	require.NotNil(t, m.DisciplineVideoSource)
	assert.Equal(t, "youtube", *m.DisciplineVideoSource)

	m.DisciplineVideoSource = ptr("vimeo")
	(&UpdateVideoRequest{}).Apply(&m)
	assert.Equal(t, "vimeo", *m.DisciplineVideoSource)
}

func TestFromVideoModel_NormalizesOnRead(t *testing.T) {
	m := model.DisciplineVideoModel{
		DisciplineVideoID:        uuid.New(),
		DisciplineVideoURL:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		DisciplineVideoStartTime: ptr("01:30"),
		DisciplineVideoOrder:     1,
	}
	out := FromVideoModel(m, videourl.New(nil))

	assert.Equal(t, videourl.SourceYouTube, out.Video.Source)
	require.NotNil(t, out.Video.ID)
	assert.Equal(t, "dQw4w9WgXcQ", *out.Video.ID)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?enablejsapi=1&rel=0&start=90", out.Video.EmbedURL)
}

func TestFromVideoModel_DeclaredSourceWins(t *testing.T) {
	m := model.DisciplineVideoModel{
		DisciplineVideoURL:    "https://storage.example.com/aula.mp4",
		DisciplineVideoSource: ptr("upload"),
	}
	out := FromVideoModel(m, nil)
	assert.Equal(t, videourl.SourceUpload, out.Video.Source)
	assert.Nil(t, out.Video.ID)
	assert.Equal(t, m.DisciplineVideoURL, out.Video.EmbedURL)
}

func TestPreviewVideo_UnknownDeclaredSourceIsDetected(t *testing.T) {
	req := VideoPreviewRequest{URL: " https://vimeo.com/76979871 ", Source: ptr("Dailymotion")}
	req.Normalize()
	info := PreviewVideo(req, nil)

	assert.Equal(t, videourl.SourceVimeo, info.Source)
	assert.Equal(t, "https://player.vimeo.com/video/76979871", info.EmbedURL)
}

func TestCreateQuestionRequest_ToModel(t *testing.T) {
	id := uuid.New()
	req := CreateQuestionRequest{
		DisciplineQuestionExamKind:           " Simulado ",
		DisciplineQuestionStatement:          " 2+2? ",
		DisciplineQuestionOptions:            []string{"3", " 4 "},
		DisciplineQuestionCorrectOptionIndex: ptr(1),
	}
	req.Normalize()
	m, errs := req.ToModel(id)

	require.Empty(t, errs)
	assert.Equal(t, model.ExamKindSimulado, m.DisciplineQuestionExamKind)
	assert.Equal(t, "2+2?", m.DisciplineQuestionStatement)
	assert.Equal(t, []string{"3", "4"}, m.Options())
	assert.Equal(t, 1, m.DisciplineQuestionCorrectIndex)

	req.DisciplineQuestionCorrectOptionIndex = ptr(5)
	_, errs = req.ToModel(id)
	assert.Contains(t, errs, "discipline_question_options")
}

func TestInteractiveEbookToModel(t *testing.T) {
	req := UpsertInteractiveEbookRequest{DisciplineEbookURL: " https://ebooks.example.com/x ", DisciplineEbookTitle: " Guia "}
	req.Normalize()
	m := req.ToModel(uuid.New())

	assert.Equal(t, model.EbookKindInteractive, m.DisciplineEbookKind)
	require.NotNil(t, m.DisciplineEbookTitle)
	assert.Equal(t, "Guia", *m.DisciplineEbookTitle)
	assert.Nil(t, m.DisciplineEbookDescription)
}

func fullSnapshot() ContentSnapshot {
	var sim, fin model.DisciplineQuestionModel
	_ = sim.SetOptions([]string{"a", "b"}, 0)
	sim.DisciplineQuestionExamKind = model.ExamKindSimulado
	_ = fin.SetOptions([]string{"a", "b"}, 1)
	fin.DisciplineQuestionExamKind = model.ExamKindAvaliacaoFinal

	return ContentSnapshot{
		Discipline:       model.DisciplineModel{DisciplineID: uuid.New(), DisciplineName: "Física"},
		Videos:           []model.DisciplineVideoModel{{DisciplineVideoURL: "https://youtu.be/dQw4w9WgXcQ"}},
		InteractiveEbook: &model.DisciplineEbookModel{DisciplineEbookKind: model.EbookKindInteractive, DisciplineEbookURL: "https://e.example.com", DisciplineEbookTitle: ptr("Guia")},
		Simulado:         []model.DisciplineQuestionModel{sim},
		FinalExam:        []model.DisciplineQuestionModel{fin},
	}
}

func TestContentSnapshot_StateMatchesCounts(t *testing.T) {
	snap := fullSnapshot()
	st := snap.State()

	assert.Equal(t, completeness.Counts{
		Videos:              1,
		HasInteractiveEbook: true,
		SimuladoQuestions:   1,
		FinalExamQuestions:  1,
	}, st.Counts())
	require.NotNil(t, st.InteractiveEbook)
	assert.Equal(t, "Guia", st.InteractiveEbook.Title)
	assert.Equal(t, 1, st.FinalExamQuestions[0].CorrectOptionIndex)
}

func TestFromContentSnapshot(t *testing.T) {
	out := FromContentSnapshot(fullSnapshot(), videourl.New(nil), completeness.DefaultPolicy)

	assert.True(t, out.Completeness.IsComplete)
	require.NotNil(t, out.Discipline.Completeness)
	assert.True(t, out.Discipline.Completeness.IsComplete)
	assert.Nil(t, out.StaticEbook)
	assert.Equal(t, 1, out.SimuladoQuestionCount)
	assert.Len(t, out.Videos, 1)

	strict := FromContentSnapshot(fullSnapshot(), nil, completeness.Policy{MinSimuladoQuestions: 5, MinFinalExamQuestions: 1})
	assert.False(t, strict.Completeness.IsComplete)
	assert.False(t, strict.Completeness.Requirements.HasSimulado)

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"completeness":{"isComplete":true,"requirements":{"hasVideo":true,"hasEbook":true,"hasSimulado":true,"hasAvaliacaoFinal":true}}`)
	assert.NotContains(t, string(b), "discipline_question_options")
}
