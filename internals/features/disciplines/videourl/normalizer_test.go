package videourl

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestProcessVideoURL_YouTubeShortLink(t *testing.T) {
	info := ProcessVideoURL("https://youtu.be/dQw4w9WgXcQ", "", "")

	require.NotNil(t, info.ID)
	assert.Equal(t, SourceYouTube, info.Source)
	assert.Equal(t, "dQw4w9WgXcQ", *info.ID)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?enablejsapi=1&rel=0", info.EmbedURL)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", info.OriginalURL)
}

func TestProcessVideoURL_Vimeo(t *testing.T) {
	info := ProcessVideoURL("https://vimeo.com/76979871", "", "")

	require.NotNil(t, info.ID)
	assert.Equal(t, SourceVimeo, info.Source)
	assert.Equal(t, "76979871", *info.ID)
	assert.Equal(t, "https://player.vimeo.com/video/76979871", info.EmbedURL)
}

func TestProcessVideoURL_StartTime(t *testing.T) {
	info := ProcessVideoURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ", SourceYouTube, "01:30")
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?enablejsapi=1&rel=0&start=90", info.EmbedURL)

	info = ProcessVideoURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ", SourceYouTube, "1m30")
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?enablejsapi=1&rel=0", info.EmbedURL)

	info = ProcessVideoURL("https://youtu.be/dQw4w9WgXcQ", "", "153722867280912931:00")
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?enablejsapi=1&rel=0", info.EmbedURL)
}

func TestProcessVideoURL_UnknownHostFallsBackToYouTube(t *testing.T) {
	raw := "https://cdn.example.com/aulas/introducao.mp4"
	info := ProcessVideoURL(raw, "", "")

	assert.Equal(t, SourceYouTube, info.Source)
	assert.Nil(t, info.ID)
	assert.Equal(t, raw, info.EmbedURL)
	assert.Equal(t, raw, info.OriginalURL)
}

func TestProcessVideoURL_DeclaredSourceWins(t *testing.T) {
	raw := "https://storage.example.com/uploads/aula-01.mp4"
	info := ProcessVideoURL(raw, SourceUpload, "00:10")

	assert.Equal(t, SourceUpload, info.Source)
	assert.Nil(t, info.ID)
	assert.Equal(t, raw, info.EmbedURL)
}

func TestProcessVideoURL_InvalidDeclaredSourceIsDetected(t *testing.T) {
	info := ProcessVideoURL("https://vimeo.com/76979871", Source("dailymotion"), "")
	assert.Equal(t, SourceVimeo, info.Source)
}

func TestProcessVideoURL_Idempotent(t *testing.T) {
	inputs := []string{
		"https://youtu.be/dQw4w9WgXcQ",
		"https://vimeo.com/76979871",
		"https://drive.google.com/file/d/1AbC_d-9/view",
		"https://1drv.ms/v/s!AbCd",
		"garbage",
	}
	for _, in := range inputs {
		a := ProcessVideoURL(in, "", "02:00")
		b := ProcessVideoURL(in, "", "02:00")
		assert.Equal(t, a, b, in)
	}
}

func TestVideoInfo_JSONShape(t *testing.T) {
	b, err := json.Marshal(ProcessVideoURL("https://youtu.be/dQw4w9WgXcQ", "", ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"source": "youtube",
		"id": "dQw4w9WgXcQ",
		"embedUrl": "https://www.youtube.com/embed/dQw4w9WgXcQ?enablejsapi=1&rel=0",
		"originalUrl": "https://youtu.be/dQw4w9WgXcQ"
	}`, string(b))

	b, err = json.Marshal(ProcessVideoURL("https://example.com/x", "", ""))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"id":null`)
}

func TestBuildEmbedURL_GoogleDrive(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			"file link",
			"https://drive.google.com/file/d/1AbC_d-9/view?usp=sharing",
			"https://drive.google.com/file/d/1AbC_d-9/preview",
		},
		{
			"docs edit",
			"https://docs.google.com/presentation/d/XYZ/edit?usp=sharing",
			"https://docs.google.com/presentation/d/XYZ/preview",
		},
		{
			"docs without edit",
			"https://docs.google.com/document/d/XYZ/view",
			"https://docs.google.com/document/d/XYZ/view",
		},
		{
			"folder link",
			"https://drive.google.com/drive/folders/abc",
			"https://drive.google.com/drive/folders/abc",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildEmbedURL(SourceGoogleDrive, tc.url, "", ""))
		})
	}
}

func TestBuildEmbedURL_GoogleDriveParseFailureLogsAndKeepsURL(t *testing.T) {
	log := &recordingLogger{}
	n := New(log)
	raw := "https://drive.google.com/file/d/abc%zz/view"

	assert.Equal(t, raw, n.BuildEmbedURL(SourceGoogleDrive, raw, "", ""))
	assert.Len(t, log.lines, 1)
}

func TestBuildEmbedURL_OneDrive(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			"already embed",
			"https://onedrive.live.com/embed?cid=1&resid=ABC!1",
			"https://onedrive.live.com/embed?cid=1&resid=ABC!1",
		},
		{
			"resid param",
			"https://onedrive.live.com/?cid=111&resid=ABC!123&authkey=k",
			"https://onedrive.live.com/embed?cid=ABC!123&resid=ABC!123",
		},
		{
			"short link",
			"https://1drv.ms/AbCd?e=x",
			"https://onedrive.live.com/embed?cid=AbCd&resid=AbCd",
		},
		{
			"office viewer",
			"https://view.officeapps.live.com/op/view.aspx?src=x",
			"https://view.officeapps.live.com/op/view.aspx?src=x",
		},
		{
			"best effort",
			"https://onedrive.live.com/redir?page=view",
			"https://onedrive.live.com/redir&page=view",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildEmbedURL(SourceOneDrive, tc.url, "", ""))
		})
	}
}

func TestBuildEmbedURL_MissingIDKeepsOriginal(t *testing.T) {
	raw := "https://www.youtube.com/watch?v=short"
	assert.Equal(t, raw, BuildEmbedURL(SourceYouTube, raw, "", "01:00"))
	assert.Equal(t, raw, BuildEmbedURL(SourceVimeo, raw, "", ""))
}

func TestBuildEmbedURL_UnknownSourceLogs(t *testing.T) {
	log := &recordingLogger{}
	raw := "https://example.com/v"
	assert.Equal(t, raw, New(log).BuildEmbedURL(Source("rumble"), raw, "x", ""))
	assert.Len(t, log.lines, 1)
}
