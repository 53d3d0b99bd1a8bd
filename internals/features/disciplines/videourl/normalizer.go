// file: internals/features/disciplines/videourl/normalizer.go
package videourl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// VideoInfo is what the portals need to render a discipline video.
// Field names are part of the public JSON contract.
type VideoInfo struct {
	Source      Source  `json:"source"`
	ID          *string `json:"id"`
	EmbedURL    string  `json:"embedUrl"`
	OriginalURL string  `json:"originalUrl"`
}

// Logger is satisfied by *logrus.Logger and *logrus.Entry.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Normalizer turns raw video URLs into embeddable references.
// The zero value is ready to use and logs nothing.
type Normalizer struct {
	Log Logger
}

func New(log Logger) *Normalizer { return &Normalizer{Log: log} }

var silent = &Normalizer{}

// ProcessVideoURL normalizes with a silent normalizer.
func ProcessVideoURL(rawURL string, declared Source, startTime string) VideoInfo {
	return silent.Process(rawURL, declared, startTime)
}

// BuildEmbedURL builds the player URL with a silent normalizer.
func BuildEmbedURL(src Source, rawURL, id, startTime string) string {
	return silent.BuildEmbedURL(src, rawURL, id, startTime)
}

// Process resolves the source (declared or detected), extracts the provider
// id and builds the embed URL. An empty or unknown declared source is detected
// from the URL. It never fails: unknown ids yield ID == nil and EmbedURL == rawURL.
func (n *Normalizer) Process(rawURL string, declared Source, startTime string) VideoInfo {
	src := declared
	if !src.Valid() {
		src = DetectSource(rawURL)
	}

	var (
		id string
		ok bool
	)
	switch src {
	case SourceYouTube:
		id, ok = ExtractYouTubeID(rawURL)
	case SourceVimeo:
		id, ok = ExtractVimeoID(rawURL)
	case SourceGoogleDrive, SourceOneDrive, SourceUpload:
		// embed URL is derived from the URL itself
	}

	info := VideoInfo{
		Source:      src,
		OriginalURL: rawURL,
	}
	if ok {
		info.ID = &id
	}
	info.EmbedURL = n.BuildEmbedURL(src, rawURL, id, startTime)
	return info
}

var (
	reDriveFileID   = regexp.MustCompile(`/file/d/([A-Za-z0-9_-]+)`)
	reDocsEdit      = regexp.MustCompile(`/edit(?:[?#].*)?$`)
	reOneDriveShare = regexp.MustCompile(`(?:resid=|1drv\.ms/)([^&?#]+)`)
)

// BuildEmbedURL returns a URL safe to put in a player frame. id is only used
// by YouTube and Vimeo; when it is empty the original URL is returned.
func (n *Normalizer) BuildEmbedURL(src Source, rawURL, id, startTime string) string {
	switch src {
	case SourceYouTube:
		if id == "" {
			return rawURL
		}
		embed := "https://www.youtube.com/embed/" + id + "?enablejsapi=1&rel=0"
		if secs, ok := TimeToSeconds(startTime); ok {
			embed += fmt.Sprintf("&start=%d", secs)
		}
		return embed

	case SourceVimeo:
		if id == "" {
			return rawURL
		}
		return "https://player.vimeo.com/video/" + id

	case SourceGoogleDrive:
		return n.googleDriveEmbed(rawURL)

	case SourceOneDrive:
		return oneDriveEmbed(rawURL)

	case SourceUpload:
		return rawURL
	}

	n.warnf("unknown video source %q, using original url", src)
	return rawURL
}

func (n *Normalizer) googleDriveEmbed(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		n.warnf("google drive url not parseable, using original: %v", err)
		return rawURL
	}
	if m := reDriveFileID.FindStringSubmatch(u.Path); len(m) == 2 {
		return "https://drive.google.com/file/d/" + m[1] + "/preview"
	}
	if strings.Contains(rawURL, "docs.google.com") {
		return reDocsEdit.ReplaceAllString(rawURL, "/preview")
	}
	return rawURL
}

func oneDriveEmbed(rawURL string) string {
	if strings.Contains(rawURL, "embed") {
		return rawURL
	}
	if m := reOneDriveShare.FindStringSubmatch(rawURL); len(m) == 2 {
		return "https://onedrive.live.com/embed?cid=" + m[1] + "&resid=" + m[1]
	}
	if strings.Contains(rawURL, "view.officeapps.live.com") {
		return rawURL
	}
	out := strings.Replace(rawURL, "?", "&", 1)
	return strings.Replace(out, "1drv.ms/", "onedrive.live.com/embed?", 1)
}

func (n *Normalizer) warnf(format string, args ...interface{}) {
	if n == nil || n.Log == nil {
		return
	}
	n.Log.Warnf(format, args...)
}
