// file: internals/features/disciplines/videourl/source.go
package videourl

import "strings"

// Source is the video provider a discipline video is served from.
type Source string

const (
	SourceYouTube     Source = "youtube"
	SourceVimeo       Source = "vimeo"
	SourceOneDrive    Source = "onedrive"
	SourceGoogleDrive Source = "google_drive"
	SourceUpload      Source = "upload"
)

// Sources lists every provider, in the order the admin form shows them.
var Sources = []Source{
	SourceYouTube,
	SourceVimeo,
	SourceOneDrive,
	SourceGoogleDrive,
	SourceUpload,
}

func (s Source) String() string { return string(s) }

func (s Source) Valid() bool {
	switch s {
	case SourceYouTube, SourceVimeo, SourceOneDrive, SourceGoogleDrive, SourceUpload:
		return true
	}
	return false
}

// ParseSource accepts a declared source as sent by the forms ("YouTube ", "google_drive").
func ParseSource(raw string) (Source, bool) {
	s := Source(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", false
	}
	return s, true
}

// DetectSource infers the provider from the URL text. Unknown hosts fall back to YouTube.
func DetectSource(rawURL string) Source {
	switch {
	case strings.Contains(rawURL, "youtube.com"), strings.Contains(rawURL, "youtu.be"):
		return SourceYouTube
	case strings.Contains(rawURL, "vimeo.com"), strings.Contains(rawURL, "player.vimeo.com"):
		return SourceVimeo
	case strings.Contains(rawURL, "drive.google.com"), strings.Contains(rawURL, "docs.google.com"):
		return SourceGoogleDrive
	case strings.Contains(rawURL, "onedrive.live.com"), strings.Contains(rawURL, "1drv.ms"):
		return SourceOneDrive
	default:
		return SourceYouTube
	}
}
