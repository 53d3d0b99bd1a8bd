// file: internals/features/disciplines/videourl/extract.go
package videourl

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const youTubeIDLen = 11

// extractor is one strategy of a best-effort chain; the first success wins.
type extractor func(rawURL string) (string, bool)

func firstMatch(rawURL string, chain ...extractor) (string, bool) {
	for _, try := range chain {
		if id, ok := try(rawURL); ok {
			return id, true
		}
	}
	return "", false
}

/* =========================================================
   YouTube
========================================================= */

var reYouTubeFallback = regexp.MustCompile(
	`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`,
)

// ExtractYouTubeID tries, in order: youtu.be short link, /embed/ path, the v
// query parameter, then a catch-all pattern. Only 11-character ids count.
func ExtractYouTubeID(rawURL string) (string, bool) {
	return firstMatch(rawURL,
		youTubeShortLink,
		youTubeEmbedPath,
		youTubeQueryParam,
		youTubePattern,
	)
}

func youTubeShortLink(rawURL string) (string, bool) {
	return youTubeSegmentAfter(rawURL, "youtu.be/")
}

func youTubeEmbedPath(rawURL string) (string, bool) {
	return youTubeSegmentAfter(rawURL, "/embed/")
}

func youTubeSegmentAfter(rawURL, marker string) (string, bool) {
	seg, ok := segmentAfter(rawURL, marker, "?&")
	if !ok {
		return "", false
	}
	return validYouTubeID(seg)
}

func youTubeQueryParam(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	return validYouTubeID(u.Query().Get("v"))
}

func youTubePattern(rawURL string) (string, bool) {
	m := reYouTubeFallback.FindStringSubmatch(rawURL)
	if len(m) < 2 {
		return "", false
	}
	return validYouTubeID(m[1])
}

func validYouTubeID(id string) (string, bool) {
	if len(id) != youTubeIDLen {
		return "", false
	}
	return id, true
}

/* =========================================================
   Vimeo
========================================================= */

var (
	reVimeoCombined = regexp.MustCompile(`(?:player\.vimeo\.com/video/|vimeo\.com/(?:[^?#]*/)?)(\d+)`)
	reDigitRun      = regexp.MustCompile(`\d+`)
)

const (
	vimeoHeuristicMinDigits = 6
	vimeoHeuristicMaxDigits = 10
)

// ExtractVimeoID returns the numeric vimeo id, falling back to the first
// run of 6 to 10 digits anywhere in the URL.
func ExtractVimeoID(rawURL string) (string, bool) {
	return firstMatch(rawURL,
		vimeoPlainPath,
		vimeoVideoPath,
		vimeoPattern,
		vimeoDigitRun,
	)
}

func vimeoPlainPath(rawURL string) (string, bool) {
	if strings.Contains(rawURL, "/video/") {
		return "", false
	}
	seg, ok := segmentAfter(rawURL, "vimeo.com/", "?/#&")
	if !ok {
		return "", false
	}
	return numeric(seg)
}

func vimeoVideoPath(rawURL string) (string, bool) {
	seg, ok := segmentAfter(rawURL, "/video/", "?/#&")
	if !ok {
		return "", false
	}
	return numeric(seg)
}

func vimeoPattern(rawURL string) (string, bool) {
	m := reVimeoCombined.FindStringSubmatch(rawURL)
	if len(m) < 2 {
		return "", false
	}
	return numeric(m[1])
}

func vimeoDigitRun(rawURL string) (string, bool) {
	for _, run := range reDigitRun.FindAllString(rawURL, -1) {
		if len(run) >= vimeoHeuristicMinDigits && len(run) <= vimeoHeuristicMaxDigits {
			return run, true
		}
	}
	return "", false
}

/* =========================================================
   Small helpers
========================================================= */

// segmentAfter returns the text following marker, cut at the first of stops.
func segmentAfter(s, marker, stops string) (string, bool) {
	i := strings.Index(s, marker)
	if i < 0 {
		return "", false
	}
	seg := s[i+len(marker):]
	if j := strings.IndexAny(seg, stops); j >= 0 {
		seg = seg[:j]
	}
	if seg == "" {
		return "", false
	}
	return seg, true
}

func numeric(s string) (string, bool) {
	if !allDigits(s) {
		return "", false
	}
	return s, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// TimeToSeconds converts "mm:ss" into seconds. ok is false for blank or
// malformed input and for values that do not fit in an int.
func TimeToSeconds(t string) (seconds int, ok bool) {
	t = strings.TrimSpace(t)
	if t == "" {
		return 0, false
	}
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, false
	}
	m, ok := parseDigits(parts[0])
	if !ok {
		return 0, false
	}
	s, ok := parseDigits(parts[1])
	if !ok {
		return 0, false
	}
	if m > (math.MaxInt-s)/60 {
		return 0, false
	}
	return m*60 + s, true
}

func parseDigits(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if !allDigits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
