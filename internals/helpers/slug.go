package helper

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify turns free text into [a-z0-9-], dropping diacritics
// ("Introdução à Física" -> "introducao-a-fisica"). maxLen <= 0 uses DefaultSlugMaxLen.
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	s = reNonAlnum.ReplaceAllString(b.String(), "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > maxLen {
		s = strings.Trim(string([]rune(s)[:maxLen]), "-")
	}
	return s
}

// SlugOptions describes where uniqueness is checked.
type SlugOptions struct {
	Table            string
	SlugColumn       string
	SoftDeleteColumn string // empty when the table has no soft delete
	MaxLen           int
	DefaultBase      string // used when base slugifies to ""
}

// GenerateUniqueSlug slugifies base and appends -2, -3, ... until no live row uses it.
func GenerateUniqueSlug(ctx context.Context, db *gorm.DB, opts SlugOptions, base string) (string, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return "", errors.New("slug options: table/slug column required")
	}
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	slug := Slugify(base, maxLen)
	if slug == "" {
		slug = Slugify(opts.DefaultBase, maxLen)
	}
	if slug == "" {
		slug = "item"
	}

	for i := 1; i < 1000; i++ {
		candidate := slug
		if i > 1 {
			suf := fmt.Sprintf("-%d", i)
			if len(candidate)+len(suf) > maxLen {
				candidate = strings.Trim(candidate[:maxLen-len(suf)], "-")
			}
			candidate += suf
		}

		taken, err := slugTaken(ctx, db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("failed to generate unique slug")
}

func slugTaken(ctx context.Context, db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	q := db.WithContext(ctx).
		Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate)
	if opts.SoftDeleteColumn != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", opts.SoftDeleteColumn))
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
