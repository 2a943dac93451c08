package text

import (
	"context"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// emojiTable holds the four code point blocks treated as emoji.
// The set is closed on purpose: modifiers, ZWJ sequences and anything
// outside these blocks pass through untouched.
var emojiTable = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x1F1E0, Hi: 0x1F1FF, Stride: 1}, // regional indicators
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // misc symbols and pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map
	},
}

// IsEmoji reports whether r falls in one of the emoji blocks.
func IsEmoji(r rune) bool {
	return unicode.Is(emojiTable, r)
}

// FindEmoji returns every emoji code point in s in scan order, duplicates included.
func FindEmoji(s string) []string {
	var found []string
	for _, r := range s {
		if IsEmoji(r) {
			found = append(found, string(r))
		}
	}
	return found
}

// StripEmoji returns s with every emoji code point removed. All other
// bytes are kept as they are.
func StripEmoji(s string) string {
	if strings.IndexFunc(s, IsEmoji) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !IsEmoji(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Distinct concatenates the distinct matches in first-occurrence order.
func Distinct(matches []string) string {
	seen := make(map[string]struct{}, len(matches))
	var b strings.Builder
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		b.WriteString(m)
	}
	return b.String()
}

// StripResult contains the outcome of stripping emoji from some content
type StripResult struct {
	// OriginalContent is the content as read
	OriginalContent []byte

	// ModifiedContent is the content with emoji removed
	ModifiedContent []byte

	// Matches lists every removed code point in scan order
	Matches []string

	// WasModified indicates if anything was removed
	WasModified bool
}

// EmojiStripper strips emoji from UTF-8 content
type EmojiStripper struct{}

// NewEmojiStripper creates a new EmojiStripper
func NewEmojiStripper() *EmojiStripper {
	return &EmojiStripper{}
}

// StripText reads all of content and removes emoji from it. Content that is
// not valid UTF-8 is rejected.
func (s *EmojiStripper) StripText(ctx context.Context, content io.Reader) (*StripResult, error) {
	original, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	if !utf8.Valid(original) {
		return nil, errors.Errorf("decoding content: %w", ErrInvalidUTF8)
	}

	result := &StripResult{
		OriginalContent: original,
		ModifiedContent: original,
	}

	str := string(original)
	result.Matches = FindEmoji(str)
	if len(result.Matches) == 0 {
		return result, nil
	}

	result.ModifiedContent = []byte(StripEmoji(str))
	result.WasModified = true
	return result, nil
}

// ErrInvalidUTF8 is returned when content can't be decoded as UTF-8.
var ErrInvalidUTF8 = errors.Base("invalid utf-8")
