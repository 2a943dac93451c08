package text

import (
	"context"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestIsEmoji(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{name: "emoticons_low", r: 0x1F600, want: true},
		{name: "emoticons_high", r: 0x1F64F, want: true},
		{name: "pictographs_low", r: 0x1F300, want: true},
		{name: "pictographs_high", r: 0x1F5FF, want: true},
		{name: "transport_low", r: 0x1F680, want: true},
		{name: "transport_high", r: 0x1F6FF, want: true},
		{name: "regional_low", r: 0x1F1E0, want: true},
		{name: "regional_high", r: 0x1F1FF, want: true},
		{name: "gap_between_emoticons_and_transport", r: 0x1F650, want: false},
		{name: "below_regional", r: 0x1F1DF, want: false},
		{name: "above_transport", r: 0x1F700, want: false},
		{name: "skin_tone_modifier_is_inside_pictographs", r: 0x1F3FB, want: true},
		{name: "zero_width_joiner", r: 0x200D, want: false},
		{name: "variation_selector", r: 0xFE0F, want: false},
		{name: "heart_suit", r: 0x2665, want: false},
		{name: "check_mark", r: 0x2705, want: false},
		{name: "supplemental_symbols", r: 0x1F914, want: false},
		{name: "ascii", r: 'a', want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmoji(tt.r))
		})
	}
}

func TestFindEmoji(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "no_emoji",
			content: "def main():\n    print('hello')\n",
			want:    nil,
		},
		{
			name:    "duplicates_kept",
			content: "🎉🎉🚀",
			want:    []string{"🎉", "🎉", "🚀"},
		},
		{
			name:    "scan_order",
			content: "x = '🚀' # 😀 and \U0001F1E9\U0001F1EA",
			want:    []string{"🚀", "😀", "\U0001F1E9", "\U0001F1EA"},
		},
		{
			name:    "out_of_range_symbols_ignored",
			content: "✅ ❤ 🤔 ™",
			want:    nil,
		},
		{
			name:    "empty",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindEmoji(tt.content))
		})
	}
}

func TestStripEmoji(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "interleaved",
			content: "a😀b😀c",
			want:    "abc",
		},
		{
			name:    "boring_text_untouched",
			content: "plain ascii\r\nwith crlf\tand tabs",
			want:    "plain ascii\r\nwith crlf\tand tabs",
		},
		{
			name:    "non_emoji_multibyte_kept",
			content: "héllo 世界 🎉 ✅",
			want:    "héllo 世界  ✅",
		},
		{
			name:    "zwj_sequence_leaves_joiner",
			content: "\U0001F468\u200d\U0001F4BB",
			want:    "\u200d",
		},
		{
			name:    "flag_pair_removed",
			content: "[🇺🇸]",
			want:    "[]",
		},
		{
			name:    "only_emoji",
			content: "🎉🎉🚀",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripEmoji(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, FindEmoji(got), "stripping should leave no matches")
		})
	}
}

func TestDistinct(t *testing.T) {
	matches := FindEmoji("🎉🎉🚀")
	require.Len(t, matches, 3)
	assert.Equal(t, "🎉🚀", Distinct(matches))
	assert.Equal(t, 2, len([]rune(Distinct(matches))))
	assert.Empty(t, Distinct(nil))
}

func TestEmojiStripper_StripText(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		want         string
		wantMatches  int
		wantModified bool
		wantError    error
	}{
		{
			name:         "removes_emoji",
			content:      "print('done 🚀')\n",
			want:         "print('done ')\n",
			wantMatches:  1,
			wantModified: true,
		},
		{
			name:         "no_emoji",
			content:      "print('done')\n",
			want:         "print('done')\n",
			wantMatches:  0,
			wantModified: false,
		},
		{
			name:         "empty_content",
			content:      "",
			want:         "",
			wantMatches:  0,
			wantModified: false,
		},
		{
			name:      "invalid_utf8",
			content:   "abc\xff\xfe",
			wantError: ErrInvalidUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stripper := NewEmojiStripper()
			result, err := stripper.StripText(context.Background(), strings.NewReader(tt.content))

			if tt.wantError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantError), "error should wrap %v", tt.wantError)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Len(t, result.Matches, tt.wantMatches)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestDelta(t *testing.T) {
	original := "a😀b😀c"
	modified := StripEmoji(original)

	delta := Delta(original, modified)
	require.NotEmpty(t, delta)

	dmp := diffmatchpatch.New()
	diffs, err := dmp.DiffFromDelta(original, delta)
	require.NoError(t, err)
	assert.Equal(t, modified, dmp.DiffText2(diffs))

	assert.Empty(t, Delta("same", "same"))
}
