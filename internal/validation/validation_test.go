package validation

import (
	"strings"
	"testing"

	"github.com/podwatch/watchlist-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{name: "spotify show", url: "https://open.spotify.com/show/abc123"},
		{name: "apple podcasts", url: "https://podcasts.apple.com/us/podcast/x"},
		{name: "soundcloud", url: "https://soundcloud.com/some-show"},
		{name: "youtube", url: "https://youtube.com/watch?v=abc"},
		{name: "youtube with www", url: "https://www.youtube.com/watch?v=abc"},
		{name: "youtu.be short link", url: "https://youtu.be/abc"},
		{name: "anchor", url: "http://anchor.fm/my-show"},
		{name: "subdomain of allowed domain", url: "https://music.youtube.com/playlist"},
		{name: "empty", url: "", wantErr: "URL is required"},
		{name: "not a url", url: "not-a-url", wantErr: MsgInvalidURL},
		{name: "unsupported platform", url: "https://example.com/feed", wantErr: "Unsupported podcast platform"},
		{name: "allowed domain as suffix trick", url: "https://evilyoutube.com/x", wantErr: "Unsupported podcast platform"},
		{name: "ftp scheme", url: "ftp://open.spotify.com/show/x", wantErr: MsgInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := URL(tt.url)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, errors.Is(err, errors.ErrCodeValidation))
			}
		})
	}
}

func TestTitleAndHost(t *testing.T) {
	assert.NoError(t, Title("Science Friday"))
	assert.Error(t, Title(""))
	assert.Error(t, Title("   "))
	assert.Error(t, Title(strings.Repeat("a", 101)))
	assert.NoError(t, Title(strings.Repeat("a", 100)))

	assert.NoError(t, Host("Ira Flatow"))
	assert.Error(t, Host(""))
	assert.Error(t, Host(strings.Repeat("h", 51)))
	assert.NoError(t, Host(strings.Repeat("h", 50)))
}

func TestCategory(t *testing.T) {
	for _, c := range Categories {
		assert.NoError(t, Category(c), "category %q should be valid", c)
	}
	assert.Len(t, Categories, 17)

	assert.Error(t, Category(""))
	assert.Error(t, Category("Crime"))
	assert.Error(t, Category("science"), "category matching is case-sensitive")
}

func TestRating(t *testing.T) {
	assert.NoError(t, Rating(0))
	assert.NoError(t, Rating(5))
	assert.NoError(t, Rating(3.7))
	assert.Error(t, Rating(-0.1))
	assert.Error(t, Rating(5.1))
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 4.6, RoundRating(4.55))
	assert.Equal(t, 4.5, RoundRating(4.54))
	assert.Equal(t, 0.0, RoundRating(0.04))
	assert.Equal(t, 5.0, RoundRating(4.99))
}

func TestDescription(t *testing.T) {
	assert.NoError(t, Description(""))
	assert.NoError(t, Description(strings.Repeat("d", 500)))
	assert.Error(t, Description(strings.Repeat("d", 501)))
}

func TestPIN(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		wantErr string
	}{
		{name: "valid", pin: "4821"},
		{name: "valid with leading zero", pin: "0042"},
		{name: "missing", pin: "", wantErr: MsgPINRequired},
		{name: "too short", pin: "482", wantErr: MsgPINLength},
		{name: "too long", pin: "48213", wantErr: MsgPINLength},
		{name: "non numeric", pin: "48a1", wantErr: MsgPINNumeric},
		{name: "length checked before digits", pin: "abc", wantErr: MsgPINLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PIN(tt.pin)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
