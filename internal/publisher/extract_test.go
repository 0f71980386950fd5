package publisher

import (
	"strings"
	"testing"

	"github.com/lepinkainen/gamecrawl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPublisher_Fixture(t *testing.T) {
	page := testutil.ReadGolden(t, "search_publisher.html")

	got, err := ExtractPublisher(strings.NewReader(string(page)))
	require.NoError(t, err)
	assert.Equal(t, "Supergiant Games", got)
}

func TestExtractPublisher_Missing(t *testing.T) {
	page := testutil.ReadGolden(t, "search_no_publisher.html")

	got, err := ExtractPublisher(strings.NewReader(string(page)))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractPublisher_Cases(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "empty document",
			html: "",
			want: "",
		},
		{
			name: "label without value chain",
			html: `<div class="BNeawe s3v9rd AP7Wnd">Publisher: Nintendo</div>`,
			want: "",
		},
		{
			name: "classes in any order",
			html: `<div class="AP7Wnd BNeawe s3v9rd">Publisher:
				<span class="AP7Wnd tAd8D BNeawe"><a><span class="AP7Wnd XLloXe">Nintendo</span></a></span></div>`,
			want: "Nintendo",
		},
		{
			name: "missing anchor breaks the chain",
			html: `<div class="BNeawe s3v9rd AP7Wnd">Publisher:
				<span class="BNeawe tAd8D AP7Wnd"><span class="XLloXe AP7Wnd">Nintendo</span></span></div>`,
			want: "",
		},
		{
			name: "multiple values are concatenated",
			html: `<div class="BNeawe s3v9rd AP7Wnd">Publisher:
				<span class="BNeawe tAd8D AP7Wnd"><a><span class="XLloXe AP7Wnd">Sony</span></a>, <a><span class="XLloXe AP7Wnd">Bandai</span></a></span></div>`,
			want: "SonyBandai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPublisher(strings.NewReader(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
