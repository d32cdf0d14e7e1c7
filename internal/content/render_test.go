package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-portal/internal/content"
	"news-portal/internal/domain"
)

func TestRender_ImageLayout(t *testing.T) {
	tests := []struct {
		alignment    domain.Alignment
		wantWidth    string
		wantPosition string
	}{
		{domain.AlignmentFull, content.WidthFull, ""},
		{domain.AlignmentLeft, content.WidthImageInset, content.PositionLeft},
		{domain.AlignmentRight, content.WidthImageInset, content.PositionRight},
		{domain.AlignmentCenter, content.WidthImageInset, content.PositionCenter},
		{"", content.WidthImageInset, content.PositionCenter},
	}

	for _, tt := range tests {
		t.Run(string(tt.alignment), func(t *testing.T) {
			body := content.StructuredBody{Blocks: []domain.Block{
				{ID: "img", Type: domain.BlockTypeImage, Content: "http://x/a.png", Caption: "Caption", Alignment: tt.alignment},
			}}

			out := content.Render(body)

			require.Len(t, out, 1)
			assert.Equal(t, content.ItemImage, out[0].Kind)
			assert.Equal(t, tt.wantWidth, out[0].Width)
			assert.Equal(t, tt.wantPosition, out[0].Position)
			assert.Equal(t, "Caption", out[0].Caption)
			assert.Equal(t, "Caption", out[0].Alt)
		})
	}
}

func TestRender_Video(t *testing.T) {
	body := content.StructuredBody{Blocks: []domain.Block{
		{ID: "v1", Type: domain.BlockTypeVideo, Content: "https://www.youtube.com/watch?v=ABC123"},
		{ID: "v2", Type: domain.BlockTypeVideo, Content: "https://vimeo.com/555111", Alignment: domain.AlignmentCenter, Caption: "Clip"},
		{ID: "v3", Type: domain.BlockTypeVideo, Content: "https://cdn.example.com/a.mp4", Alignment: domain.AlignmentLeft},
	}}

	out := content.Render(body)

	require.Len(t, out, 3)
	assert.Equal(t, "https://www.youtube.com/embed/ABC123", out[0].URL)
	assert.Equal(t, content.WidthFull, out[0].Width)

	assert.Equal(t, "https://player.vimeo.com/video/555111", out[1].URL)
	assert.Equal(t, content.WidthVideoCentered, out[1].Width)
	assert.Equal(t, content.PositionCenter, out[1].Position)
	assert.Equal(t, "Clip", out[1].Caption)

	assert.Equal(t, "https://cdn.example.com/a.mp4", out[2].URL)
	assert.Equal(t, content.WidthFull, out[2].Width)
}

func TestRender_TextVerbatim(t *testing.T) {
	out := content.RenderString(`[{"id":"t","type":"text","content":"**not bold**\nnext line"}]`)

	require.Len(t, out, 1)
	assert.Equal(t, "**not bold**\nnext line", out[0].Text)
}

func TestRender_SkipsEmptyMediaAndUnknownTypes(t *testing.T) {
	out := content.RenderString(`[{"type":"image","content":""},{"type":"video"},{"type":"audio","content":"x"},{"type":"text","content":"kept"}]`)

	require.Len(t, out, 1)
	assert.Equal(t, "kept", out[0].Text)
}

func TestRender_Legacy(t *testing.T) {
	out := content.RenderString("hello\n\n![cat](http://x/cat.png)")

	require.Len(t, out, 3)
	assert.Equal(t, content.ItemText, out[0].Kind)
	assert.Equal(t, content.ItemBreak, out[1].Kind)
	assert.Equal(t, content.ItemImage, out[2].Kind)
	assert.Equal(t, "cat", out[2].Alt)
	assert.Equal(t, content.WidthImageInset, out[2].Width)
}

func TestRender_Placeholder(t *testing.T) {
	out := content.RenderString("")

	require.Len(t, out, 1)
	assert.Equal(t, content.ItemPlaceholder, out[0].Kind)
	assert.Equal(t, content.PlaceholderText, out[0].Text)
}
