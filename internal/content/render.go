package content

import "news-portal/internal/domain"

// Widths of rendered media, relative to the container.
const (
	WidthFull          = "100%"
	WidthImageInset    = "70%"
	WidthVideoCentered = "80%"
)

// Positions of constrained media.
const (
	PositionLeft   = "left"
	PositionCenter = "center"
	PositionRight  = "right"
)

// RenderedBlock is a display-ready block, independent of any UI toolkit.
type RenderedBlock struct {
	Key      string   `json:"key"`
	Kind     ItemKind `json:"kind"`
	Text     string   `json:"text,omitempty"`
	URL      string   `json:"url,omitempty"`
	Alt      string   `json:"alt,omitempty"`
	Caption  string   `json:"caption,omitempty"`
	Width    string   `json:"width,omitempty"`
	Position string   `json:"position,omitempty"`
}

// Render applies the presentation rules to a parsed body.
// Media without a URL and items of unknown kind are dropped.
func Render(body Body) []RenderedBlock {
	items := body.Items()
	out := make([]RenderedBlock, 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case ItemText:
			out = append(out, RenderedBlock{Key: item.Key, Kind: ItemText, Text: item.Text})
		case ItemImage:
			if item.URL == "" {
				continue
			}
			rb := RenderedBlock{
				Key:     item.Key,
				Kind:    ItemImage,
				URL:     item.URL,
				Alt:     item.Alt,
				Caption: item.Caption,
			}
			rb.Width, rb.Position = imageLayout(item.Alignment)
			out = append(out, rb)
		case ItemVideo:
			if item.URL == "" {
				continue
			}
			rb := RenderedBlock{
				Key:     item.Key,
				Kind:    ItemVideo,
				URL:     EmbedURL(item.URL),
				Caption: item.Caption,
				Width:   WidthFull,
			}
			if item.Alignment == domain.AlignmentCenter {
				rb.Width = WidthVideoCentered
				rb.Position = PositionCenter
			}
			out = append(out, rb)
		case ItemBreak:
			out = append(out, RenderedBlock{Key: item.Key, Kind: ItemBreak})
		case ItemPlaceholder:
			out = append(out, RenderedBlock{Key: item.Key, Kind: ItemPlaceholder, Text: item.Text})
		}
	}
	return out
}

// RenderString parses and renders a stored body.
func RenderString(raw string) []RenderedBlock {
	return Render(Parse(raw))
}

func imageLayout(a domain.Alignment) (width, position string) {
	switch a {
	case domain.AlignmentFull:
		return WidthFull, ""
	case domain.AlignmentLeft:
		return WidthImageInset, PositionLeft
	case domain.AlignmentRight:
		return WidthImageInset, PositionRight
	default:
		return WidthImageInset, PositionCenter
	}
}
