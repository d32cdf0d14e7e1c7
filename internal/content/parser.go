// Package content implements the article body format: a JSON list of typed
// content blocks, with a plain-text fallback in which markdown image lines
// become images.
package content

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"news-portal/internal/domain"
	"news-portal/internal/metrics"
)

// DefaultImageAlt is used when an image has no alt text or caption.
const DefaultImageAlt = "Article image"

// PlaceholderText is shown for a body with no content.
const PlaceholderText = "No content"

var markdownImage = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

// Mode is the discriminant of a parsed Body.
type Mode string

const (
	ModeStructured Mode = "structured"
	ModeLegacy     Mode = "legacy"
	ModeEmpty      Mode = "empty"
)

// ItemKind identifies a renderable item.
type ItemKind string

const (
	ItemText        ItemKind = "text"
	ItemImage       ItemKind = "image"
	ItemVideo       ItemKind = "video"
	ItemBreak       ItemKind = "break"
	ItemPlaceholder ItemKind = "placeholder"
)

// Item is one renderable unit of a parsed body.
type Item struct {
	Key       string
	Kind      ItemKind
	Text      string
	URL       string
	Alt       string
	Caption   string
	Alignment domain.Alignment
}

// Body is the result of parsing a stored article body.
// It is one of StructuredBody, LegacyBody or EmptyBody.
type Body interface {
	Mode() Mode
	Items() []Item
}

// StructuredBody is a body that decoded as a non-empty JSON array of blocks.
type StructuredBody struct {
	Blocks []domain.Block
}

// Mode implements Body.
func (b StructuredBody) Mode() Mode { return ModeStructured }

// Items implements Body. Blocks of unknown type are kept; the renderer skips them.
func (b StructuredBody) Items() []Item {
	items := make([]Item, 0, len(b.Blocks))
	for i, block := range b.Blocks {
		key := block.ID
		if key == "" {
			key = "block-" + strconv.Itoa(i)
		}
		item := Item{
			Key:       key,
			Kind:      ItemKind(block.Type),
			Caption:   block.Caption,
			Alignment: block.Alignment,
		}
		switch block.Type {
		case domain.BlockTypeText:
			item.Text = block.Content
		case domain.BlockTypeImage:
			item.URL = block.Content
			item.Alt = block.Caption
			if item.Alt == "" {
				item.Alt = DefaultImageAlt
			}
		default:
			item.URL = block.Content
		}
		items = append(items, item)
	}
	return items
}

// LegacyLineKind identifies a line of a legacy body.
type LegacyLineKind string

const (
	LegacyText  LegacyLineKind = "text"
	LegacyImage LegacyLineKind = "image"
	LegacyBreak LegacyLineKind = "break"
)

// LegacyLine is one line of a legacy body.
type LegacyLine struct {
	Kind LegacyLineKind
	Text string
	URL  string
	Alt  string
}

// LegacyBody is plain text with markdown image lines.
type LegacyBody struct {
	Lines []LegacyLine
}

// Mode implements Body.
func (b LegacyBody) Mode() Mode { return ModeLegacy }

// Items implements Body.
func (b LegacyBody) Items() []Item {
	items := make([]Item, 0, len(b.Lines))
	for i, line := range b.Lines {
		key := "line-" + strconv.Itoa(i)
		switch line.Kind {
		case LegacyImage:
			items = append(items, Item{Key: key, Kind: ItemImage, URL: line.URL, Alt: line.Alt})
		case LegacyBreak:
			items = append(items, Item{Key: key, Kind: ItemBreak})
		default:
			items = append(items, Item{Key: key, Kind: ItemText, Text: line.Text})
		}
	}
	return items
}

// EmptyBody is a body with nothing to show.
type EmptyBody struct{}

// Mode implements Body.
func (EmptyBody) Mode() Mode { return ModeEmpty }

// Items implements Body. It always yields a single placeholder.
func (EmptyBody) Items() []Item {
	return []Item{{Key: "placeholder", Kind: ItemPlaceholder, Text: PlaceholderText}}
}

// Parse interprets a stored body. It never fails: anything that is not a
// non-empty JSON array of blocks is parsed in legacy line mode.
func Parse(raw string) Body {
	body := parse(raw)
	metrics.ContentParseTotal.WithLabelValues(string(body.Mode())).Inc()
	return body
}

func parse(raw string) Body {
	if strings.TrimSpace(raw) == "" {
		return EmptyBody{}
	}
	if blocks, ok := decodeBlocks(raw); ok {
		return StructuredBody{Blocks: blocks}
	}
	return parseLegacy(raw)
}

func decodeBlocks(raw string) ([]domain.Block, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, false
	}
	if len(elems) == 0 {
		return nil, false
	}
	blocks := make([]domain.Block, len(elems))
	for i, elem := range elems {
		blocks[i] = decodeBlock(elem)
	}
	return blocks, true
}

// decodeBlock reads one array element. Fields of the wrong type are left
// empty and an element that is not an object yields a zero block.
func decodeBlock(elem json.RawMessage) domain.Block {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil {
		return domain.Block{}
	}
	return domain.Block{
		ID:        stringField(fields, "id"),
		Type:      domain.BlockType(stringField(fields, "type")),
		Content:   stringField(fields, "content"),
		Caption:   stringField(fields, "caption"),
		Alignment: domain.Alignment(stringField(fields, "alignment")),
	}
}

func stringField(fields map[string]json.RawMessage, name string) string {
	var s string
	if err := json.Unmarshal(fields[name], &s); err != nil {
		return ""
	}
	return s
}

func parseLegacy(raw string) LegacyBody {
	rawLines := strings.Split(raw, "\n")
	lines := make([]LegacyLine, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimSuffix(line, "\r")
		if m := markdownImage.FindStringSubmatch(line); m != nil {
			alt := m[1]
			if alt == "" {
				alt = DefaultImageAlt
			}
			lines = append(lines, LegacyLine{Kind: LegacyImage, URL: m[2], Alt: alt})
			continue
		}
		if strings.TrimSpace(line) == "" {
			lines = append(lines, LegacyLine{Kind: LegacyBreak})
			continue
		}
		lines = append(lines, LegacyLine{Kind: LegacyText, Text: line})
	}
	return LegacyBody{Lines: lines}
}
