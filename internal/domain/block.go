package domain

// BlockType is the kind of a content block.
type BlockType string

const (
	BlockTypeText  BlockType = "text"
	BlockTypeImage BlockType = "image"
	BlockTypeVideo BlockType = "video"
)

// Alignment controls placement of image and video blocks.
type Alignment string

const (
	AlignmentLeft   Alignment = "left"
	AlignmentCenter Alignment = "center"
	AlignmentRight  Alignment = "right"
	AlignmentFull   Alignment = "full"
)

// Block is one structured unit of article body content.
// ID only keeps list keys stable.
type Block struct {
	ID        string    `json:"id"`
	Type      BlockType `json:"type"`
	Content   string    `json:"content"`
	Caption   string    `json:"caption,omitempty"`
	Alignment Alignment `json:"alignment,omitempty"`
}

// ValidBlockTypes contains all known block types.
var ValidBlockTypes = []BlockType{BlockTypeText, BlockTypeImage, BlockTypeVideo}

// ValidAlignments contains all known alignments.
var ValidAlignments = []Alignment{AlignmentLeft, AlignmentCenter, AlignmentRight, AlignmentFull}

// IsValidBlockType checks if a block type is known.
func IsValidBlockType(t BlockType) bool {
	for _, v := range ValidBlockTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsValidAlignment checks if an alignment is known. An empty alignment is valid.
func IsValidAlignment(a Alignment) bool {
	if a == "" {
		return true
	}
	for _, v := range ValidAlignments {
		if v == a {
			return true
		}
	}
	return false
}
