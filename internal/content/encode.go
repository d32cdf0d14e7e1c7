package content

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"news-portal/internal/domain"
)

// Encode serializes blocks into a structured body. Blocks without an id get one.
func Encode(blocks []domain.Block) (string, error) {
	out := make([]domain.Block, len(blocks))
	for i, b := range blocks {
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		out[i] = b
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode blocks: %w", err)
	}
	return string(data), nil
}
