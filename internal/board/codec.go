package board

import (
	"encoding/json"
	"fmt"

	"tallyho/internal/domain"
)

// blockRecord is the persisted form of a block. The slot holds a JSON
// array of these, in board order.
type blockRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func encodeBlocks(blocks []domain.Block) ([]byte, error) {
	records := make([]blockRecord, len(blocks))
	for i, blk := range blocks {
		records[i] = blockRecord{ID: blk.ID, Name: blk.Name, Count: blk.Count}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("board: encode: %w", err)
	}
	return data, nil
}

func decodeBlocks(data []byte) ([]domain.Block, error) {
	var records []blockRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBoard, err)
	}
	blocks := make([]domain.Block, len(records))
	for i, rec := range records {
		if rec.Count < 0 {
			return nil, fmt.Errorf("%w: block %q has negative count %d", ErrCorruptBoard, rec.ID, rec.Count)
		}
		blocks[i] = domain.Block{ID: rec.ID, Name: rec.Name, Count: rec.Count}
	}
	return blocks, nil
}
