package printer

import (
	"encoding/json"

	"github.com/joshuapare/memsim/mem/alloc"
)

// jsonBlock represents a block in JSON format.
type jsonBlock struct {
	Owner  string `json:"owner"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Free   bool   `json:"free"`
}

// jsonRegion represents a region snapshot in JSON format.
type jsonRegion struct {
	Capacity int         `json:"capacity"`
	Free     int         `json:"free"`
	Used     int         `json:"used"`
	Blocks   []jsonBlock `json:"blocks"`
}

// PrintJSON writes the snapshot as an indented JSON document.
func (p *Printer) PrintJSON(blocks []alloc.Block, capacity int) error {
	doc := jsonRegion{
		Capacity: capacity,
		Blocks:   make([]jsonBlock, 0, len(blocks)),
	}
	for _, b := range blocks {
		if b.IsFree() {
			doc.Free += b.Length
		}
		doc.Blocks = append(doc.Blocks, jsonBlock{
			Owner:  b.Owner,
			Offset: b.Offset,
			Length: b.Length,
			Free:   b.IsFree(),
		})
	}
	doc.Used = capacity - doc.Free

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
