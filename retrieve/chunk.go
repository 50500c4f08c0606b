package retrieve

import "fmt"

// chunkWholeMax is the size, in runes, under which a node stays one chunk.
const chunkWholeMax = 1500

// chunkSliceLen is the slice length, in runes, for nodes that split.
const chunkSliceLen = 1200

// Chunk is a retrievable slice of a node. The id encodes the source node's
// position in the graph, with an "_K" suffix numbering the slices of a
// split node.
type Chunk struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ChunkNodes flattens nodes into chunks. A node under the whole-chunk limit
// passes through intact; a larger one splits into fixed-length slices that
// share its type and title. Ids index the node list, so a node with no text
// leaves a gap instead of renumbering the rest.
func ChunkNodes(nodes []Node) []Chunk {
	var chunks []Chunk
	for i, n := range nodes {
		if n.Text == "" {
			continue
		}
		runes := []rune(n.Text)
		if len(runes) < chunkWholeMax {
			chunks = append(chunks, Chunk{
				ID:    fmt.Sprintf("n%d", i),
				Type:  n.Type,
				Title: n.Title,
				Text:  n.Text,
			})
			continue
		}
		for k := 0; len(runes) > 0; k++ {
			end := chunkSliceLen
			if end > len(runes) {
				end = len(runes)
			}
			chunks = append(chunks, Chunk{
				ID:    fmt.Sprintf("n%d_%d", i, k),
				Type:  n.Type,
				Title: n.Title,
				Text:  string(runes[:end]),
			})
			runes = runes[end:]
		}
	}
	return chunks
}
