// Package retrieve builds a searchable evidence graph from a technical
// document and answers keyword queries over it.
//
// A document decomposes into nodes: the paragraphs that follow each heading
// and the leading rows of each table. Nodes flatten into chunks whose ids
// encode the source node, so a retrieval hit traces back to its position in
// the document. Scoring is exact substring counting, no stemming and no
// embeddings, so a hit always means the query text literally occurs in the
// chunk.
package retrieve

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/partlab/datasheet/format"
	"github.com/partlab/datasheet/htmldoc"
	"github.com/partlab/datasheet/pdfdoc"
	"github.com/partlab/datasheet/vocab"
)

// DefaultMaxPages caps how many pages of a paginated document feed the
// graph. Connection guidance concentrates in the front matter.
const DefaultMaxPages = 10

// DefaultK is how many chunks a query returns when the caller passes no
// positive k.
const DefaultK = 10

// titleWeight multiplies query hits in a chunk's title.
const titleWeight = 2

// boostScore is added once to a chunk whose text mentions any boost word.
const boostScore = 5

// Retriever builds document graphs and runs keyword retrieval over their
// chunks.
type Retriever struct {
	boost    []string
	maxPages int
	log      *zap.Logger
}

// New builds a Retriever from a vocabulary.
func New(v *vocab.Vocabulary) *Retriever {
	boost := make([]string, 0, len(v.BoostWords))
	for _, w := range v.BoostWords {
		boost = append(boost, strings.ToLower(w))
	}
	return &Retriever{boost: boost, maxPages: DefaultMaxPages, log: zap.NewNop()}
}

// WithLogger sets the logger.
func (r *Retriever) WithLogger(log *zap.Logger) *Retriever {
	if log != nil {
		r.log = log
	}
	return r
}

// WithMaxPages overrides the page cap for paginated documents. Zero or
// negative means no cap.
func (r *Retriever) WithMaxPages(n int) *Retriever {
	r.maxPages = n
	return r
}

// File builds the retrievable chunks of a document. The format is chosen by
// extension. Unsupported extensions fail with [format.ErrUnsupported] and
// missing markup files fail with the underlying open error; a paginated
// document that cannot be opened yields no chunks rather than an error.
func (r *Retriever) File(path string) ([]Chunk, error) {
	switch format.Detect(path) {
	case format.HTML:
		doc, err := htmldoc.Open(path)
		if err != nil {
			return nil, fmt.Errorf("retrieve %s: %w", path, err)
		}
		return ChunkNodes(r.HTMLGraph(doc)), nil
	case format.PDF:
		doc, err := pdfdoc.Open(path)
		if err != nil {
			r.log.Warn("unreadable document, returning no evidence",
				zap.String("file", path), zap.Error(err))
			return nil, nil
		}
		defer doc.Close()
		return ChunkNodes(r.PDFGraph(doc)), nil
	default:
		return nil, fmt.Errorf("retrieve %s: %w", path, format.ErrUnsupported)
	}
}

// Retrieve scores chunks against queries and returns the best k. Each query
// occurrence counts once in the text and double in the title, and a chunk
// whose text mentions any boost word gets a flat bonus once. Only chunks
// with a positive score return, best first, ties keeping chunk order. k at
// or below zero means DefaultK.
func (r *Retriever) Retrieve(chunks []Chunk, queries []string, k int) []Chunk {
	if k <= 0 {
		k = DefaultK
	}

	type hit struct {
		score int
		chunk Chunk
	}
	var hits []hit
	for _, ch := range chunks {
		title := strings.ToLower(ch.Title)
		text := strings.ToLower(ch.Text)

		score := 0
		for _, q := range queries {
			q = strings.ToLower(q)
			score += strings.Count(title, q) * titleWeight
			score += strings.Count(text, q)
		}
		for _, w := range r.boost {
			if strings.Contains(text, w) {
				score += boostScore
				break
			}
		}
		if score > 0 {
			hits = append(hits, hit{score: score, chunk: ch})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > k {
		hits = hits[:k]
	}
	out := make([]Chunk, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.chunk)
	}
	r.log.Debug("retrieved evidence",
		zap.Int("chunks", len(chunks)),
		zap.Int("queries", len(queries)),
		zap.Int("hits", len(out)))
	return out
}
