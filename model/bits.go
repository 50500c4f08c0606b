package model

import "strings"

// TextBits holds the positional text of one document: title, headings,
// metadata strings, and a body sample. Built once per document by a reader;
// every extractor consumes it read-only.
type TextBits struct {
	Title    string
	Headings []string
	Meta     []string
	Body     string
}

// JoinedHeadings returns the headings joined the way scoring expects them,
// with " \n " separators.
func (b TextBits) JoinedHeadings() string {
	return strings.Join(b.Headings, " \n ")
}

// Pool returns the full text pool used for candidate tokenization:
// title, headings, metadata, and body, joined with " \n ".
func (b TextBits) Pool() string {
	return strings.Join([]string{
		b.Title,
		b.JoinedHeadings(),
		strings.Join(b.Meta, " "),
		b.Body,
	}, " \n ")
}

// NarrowPool returns the text pool without metadata. Package and vendor-code
// extraction scan this narrower pool.
func (b TextBits) NarrowPool() string {
	return strings.Join([]string{b.Title, b.JoinedHeadings(), b.Body}, " \n ")
}

// Empty reports whether the document produced no text at all.
func (b TextBits) Empty() bool {
	return b.Title == "" && len(b.Headings) == 0 && len(b.Meta) == 0 && b.Body == ""
}
