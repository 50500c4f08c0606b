// Package model provides the intermediate representation (IR) for extracted
// datasheet content.
//
// This package defines the data structures shared by the identification and
// pin-table pipelines. All readers and extractors ultimately produce these
// types, making them the primary API for consuming extracted content.
//
// # Text Bits
//
// The [TextBits] type bundles the positional text of a document: its title,
// headings, metadata strings, and a body sample. It is built once per document
// by a reader and consumed read-only by every extractor:
//
//	bits := doc.Bits()
//	pool := bits.Pool()
//
// # Tables
//
// The [Table] type is a rectangular string grid whose first row is the header
// row. Markup tables additionally carry their caption and the nearest
// preceding heading; paginated tables carry their page number. Export methods
// (ToTSV, ToMarkdown, ToCSV) serve retrieval and CLI output.
//
// # Identification
//
// The [Identification] type is the result of device identification: the
// primary device name, the full candidate list, and detected package codes.
// Its JSON shape is the consumer contract of the identify operation.
package model
