// Package io reads block files and writes computed layouts.
//
// # Block Files
//
// A block file is JSON or YAML. The top level is either a list of blocks or
// an object with a "blocks" list:
//
//	[
//	  {"id": "arithmetic", "title": {"de": "Arithmetik", "en": "Arithmetic"}},
//	  {"id": "algebra", "title": {"de": "Algebra", "en": "Algebra"},
//	   "prerequisites": ["arithmetic"], "parents": [], "credits": 5}
//	]
//
//	blocks:
//	  - id: arithmetic
//	    title: {de: Arithmetik, en: Arithmetic}
//	  - id: algebra
//	    title: {de: Algebra, en: Algebra}
//	    prerequisites: [arithmetic]
//	    credits: 5
//
// Keys other than id, title, prerequisites and parents are kept, in order, as
// block extensions. [ImportBlocks] picks the format from the file extension
// (.json, .yaml, .yml); [ReadBlocks] takes it explicitly. Both validate every
// block before returning.
//
// # Layout Documents
//
// A [LayoutDocument] is the JSON form of one layout run: positioned blocks
// with their level and visibility, edges with their connection lines, and
// diagnostics (cycles, topological order, removed edges). Write one with
// [WriteLayout] or [ExportLayout]; read it back with [ReadLayout].
//
// # Errors
//
// Failures carry codes from pkg/errors: FILE_NOT_FOUND for missing files,
// UNSUPPORTED for unknown extensions, INVALID_FORMAT for undecodable content
// and INVALID_INPUT for blocks that fail validation.
package io
