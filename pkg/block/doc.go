// Package block defines the flat input record of a block graph.
//
// # Overview
//
// A [Block] is a unit of learning content (a course, a topic, a lesson) with
// a unique ID, a two-language [Title], and two kinds of relationships:
//
//   - Prerequisites: blocks that must be learned first. They drive ordering,
//     level assignment and transitive reduction.
//   - Parents: blocks that contain this one. They drive drill-down navigation.
//
// Blocks carry no logic. The graph package turns a block list into a graph.
//
// # Extensions
//
// Input files routinely carry fields this package knows nothing about (colors,
// credit points, links). Those fields are kept in an ordered [Extensions] bag
// and written back in their original order after the typed fields, so a
// block list survives a load → layout → export cycle without losing data.
//
//	{"id": "algebra", "title": {"de": "Algebra", "en": "Algebra"},
//	 "prerequisites": ["arithmetic"], "parents": [], "credits": 5}
//
// Here "credits" lands in Extensions. JSON values are kept as the raw bytes
// of the input; YAML values become ordered maps and [encoding/json.Number]s.
// Either way nested key order and large integers survive the round trip.
// [FormatValue] renders a value for labels. [Block.Clone] copies the bag
// container so transforms never share mutable state with their input.
package block
