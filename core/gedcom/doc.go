// Package gedcom encodes and decodes GEDCOM 5.5 documents.
//
// A Writer turns a model.Gedcom into lines of the form
//
//	<level>[ <xref>] <tag>[ <value>]
//
// in the fixed record order HEAD, SUBN, SUBM, INDI, FAM, OBJE, NOTE, REPO,
// SOUR, TRLR. Multi-line text is continued with CONT lines one level down.
// The whole document is built in memory first, so a failed encode writes
// nothing. Every cross-reference must resolve against the graph being
// written.
//
// Read, Parse and ReadFile go the other way. Each line is tokenized by a
// participle grammar, lines are assembled into a tree by level, CONT and
// CONC lines are folded into their parent's text, and the tree is mapped
// onto the record graph. Tags the decoder does not know are skipped.
//
// Files ending in ".xz" are compressed on write; compressed input is
// recognized by its magic bytes on read.
package gedcom
