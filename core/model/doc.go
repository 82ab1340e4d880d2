// Package model provides the in-memory record graph for GEDCOM 5.5 data.
//
// The graph is a rooted tree. A Gedcom owns exactly one Header, at most one
// Submission, and one Index per top-level record kind (submitters,
// individuals, families, multimedia, notes, repositories, sources). Every
// record owns its child structures by value or by pointer.
//
// # Cross-references
//
// Records never point at each other directly. A link from one record to
// another (a source citation naming a source, a family naming its children)
// is a cross-reference identifier string such as "@S1@", resolved by looking
// it up in the Index of the target kind. Records may therefore reference each
// other in cycles (individual -> family -> individual) without an ownership
// cycle.
//
// # Absent values
//
// Scalar fields are plain strings and the empty string means "absent".
// Multi-line text is a []string; each element is one line and blank elements
// are real, meaningful lines.
//
// # Example
//
//	g := model.NewGedcom()
//	g.Header.SourceSystem = &model.SourceSystem{SystemID: "ACME", VersionNum: "1.0"}
//	g.Header.CharacterSet.CharacterSetName = "ANSEL"
//	g.Submitters.Put("@SUBM1@", &model.Submitter{XRef: "@SUBM1@", Name: "Jane Doe"})
//	g.Header.SubmitterXRef = "@SUBM1@"
package model
