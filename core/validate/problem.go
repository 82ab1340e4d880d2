package validate

import "fmt"

// CustomCodeStart is the first problem code available to caller-defined
// rules. Codes below it are reserved for the built-in rules.
const CustomCodeStart = 1000

// ProblemCode identifies a built-in rule violation. Codes are stable and
// never reused.
type ProblemCode int

// Built-in problem codes.
const (
	MissingRequiredValue   ProblemCode = 1
	IllegalValue           ProblemCode = 2
	CrossReferenceNotFound ProblemCode = 3
	XRefMismatch           ProblemCode = 4
	InvalidXRef            ProblemCode = 5
	BlankListEntry         ProblemCode = 6
	DuplicateValue         ProblemCode = 7
	TooManyEntries         ProblemCode = 8
	MissingBackLink        ProblemCode = 9
	UnsupportedValue       ProblemCode = 10
)

var problemDescriptions = map[ProblemCode]string{
	MissingRequiredValue:   "A required value is missing",
	IllegalValue:           "The value is not allowed here",
	CrossReferenceNotFound: "A cross-referenced record could not be found",
	XRefMismatch:           "The record's cross-reference does not match its key",
	InvalidXRef:            "The cross-reference identifier is malformed",
	BlankListEntry:         "A list contains a blank entry",
	DuplicateValue:         "A list contains the same value more than once",
	TooManyEntries:         "A list has more entries than allowed",
	MissingBackLink:        "The linked record does not link back",
	UnsupportedValue:       "The value is valid but not supported",
}

// Code returns the numeric code.
func (p ProblemCode) Code() int {
	return int(p)
}

// Description returns the fixed description of a built-in code.
func (p ProblemCode) Description() string {
	return problemDescriptions[p]
}

// IsBuiltIn reports whether p is a defined built-in code.
func (p ProblemCode) IsBuiltIn() bool {
	_, ok := problemDescriptions[p]
	return ok && int(p) < CustomCodeStart
}

func (p ProblemCode) String() string {
	if d, ok := problemDescriptions[p]; ok {
		return d
	}
	return fmt.Sprintf("ProblemCode(%d)", int(p))
}

// ProblemCodes returns every built-in code in ascending order.
func ProblemCodes() []ProblemCode {
	out := make([]ProblemCode, 0, len(problemDescriptions))
	for p := MissingRequiredValue; p <= UnsupportedValue; p++ {
		out = append(out, p)
	}
	return out
}
