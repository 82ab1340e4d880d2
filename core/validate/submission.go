package validate

import (
	"strconv"
	"strings"
)

func (v *Validator) validateSubmission() {
	s := v.gedcom.Submission
	if s == nil {
		return
	}

	switch {
	case s.XRef == "":
		v.finding(s, SeverityError, MissingRequiredValue, "xref")
	case !IsValidXRef(s.XRef):
		v.finding(s, SeverityError, InvalidXRef, "xref")
	}

	v.checkLink(s, "submitterXRef", s.SubmitterXRef, v.hasSubmitter)

	if s.AncestorsCount != "" && !isCount(s.AncestorsCount) {
		v.finding(s, SeverityWarning, IllegalValue, "ancestorsCount")
	}
	if s.DescendantsCount != "" && !isCount(s.DescendantsCount) {
		v.finding(s, SeverityWarning, IllegalValue, "descendantsCount")
	}

	if flag := s.OrdinanceProcessFlag; flag != "" && flag != "yes" && flag != "no" {
		f := v.finding(s, SeverityWarning, IllegalValue, "ordinanceProcessFlag")
		lower := strings.ToLower(strings.TrimSpace(flag))
		if (lower == "yes" || lower == "no") && v.MayRepair(f) {
			s.OrdinanceProcessFlag = lower
			v.repaired(f, "normalized ordinance flag", flag, lower)
		}
	}
}

func isCount(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0
}
