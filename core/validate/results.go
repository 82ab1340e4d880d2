package validate

// Results is the ordered store of findings from one validation pass.
// Findings are only appended; the store is cleared as a whole.
type Results struct {
	findings []*Finding
}

func (r *Results) add(f *Finding) {
	r.findings = append(r.findings, f)
}

// All returns the findings in the order they were recorded.
func (r *Results) All() []*Finding {
	out := make([]*Finding, len(r.findings))
	copy(out, r.findings)
	return out
}

// Len returns the number of findings.
func (r *Results) Len() int { return len(r.findings) }

// Clear removes every finding.
func (r *Results) Clear() { r.findings = nil }

// BySeverity returns the findings with exactly the given severity.
func (r *Results) BySeverity(s Severity) []*Finding {
	return r.filter(func(f *Finding) bool { return f.severity == s })
}

// Errors returns the ERROR findings.
func (r *Results) Errors() []*Finding { return r.BySeverity(SeverityError) }

// Warnings returns the WARNING findings.
func (r *Results) Warnings() []*Finding { return r.BySeverity(SeverityWarning) }

// ByProblemCode returns the findings carrying code.
func (r *Results) ByProblemCode(code int) []*Finding {
	return r.filter(func(f *Finding) bool { return f.code == code })
}

// HasErrors reports whether any ERROR finding was recorded.
func (r *Results) HasErrors() bool {
	for _, f := range r.findings {
		if f.severity == SeverityError {
			return true
		}
	}
	return false
}

// Unrepaired returns findings at or above min that have no repair.
func (r *Results) Unrepaired(min Severity) []*Finding {
	return r.filter(func(f *Finding) bool { return f.severity >= min && !f.Repaired() })
}

// RepairCount returns the total number of repairs across all findings.
func (r *Results) RepairCount() int {
	n := 0
	for _, f := range r.findings {
		n += len(f.repairs)
	}
	return n
}

func (r *Results) filter(keep func(*Finding) bool) []*Finding {
	var out []*Finding
	for _, f := range r.findings {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}
