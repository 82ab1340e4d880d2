package validate

// AutoRepairResponder decides whether a specific finding may be repaired in
// place. Implementations should answer without side effects.
type AutoRepairResponder interface {
	MayRepair(f *Finding) bool
}

// AutoRepairFunc adapts a function to AutoRepairResponder.
type AutoRepairFunc func(f *Finding) bool

// MayRepair calls fn(f).
func (fn AutoRepairFunc) MayRepair(f *Finding) bool {
	return fn(f)
}

var (
	// AutoRepairAll approves every repair.
	AutoRepairAll AutoRepairResponder = AutoRepairFunc(func(*Finding) bool { return true })

	// AutoRepairNone denies every repair. It is the default policy.
	AutoRepairNone AutoRepairResponder = AutoRepairFunc(func(*Finding) bool { return false })
)

// RepairAtOrAbove approves repairs for findings whose severity is at least min.
func RepairAtOrAbove(min Severity) AutoRepairResponder {
	return AutoRepairFunc(func(f *Finding) bool {
		return f.Severity() >= min
	})
}
