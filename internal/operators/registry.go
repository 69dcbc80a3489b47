package operators

// Registry bundles the comparison and assignment tables the planner
// dispatches against. Constructing it once per query and sharing it read-only
// across all condition/effect evaluations avoids rebuilding the two-level
// maps per node expansion.
type Registry struct {
	Comparisons *ComparisonTable
	Assignments *AssignmentTable
}

// NewRegistry builds the standard registry. Callers that need a
// custom or extended operator set can construct a Registry directly from
// their own tables instead; the tables are a first-class extension
// point, not hardwired into the planner.
func NewRegistry() *Registry {
	return &Registry{
		Comparisons: NewComparisonTable(),
		Assignments: NewAssignmentTable(),
	}
}
