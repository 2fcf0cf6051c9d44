package entities

// PatternFlags records the structural features detected in one code submission.
// It is recomputed for every submission and never persisted.
type PatternFlags struct {
	HasRecursion bool `json:"has_recursion"`
	HasBaseCase  bool `json:"has_base_case"`
	HasLoopBreak bool `json:"has_loop_break"`
	HasListComp  bool `json:"has_list_comp"`
	HasTryExcept bool `json:"has_try_except"`
	HasWhileLoop bool `json:"has_while_loop"`
}

// Pattern names one flag of PatternFlags. Catalog data (boss weaknesses) refers to
// flags by these names.
type Pattern string

// Pattern names
const (
	PatternRecursion Pattern = "recursion"
	PatternBaseCase  Pattern = "base_case"
	PatternLoopBreak Pattern = "loop_break"
	PatternListComp  Pattern = "list_comp"
	PatternTryExcept Pattern = "try_except"
	PatternWhileLoop Pattern = "while_loop"
)

// Has reports whether the named flag is set. Unknown names report false.
func (f PatternFlags) Has(p Pattern) bool {
	switch p {
	case PatternRecursion:
		return f.HasRecursion
	case PatternBaseCase:
		return f.HasBaseCase
	case PatternLoopBreak:
		return f.HasLoopBreak
	case PatternListComp:
		return f.HasListComp
	case PatternTryExcept:
		return f.HasTryExcept
	case PatternWhileLoop:
		return f.HasWhileLoop
	default:
		return false
	}
}

// Detected lists the names of all set flags in declaration order
func (f PatternFlags) Detected() []Pattern {
	var out []Pattern
	for _, p := range []Pattern{
		PatternRecursion, PatternBaseCase, PatternLoopBreak,
		PatternListComp, PatternTryExcept, PatternWhileLoop,
	} {
		if f.Has(p) {
			out = append(out, p)
		}
	}
	return out
}
