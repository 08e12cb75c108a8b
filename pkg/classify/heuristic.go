package classify

// Heuristic decides from Signals whether a default export is a component.
type Heuristic interface {
	IsComponent(s Signals) bool
}

// HeuristicFunc adapts a plain function to the Heuristic interface.
type HeuristicFunc func(s Signals) bool

// IsComponent calls f(s).
func (f HeuristicFunc) IsComponent(s Signals) bool {
	return f(s)
}

// DefaultHeuristic is the stock component test.
var DefaultHeuristic Heuristic = HeuristicFunc(defaultIsComponent)

func defaultIsComponent(s Signals) bool {
	return (s.LibraryImport && (s.Markup || s.ComponentName)) ||
		(s.DefaultExportFunction && s.Markup) ||
		(s.FrameworkImport && (s.DefaultExportFunction || s.ComponentName))
}
