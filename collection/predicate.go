package collection

//
// Predicate & filter types
//

// FilterFunc defines a function that evaluates a value and returns true
// when the value satisfies the condition.
type FilterFunc[E any] func(E) bool

// Predicate is an alias for FilterFunc to express boolean tests.
type Predicate[E any] = FilterFunc[E]
