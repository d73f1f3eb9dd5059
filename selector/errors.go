package selector

import "fmt"

// DuplicateUniquePartError is returned when an element or pseudo-element part
// is appended to a selector that already has one - those kinds may occur at
// most once per selector.
type DuplicateUniquePartError struct {
	Kind Kind
}

func (e *DuplicateUniquePartError) Error() string {
	return fmt.Sprintf("duplicate %s part: at most one allowed per selector", e.Kind)
}

// OutOfOrderError is returned when a part is appended after a part of a kind
// that must come later in the fixed order element, id, class, attribute,
// pseudo-class, pseudo-element. Present is the later kind already found in
// the selector.
type OutOfOrderError struct {
	Kind    Kind
	Present Kind
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("%s part out of order: selector already contains a %s part", e.Kind, e.Present)
}
