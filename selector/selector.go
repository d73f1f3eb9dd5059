// Package selector builds CSS selector strings from typed parts while
// enforcing selector grammar ordering and uniqueness rules.
//
// Builder is an immutable value: every appending operation returns a new
// Builder and never touches the receiver, so any intermediate result can be
// kept and extended independently. A failed append returns a Builder carrying
// the error; further appends on it are no-ops and the error is reported by
// Err or Result.
package selector

import "strings"

// Kind identifies the category of a selector part. Kinds have a fixed total
// order - element, id, class, attribute, pseudo-class, pseudo-element - and
// within a single selector a part may never be appended after a part of a
// later kind.
type Kind int

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

// Marker returns the literal prefix identifying the kind within a selector
// string. Element parts have no marker, attribute parts are wrapped in
// brackets and the marker is the opening one.
func (k Kind) Marker() string {
	switch k {
	case KindID:
		return "#"
	case KindClass:
		return "."
	case KindAttribute:
		return "["
	case KindPseudoClass:
		return ":"
	case KindPseudoElement:
		return "::"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttribute:
		return "attribute"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// Builder accumulates a selector string part by part. The zero value is the
// empty root selector, ready to use.
type Builder struct {
	value    string
	elements int
	err      error
}

// New returns an empty root Builder. Identical to the zero value, provided
// for readable call sites.
func New() Builder {
	return Builder{}
}

// Element appends an element (tag) part. At most one element part is allowed
// per selector and it must come before everything else.
func (b Builder) Element(v string) Builder {
	return b.append(KindElement, v)
}

// ID appends an id part prefixed with "#".
func (b Builder) ID(v string) Builder {
	return b.append(KindID, v)
}

// Class appends a class part prefixed with ".".
func (b Builder) Class(v string) Builder {
	return b.append(KindClass, v)
}

// Attr appends an attribute part wrapped in brackets. The fragment is
// embedded verbatim, e.g. Attr(`href$=".png"`) yields `[href$=".png"]` -
// escaping is the caller's responsibility.
func (b Builder) Attr(v string) Builder {
	return b.append(KindAttribute, v)
}

// PseudoClass appends a pseudo-class part prefixed with ":".
func (b Builder) PseudoClass(v string) Builder {
	return b.append(KindPseudoClass, v)
}

// PseudoElement appends a pseudo-element part prefixed with "::". At most one
// pseudo-element is allowed per selector.
func (b Builder) PseudoElement(v string) Builder {
	return b.append(KindPseudoElement, v)
}

// String returns the selector accumulated so far. It never includes a part
// whose append failed and is safe to call repeatedly.
func (b Builder) String() string {
	return b.value
}

// Err returns the first error recorded on this builder lineage, nil if every
// append succeeded.
func (b Builder) Err() error {
	return b.err
}

// Result returns the accumulated selector together with the lineage error.
func (b Builder) Result() (string, error) {
	return b.value, b.err
}

func (b Builder) append(k Kind, v string) Builder {
	if b.err != nil {
		return b
	}
	if err := b.check(k); err != nil {
		return Builder{value: b.value, elements: b.elements, err: err}
	}
	next := Builder{elements: b.elements}
	switch k {
	case KindElement:
		next.value = b.value + v
		next.elements++
	case KindAttribute:
		next.value = b.value + "[" + v + "]"
	default:
		next.value = b.value + k.Marker() + v
	}
	return next
}

// check validates appending a part of kind k to the current state. Uniqueness
// is checked first, then ordering: finding the marker of any later kind in
// the accumulated value means the caller is appending out of order.
//
// Ordering detection is a plain substring scan, so a fragment value that
// itself contains a marker character (say an attribute value with "#") can
// shadow a later append. This matches the accepted looseness of the format:
// fragments are embedded verbatim and are expected to be CSS-legal.
func (b Builder) check(k Kind) error {
	switch k {
	case KindElement:
		if b.elements > 0 {
			return &DuplicateUniquePartError{Kind: k}
		}
	case KindPseudoElement:
		if strings.Contains(b.value, k.Marker()) {
			return &DuplicateUniquePartError{Kind: k}
		}
	}
	for later := k + 1; later <= KindPseudoElement; later++ {
		if strings.Contains(b.value, later.Marker()) {
			return &OutOfOrderError{Kind: k, Present: later}
		}
	}
	return nil
}
