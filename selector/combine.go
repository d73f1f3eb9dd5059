package selector

// Combinator joins two selectors. The value is embedded verbatim between the
// operands with a single space on each side; it is deliberately not validated
// against the known set, matching how loosely combinators are treated by the
// consumers of the output.
type Combinator string

const (
	Descendant      Combinator = " "
	Child           Combinator = ">"
	AdjacentSibling Combinator = "+"
	GeneralSibling  Combinator = "~"
)

// Combine joins two built selectors with a combinator into a new Builder:
// the result value is a.String() + " " + comb + " " + b.String(). The
// combined selector is opaque - its element bookkeeping is reset, so it can
// itself be combined further or extended like any other builder.
//
// Combine never fails on its own. If either operand carries an error it
// propagates to the result, left operand first.
func Combine(a Builder, comb Combinator, b Builder) Builder {
	err := a.err
	if err == nil {
		err = b.err
	}
	return Builder{
		value: a.value + " " + string(comb) + " " + b.value,
		err:   err,
	}
}
