package model

// Term identifies the half of the academic year a semester belongs to.
type Term string

const (
	TermSpring Term = "spring"
	TermFall   Term = "fall"
)

// IsValid reports whether the term is one of the recognized values.
func (t Term) IsValid() bool {
	return t == TermSpring || t == TermFall
}
