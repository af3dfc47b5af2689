package segments

type Kind uint8

const (
	KindDocumentation Kind = iota
	KindCode
)

func (k Kind) String() string {
	switch k {
	case KindDocumentation:
		return "documentation"
	case KindCode:
		return "code"
	}
	return "invalid"
}

// Segment is one classified unit of a source file. Ordinal position is
// implicit in stream order, 1-based.
type Segment struct {
	Text string
	Kind Kind
}
