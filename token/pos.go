package token

import "fmt"

// Pos is a line/column position in a source document. TDoc is line
// oriented, so positions are tracked per fed line rather than by byte
// offset.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
