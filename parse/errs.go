package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse      = errors.New("parse error")
	ErrIndent     = fmt.Errorf("%w: illegal indentation", ErrParse)
	ErrIndentSpec = fmt.Errorf("%w: bad tdoc:indent value", ErrParse)
)
