// Package format renders parse results for people and programs.
package format

import (
	"encoding"

	"github.com/dhamidi/earley/earley"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(res *earley.Result) error
}
