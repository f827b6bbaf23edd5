// SPDX-License-Identifier: MIT

package textio

import "strings"

// DefaultDelimiter separates tokens within a row.
const DefaultDelimiter = " "

// Option customizes Write/Read. Option constructors panic on meaningless
// values; Write and Read themselves never panic.
type Option func(*options)

type options struct {
	delim string
}

// WithDelimiter sets the token separator. Panics if d is empty or contains
// a line break.
func WithDelimiter(d string) Option {
	if d == "" || strings.ContainsAny(d, "\r\n") {
		panic("textio: WithDelimiter(" + d + ")")
	}

	return func(o *options) { o.delim = d }
}

func gatherOptions(opts ...Option) options {
	o := options{delim: DefaultDelimiter}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
