package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dyne/strtasks/internal/rot13"
	"github.com/dyne/strtasks/internal/strtask"
)

type Transformer interface {
	Name() string
	Transform(value string) (string, error)
}

// Describer is implemented by transformers that carry parameters.
type Describer interface {
	Describe() string
}

// Func adapts a plain string function to a Transformer.
type Func struct {
	name string
	fn   func(string) string
}

func NewFunc(name string, fn func(string) string) *Func {
	return &Func{name: name, fn: fn}
}

func (t *Func) Name() string { return t.name }

func (t *Func) Transform(value string) (string, error) {
	return t.fn(value), nil
}

func Rot13() *Func       { return NewFunc("Rot13", rot13.Transform) }
func Upper() *Func       { return NewFunc("Upper", strtask.Upper) }
func Trim() *Func        { return NewFunc("Trim", strtask.Trim) }
func Unbracket() *Func   { return NewFunc("Unbracket", strtask.UnbracketTag) }
func ExtractName() *Func { return NewFunc("ExtractName", strtask.ExtractName) }
func FirstChar() *Func   { return NewFunc("FirstChar", strtask.FirstChar) }

func Length() *Func {
	return NewFunc("Length", func(s string) string { return strconv.Itoa(strtask.Length(s)) })
}

// Emails puts each address of a semicolon list on its own line.
func Emails() *Func {
	return NewFunc("Emails", func(s string) string { return strings.Join(strtask.SplitEmails(s), "\n") })
}

func CardID() *Func {
	return NewFunc("CardID", func(s string) string { return strconv.Itoa(strtask.CardID(s)) })
}

type RemoveFirst struct{ sub string }

func NewRemoveFirst(sub string) *RemoveFirst { return &RemoveFirst{sub: sub} }

func (t *RemoveFirst) Name() string { return "RemoveFirst" }

func (t *RemoveFirst) Describe() string { return fmt.Sprintf("value=%q", t.sub) }

func (t *RemoveFirst) Transform(value string) (string, error) {
	return strtask.RemoveFirst(value, t.sub), nil
}

type Repeat struct{ count int }

func NewRepeat(count int) *Repeat { return &Repeat{count: count} }

func (t *Repeat) Name() string { return "Repeat" }

func (t *Repeat) Describe() string { return fmt.Sprintf("count=%d", t.count) }

func (t *Repeat) Transform(value string) (string, error) {
	return strtask.Repeat(value, t.count)
}

type Concat struct{ suffix string }

func NewConcat(suffix string) *Concat { return &Concat{suffix: suffix} }

func (t *Concat) Name() string { return "Concat" }

func (t *Concat) Describe() string { return fmt.Sprintf("value=%q", t.suffix) }

func (t *Concat) Transform(value string) (string, error) {
	return strtask.Concat(value, t.suffix), nil
}

// Greeting treats the input as the first name.
type Greeting struct{ last string }

func NewGreeting(last string) *Greeting { return &Greeting{last: last} }

func (t *Greeting) Name() string { return "Greeting" }

func (t *Greeting) Describe() string { return fmt.Sprintf("value=%q", t.last) }

func (t *Greeting) Transform(value string) (string, error) {
	return strtask.Greeting(value, t.last), nil
}
