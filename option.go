package optree

import (
	"strings"

	"github.com/halvard/optree/types/doc"
	"github.com/halvard/optree/types/tokens"
)

// Option is a leaf grammar element matching a single head token. Three
// variants exist: ValueOption (--tag=value), Flag (bare --tag) and Action
// (bare --tag running a callback). Matches must be a pure predicate over the
// head token; Apply consumes it.
//
// During a scan the first declared Option whose Matches returns true wins.
// Declaration order is the only tie-breaker - overlapping tags between
// siblings are not detected.
type Option interface {
	// Tags returns the accepted spellings, e.g. "-h", "--help".
	Tags() []string
	// Help returns the option's description.
	Help() string
	// Key returns the canonical store key: the first tag with leading
	// dashes stripped.
	Key() string
	// Matches reports whether the head token matches this option. It must
	// not consume tokens.
	Matches(seq *tokens.Sequence) bool
	// Apply consumes the head token and performs the option's effect.
	Apply(d *Definition, seq *tokens.Sequence, store *Store) Result
	// Describe produces the option's documentation fragment.
	Describe() doc.Block
}

// option carries the fields shared by all variants.
type option struct {
	tags []string
	help string
}

func (o *option) Tags() []string {
	return o.tags
}

func (o *option) Help() string {
	return o.help
}

func (o *option) Key() string {
	if len(o.tags) == 0 {
		return ""
	}

	return strings.TrimLeft(o.tags[0], "-")
}

// matchesExact reports whether the head token equals one of the tags.
func (o *option) matchesExact(seq *tokens.Sequence) bool {
	head, ok := seq.Head()
	if !ok {
		return false
	}
	for _, tag := range o.tags {
		if head == tag {
			return true
		}
	}

	return false
}

// describe builds the two-line documentation fragment: the comma-joined tag
// list (with an =valueName suffix for value options) over the indented help.
func (o *option) describe(valueName string) doc.Block {
	spelling := strings.Join(o.tags, ", ")
	if valueName != "" {
		spelling += "=" + valueName
	}

	return doc.Vertical(
		doc.Text(spelling),
		doc.Text(o.help).Indent(4),
	)
}

// ValueOption matches tokens of the form tag=value and stores the text after
// the first "=" under the option's canonical key. "--foo=" stores the empty
// string.
type ValueOption struct {
	option
	valueName string
}

// NewValueOption declares a value-carrying option.
func NewValueOption(configs ...ConfigureOptionFunc) *ValueOption {
	o := &ValueOption{valueName: "Value"}
	for _, config := range configs {
		config(&o.option)
	}

	return o
}

// SetValueName overrides the placeholder shown after "=" in help text.
func (o *ValueOption) SetValueName(name string) *ValueOption {
	o.valueName = name

	return o
}

func (o *ValueOption) Matches(seq *tokens.Sequence) bool {
	head, ok := seq.Head()
	if !ok {
		return false
	}
	for _, tag := range o.tags {
		if strings.HasPrefix(head, tag+"=") {
			return true
		}
	}

	return false
}

func (o *ValueOption) Apply(d *Definition, seq *tokens.Sequence, store *Store) Result {
	head, _ := seq.Pop()
	value := ""
	if idx := strings.IndexByte(head, '='); idx >= 0 {
		value = head[idx+1:]
	}
	store.Set(o.Key(), value)

	return Continue()
}

func (o *ValueOption) Describe() doc.Block {
	return o.describe(o.valueName)
}

// Flag matches a bare tag token and stores the boolean true under the
// option's canonical key. "-x" is matched by exactly "-x", never by "-xx" or
// "-x=y".
type Flag struct {
	option
}

// NewFlag declares a boolean option.
func NewFlag(configs ...ConfigureOptionFunc) *Flag {
	o := &Flag{}
	for _, config := range configs {
		config(&o.option)
	}

	return o
}

func (o *Flag) Matches(seq *tokens.Sequence) bool {
	return o.matchesExact(seq)
}

func (o *Flag) Apply(d *Definition, seq *tokens.Sequence, store *Store) Result {
	seq.Pop()
	store.SetFlag(o.Key())

	return Continue()
}

func (o *Flag) Describe() doc.Block {
	return o.describe("")
}

// Action matches like a Flag but runs a caller-supplied callback instead of
// writing the store. The callback decides whether the dispatch continues or
// halts - a help flag, for instance, renders the usage document and halts
// with a success status.
type Action struct {
	option
	action ActionFunc
}

// NewAction declares an option running fn when matched.
func NewAction(fn ActionFunc, configs ...ConfigureOptionFunc) *Action {
	o := &Action{action: fn}
	for _, config := range configs {
		config(&o.option)
	}

	return o
}

func (o *Action) Matches(seq *tokens.Sequence) bool {
	return o.matchesExact(seq)
}

func (o *Action) Apply(d *Definition, seq *tokens.Sequence, store *Store) Result {
	seq.Pop()
	if o.action == nil {
		return Continue()
	}

	return o.action(d, seq, store)
}

func (o *Action) Describe() doc.Block {
	return o.describe("")
}
