package optree

import (
	"errors"
	"fmt"
	"time"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/halvard/optree/util"
)

// ErrValueAbsent is returned by the typed accessors when the key was never
// written during the parse.
var ErrValueAbsent = errors.New("value not set")

func errAbsent(key string) error {
	return fmt.Errorf("%w: %s", ErrValueAbsent, key)
}

type valueKind int

const (
	kindAbsent valueKind = iota
	kindFlag
	kindText
)

// Value is what the store hands back for a key: a string set by a Value
// option, the boolean true set by a Flag option, or the absent sentinel when
// the key was never written. Lookups never fail - absence is a value.
type Value struct {
	kind valueKind
	text string
}

// Absent is the sentinel returned for keys that were never set.
var Absent = Value{}

// IsSet reports whether the value was written during the parse.
func (v Value) IsSet() bool {
	return v.kind != kindAbsent
}

// Bool reports whether the value was set by a Flag option.
func (v Value) Bool() bool {
	return v.kind == kindFlag
}

// String returns the stored text. Flag and absent values return "".
func (v Value) String() string {
	return v.text
}

// Store maps canonical option keys to the values recognized during a single
// dispatch. One Store is created per top-level Process call and shared by
// reference through every nested option and command scan. Writes are
// last-write-wins; nothing is ever deleted during a parse.
type Store struct {
	values *orderedmap.OrderedMap
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{values: orderedmap.New()}
}

// Set records a string value for key, replacing any earlier write.
func (s *Store) Set(key, value string) {
	s.values.Set(key, Value{kind: kindText, text: value})
}

// SetFlag records the boolean true for key.
func (s *Store) SetFlag(key string) {
	s.values.Set(key, Value{kind: kindFlag})
}

// Get returns the value recorded for key, or Absent.
func (s *Store) Get(key string) Value {
	v, ok := s.values.Get(key)
	if !ok {
		return Absent
	}

	return v.(Value)
}

// Keys returns every written key in insertion order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, s.values.Len())
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key.(string))
	}

	return keys
}

// Len returns the number of written keys.
func (s *Store) Len() int {
	return s.values.Len()
}

// GetString returns the text stored for key and whether it was set.
func (s *Store) GetString(key string) (string, bool) {
	v := s.Get(key)

	return v.String(), v.IsSet()
}

// GetBool returns true when key was set by a Flag option, or when a Value
// option stored text that parses as a true boolean.
func (s *Store) GetBool(key string) bool {
	v := s.Get(key)
	if v.Bool() {
		return true
	}
	if v.kind != kindText {
		return false
	}

	var b bool
	if err := util.ConvertString(v.text, &b); err != nil {
		return false
	}

	return b
}

// GetInt converts the stored text for key to an int.
func (s *Store) GetInt(key string) (int, error) {
	var i int
	err := s.convert(key, &i)

	return i, err
}

// GetFloat converts the stored text for key to a float64.
func (s *Store) GetFloat(key string) (float64, error) {
	var f float64
	err := s.convert(key, &f)

	return f, err
}

// GetDuration converts the stored text for key to a time.Duration.
func (s *Store) GetDuration(key string) (time.Duration, error) {
	var d time.Duration
	err := s.convert(key, &d)

	return d, err
}

// GetTime converts the stored text for key to a time.Time. Any layout
// recognized by dateparse is accepted, evaluated in the local timezone.
func (s *Store) GetTime(key string) (time.Time, error) {
	var t time.Time
	err := s.convert(key, &t)

	return t, err
}

func (s *Store) convert(key string, data interface{}) error {
	v := s.Get(key)
	if !v.IsSet() {
		return errAbsent(key)
	}

	return util.ConvertString(v.text, data)
}
