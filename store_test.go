package optree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetAbsent(t *testing.T) {
	store := NewStore()

	v := store.Get("missing")

	assert.False(t, v.IsSet())
	assert.False(t, v.Bool())
	assert.Equal(t, "", v.String())
	assert.Equal(t, Absent, v)
}

func TestStore_SetOverwrites(t *testing.T) {
	store := NewStore()

	store.Set("mode", "slow")
	store.Set("mode", "fast")

	assert.Equal(t, "fast", store.Get("mode").String())
	assert.Equal(t, 1, store.Len())
}

func TestStore_FlagAndTextAreDistinct(t *testing.T) {
	store := NewStore()

	store.SetFlag("verbose")
	store.Set("mode", "fast")

	assert.True(t, store.Get("verbose").Bool())
	assert.Equal(t, "", store.Get("verbose").String())
	assert.False(t, store.Get("mode").Bool())
}

func TestStore_KeysInInsertionOrder(t *testing.T) {
	store := NewStore()

	store.Set("b", "2")
	store.SetFlag("a")
	store.Set("c", "3")

	assert.Equal(t, []string{"b", "a", "c"}, store.Keys())
}

func TestStore_GetString(t *testing.T) {
	store := NewStore()
	store.Set("mode", "fast")

	s, ok := store.GetString("mode")
	assert.True(t, ok)
	assert.Equal(t, "fast", s)

	_, ok = store.GetString("missing")
	assert.False(t, ok)
}

func TestStore_GetBool(t *testing.T) {
	store := NewStore()
	store.SetFlag("verbose")
	store.Set("enabled", "true")
	store.Set("disabled", "false")
	store.Set("junk", "not-a-bool")

	assert.True(t, store.GetBool("verbose"))
	assert.True(t, store.GetBool("enabled"))
	assert.False(t, store.GetBool("disabled"))
	assert.False(t, store.GetBool("junk"))
	assert.False(t, store.GetBool("missing"))
}

func TestStore_TypedAccessors(t *testing.T) {
	store := NewStore()
	store.Set("count", "42")
	store.Set("ratio", "0.5")
	store.Set("wait", "1500ms")
	store.Set("since", "2011-01-19 22:15")

	count, err := store.GetInt("count")
	assert.Nil(t, err)
	assert.Equal(t, 42, count)

	ratio, err := store.GetFloat("ratio")
	assert.Nil(t, err)
	assert.Equal(t, 0.5, ratio)

	wait, err := store.GetDuration("wait")
	assert.Nil(t, err)
	assert.Equal(t, 1500*time.Millisecond, wait)

	since, err := store.GetTime("since")
	assert.Nil(t, err)
	assert.Equal(t, 2011, since.Year())
	assert.Equal(t, time.January, since.Month())
	assert.Equal(t, 19, since.Day())
}

func TestStore_TypedAccessorErrors(t *testing.T) {
	store := NewStore()
	store.Set("count", "many")

	_, err := store.GetInt("count")
	assert.NotNil(t, err)

	_, err = store.GetInt("missing")
	assert.ErrorIs(t, err, ErrValueAbsent)
}
