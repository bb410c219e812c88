package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvertString_Scalars(t *testing.T) {
	var s string
	assert.Nil(t, ConvertString("hello", &s))
	assert.Equal(t, "hello", s)

	var b bool
	assert.Nil(t, ConvertString("true", &b))
	assert.True(t, b)

	var i int
	assert.Nil(t, ConvertString("-7", &i))
	assert.Equal(t, -7, i)

	var i64 int64
	assert.Nil(t, ConvertString("9223372036854775807", &i64))
	assert.Equal(t, int64(9223372036854775807), i64)

	var u uint
	assert.Nil(t, ConvertString("7", &u))
	assert.Equal(t, uint(7), u)

	var f32 float32
	assert.Nil(t, ConvertString("1.5", &f32))
	assert.Equal(t, float32(1.5), f32)

	var f64 float64
	assert.Nil(t, ConvertString("2.25", &f64))
	assert.Equal(t, 2.25, f64)

	var d time.Duration
	assert.Nil(t, ConvertString("2m30s", &d))
	assert.Equal(t, 150*time.Second, d)
}

func TestConvertString_Time(t *testing.T) {
	var tm time.Time

	assert.Nil(t, ConvertString("2014-04-26 17:24:37", &tm))
	assert.Equal(t, 2014, tm.Year())

	assert.NotNil(t, ConvertString("not a time", &tm))
}

func TestConvertString_BadInput(t *testing.T) {
	var i int
	assert.NotNil(t, ConvertString("seven", &i))

	var b bool
	assert.NotNil(t, ConvertString("maybe", &b))
}

func TestConvertString_UnsupportedTarget(t *testing.T) {
	var c complex128
	err := ConvertString("1+2i", &c)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}
