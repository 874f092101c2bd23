package onedrive

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldReaderTime(t *testing.T) {
	r := newFieldReader(KindPhoto, Tree{"created_time": "2014-05-01T10:15:00+0000"})
	got := r.time("created_time")
	require.NoError(t, r.err)
	assert.True(t, got.Equal(time.Date(2014, 5, 1, 10, 15, 0, 0, time.UTC)))

	r = newFieldReader(KindPhoto, Tree{"created_time": "not-a-date"})
	r.time("created_time")
	require.ErrorIs(t, r.err, ErrMappingFailed)
	var mErr *MappingError
	require.ErrorAs(t, r.err, &mErr)
	assert.Equal(t, "created_time", mErr.Field)
}

func TestFieldReaderTimeOffset(t *testing.T) {
	r := newFieldReader(KindPhoto, Tree{"t": "2014-05-01T12:15:00+0200"})
	got := r.time("t")
	require.NoError(t, r.err)
	assert.True(t, got.Equal(time.Date(2014, 5, 1, 10, 15, 0, 0, time.UTC)))
}

func TestFieldReaderOptional(t *testing.T) {
	r := newFieldReader(KindPhoto, Tree{"null": nil, "s": "x"})

	assert.Nil(t, r.optStr("missing"))
	assert.Nil(t, r.optStr("null"))
	assert.Nil(t, r.optTime("missing"))
	assert.Nil(t, r.optObject("null"))
	require.NotNil(t, r.optStr("s"))
	assert.Equal(t, "x", *r.optStr("s"))

	list := r.list("missing")
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.NoError(t, r.err)
}

func TestFieldReaderNumbers(t *testing.T) {
	r := newFieldReader(KindPhoto, Tree{"a": 12.9, "b": -3.7, "c": float64(1 << 40)})

	assert.Equal(t, 12, r.integer("a"))
	assert.Equal(t, -3, r.integer("b"))
	assert.Equal(t, int64(1<<40), r.int64("c"))
	assert.NoError(t, r.err)
}

func TestFieldReaderNumbersOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"too large", 1e19},
		{"too small", -1e30},
		{"not a number", math.NaN()},
		{"infinite", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFieldReader(KindPhoto, Tree{"size": tt.value})
			assert.Zero(t, r.int64("size"))
			var mErr *MappingError
			require.ErrorAs(t, r.err, &mErr)
			assert.Equal(t, "size", mErr.Field)

			r = newFieldReader(KindPhoto, Tree{"count": tt.value})
			assert.Zero(t, r.integer("count"))
			assert.ErrorIs(t, r.err, ErrMappingFailed)
		})
	}
}

func TestFieldReaderFirstErrorWins(t *testing.T) {
	r := newFieldReader(KindPhoto, Tree{"count": "three", "flag": "yes"})

	r.integer("count")
	r.boolean("flag")
	r.str("missing")

	var mErr *MappingError
	require.ErrorAs(t, r.err, &mErr)
	assert.Equal(t, "count", mErr.Field)
	assert.Equal(t, KindPhoto, mErr.Kind)
}

func TestFieldReaderWrongTypes(t *testing.T) {
	tests := []struct {
		name string
		read func(r *fieldReader)
	}{
		{"str", func(r *fieldReader) { r.str("v") }},
		{"optStr", func(r *fieldReader) { r.optStr("v") }},
		{"boolean", func(r *fieldReader) { r.boolean("v") }},
		{"object", func(r *fieldReader) { r.object("v") }},
		{"list", func(r *fieldReader) { r.list("v") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFieldReader(KindPhoto, Tree{"v": 1.0})
			if tt.name == "str" || tt.name == "optStr" {
				r = newFieldReader(KindPhoto, Tree{"v": true})
			}
			tt.read(r)
			assert.ErrorIs(t, r.err, ErrMappingFailed)
		})
	}
}

func TestFieldReaderNestedPath(t *testing.T) {
	r := newFieldReader(KindPhoto, Tree{"from": map[string]any{"id": "u1"}})
	user := r.readFrom()

	require.Error(t, r.err)
	var mErr *MappingError
	require.ErrorAs(t, r.err, &mErr)
	assert.Equal(t, "from.name", mErr.Field)
	assert.NotNil(t, user)
}

func TestDiscriminator(t *testing.T) {
	assert.True(t, discriminator(Tree{"type": "photo"}, KindPhoto))
	assert.False(t, discriminator(Tree{"type": "album"}, KindPhoto))
	assert.False(t, discriminator(Tree{}, KindPhoto))
	assert.False(t, discriminator(Tree{"type": 1.0}, KindPhoto))
}
