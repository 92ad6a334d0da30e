package optional

import (
	"encoding/json"
	"testing"

	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Comment Value[string] `json:"comment"`
	Rating  Value[int]    `json:"rating"`
}

func TestValue_AbsentNullAndSet(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"comment": null}`), &p))

	assert.True(t, p.Comment.IsSet())
	assert.True(t, p.Comment.IsNull())
	_, ok := p.Comment.Get()
	assert.False(t, ok)

	assert.False(t, p.Rating.IsSet())
	assert.False(t, p.Rating.IsNull())
	assert.Nil(t, p.Rating.Ptr())
}

func TestValue_Present(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"rating": 4, "comment": "fine"}`), &p))

	r, ok := p.Rating.Get()
	assert.True(t, ok)
	assert.Equal(t, 4, r)
	assert.Equal(t, "fine", *p.Comment.Ptr())
}

func TestValue_InvalidType(t *testing.T) {
	var p patch
	assert.Error(t, json.Unmarshal([]byte(`{"rating": "five"}`), &p))
}

func TestValue_Marshal(t *testing.T) {
	b, err := json.Marshal(patch{Comment: Of("ok"), Rating: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"comment":"ok","rating":null}`, string(b))
}

func TestNonNull(t *testing.T) {
	v, ok, err := NonNull(Of("x"), "fullname")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok, err = NonNull(Value[string]{}, "fullname")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = NonNull(Null[string](), "fullname")
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	assert.EqualError(t, err, "fullname cannot be null")
}
