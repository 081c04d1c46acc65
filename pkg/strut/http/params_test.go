package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(t *testing.T) *Request {
	t.Helper()

	req, err := NewRequest(&staticSource{}, nil, Options{URI: "/", Method: "GET"})
	require.NoError(t, err)

	return req
}

func TestAddParameter(t *testing.T) {
	req := newTestRequest(t)

	set, err := req.AddParameter("x", 1, true)
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, 1, req.Param("x"))

	// Overwrite disabled on an existing key is a no-op.
	set, err = req.AddParameter("x", 2, false)
	require.NoError(t, err)
	assert.False(t, set)
	assert.Equal(t, 1, req.Param("x"))

	// Overwrite enabled replaces the value.
	set, err = req.AddParameter("x", 2, true)
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, 2, req.Param("x"))
}

func TestAddParameter_InvalidName(t *testing.T) {
	req := newTestRequest(t)

	set, err := req.AddParameter("", 1, true)

	assert.False(t, set)
	require.ErrorAs(t, err, &ErrorInvalidParam{})
}

func TestAddParameters(t *testing.T) {
	req := newTestRequest(t)

	err := req.AddParameters(map[string]any{"a": 1, "b": "two"}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, req.Param("a"))
	assert.Equal(t, "two", req.Param("b"))

	// String-valued maps iterate the same way.
	err = req.AddParameters(map[string]string{"c": "three"}, true)
	require.NoError(t, err)
	assert.Equal(t, "three", req.Param("c"))
}

func TestAddParameters_Struct(t *testing.T) {
	req := newTestRequest(t)

	src := struct {
		Name string
		Age  int

		hidden string
	}{Name: "x", Age: 3, hidden: "ignored"}

	require.NoError(t, req.AddParameters(src, true))
	assert.Equal(t, "x", req.Param("Name"))
	assert.Equal(t, 3, req.Param("Age"))
	assert.Nil(t, req.Param("hidden"))

	// Pointers to iterable sources are followed.
	require.NoError(t, req.AddParameters(&src, true))
}

func TestAddParameters_ScalarSource(t *testing.T) {
	req := newTestRequest(t)

	for i, source := range []any{5, "text", 1.5, true, nil} {
		err := req.AddParameters(source, true)

		require.Error(t, err, "TEST[%d], Failed.", i)

		var invalid ErrorInvalidSource
		assert.ErrorAs(t, err, &invalid, "TEST[%d], Failed.", i)
	}
}

func TestAddParameters_NoOverwriteKeepsEarlierValue(t *testing.T) {
	req := newTestRequest(t)

	require.NoError(t, req.AddParameters(map[string]any{"a": 1}, true))
	require.NoError(t, req.AddParameters(map[string]any{"a": 2, "b": 3}, false))

	assert.Equal(t, 1, req.Param("a"))
	assert.Equal(t, 3, req.Param("b"))
}
