package ipc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputResponseJSON(t *testing.T) {
	data, err := json.Marshal(OutputResponse{
		Outputs:      []string{"WL-1"},
		OutputsFound: 1,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"outputs":["WL-1"],"outputs_found":1}`, string(data))
}

func TestWindowsResponseJSON(t *testing.T) {
	data, err := json.Marshal(WindowsResponse{Windows: []WindowInfo{
		{Title: "foot", X: 1, Y: 2, Width: 3, Height: 4, Activated: true, Visible: true},
	}})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"windows":[{"title":"foot","x":1,"y":2,"width":3,"height":4,"activated":true,"visible":true}]}`,
		string(data))
}
