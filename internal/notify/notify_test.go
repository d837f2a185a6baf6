package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminal(&buf)

	n.Success("Success", "User added successfully")
	n.Error("Error", "Server unavailable")

	require.Equal(t, "[ok] Success: User added successfully\n[error] Error: Server unavailable\n", buf.String())
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}

	r.Success("Success", "done")
	r.Error("Error", "boom")
	r.Error("Error", "again")

	require.Len(t, r.Notices, 3)
	require.Len(t, r.Errors(), 2)
	require.Equal(t, "boom", r.Errors()[0].Message)
}
