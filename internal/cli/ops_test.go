package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leibniz-ad/leibniz/internal/op"
)

func TestOpsText(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewOpsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "OPCODE")
	assert.Contains(t, output, "Add")
	assert.Contains(t, output, "PrintDebug")
	assert.Contains(t, output, "fmin(x,y)")
	assert.Contains(t, output, "(x>=0)")

	// Header plus one line per operation.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.Len(t, lines, 1+int(op.Count))
}

func TestOpsJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewOpsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	var infos []OpInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	require.Len(t, infos, int(op.Count))

	add := infos[0]
	assert.Equal(t, 0, add.Opcode)
	assert.Equal(t, "Add", add.Name)
	assert.Equal(t, 2, add.Arity)
	assert.True(t, add.Commutative)
	assert.True(t, add.ZeroBoth)
	assert.False(t, add.ZeroLeft)
	assert.Equal(t, "(x+y)", add.Render)

	last := infos[len(infos)-1]
	assert.Equal(t, 27, last.Opcode)
	assert.Equal(t, "PrintDebug", last.Name)
	assert.Equal(t, "printme(x,y)", last.Render)
}

// TestOpsJSONOpcodesSequential guards the listing against reordering: the
// opcode column must be the array index.
func TestOpsJSONOpcodesSequential(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewOpsCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	var infos []OpInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	for i, info := range infos {
		assert.Equal(t, i, info.Opcode)
	}
}

func TestOpsRejectsArguments(t *testing.T) {
	cmd := NewOpsCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	err := cmd.Execute()
	require.Error(t, err)
}
