package adapter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjx666/abracadabra/internal/editor"
	"github.com/tjx666/abracadabra/internal/model"
)

func writeFixture(t *testing.T, name, content string) model.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return model.Path(path)
}

func TestNewFileEditor_ReadsTheFile(t *testing.T) {
	path := writeFixture(t, "sample.ts", "const a = 1;\n")

	ed, err := NewFileEditor(path, model.Cursor(0, 0), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, model.Code("const a = 1;\n"), ed.Code())
	assert.Equal(t, model.Cursor(0, 0), ed.Selection())
}

func TestNewFileEditor_MissingFile(t *testing.T) {
	_, err := NewFileEditor(model.Path(filepath.Join(t.TempDir(), "nope.ts")), model.Cursor(0, 0), &bytes.Buffer{})
	require.Error(t, err)
}

func TestFileEditor_WriteToStream(t *testing.T) {
	path := writeFixture(t, "sample.ts", "const a = 1;\n")
	out := &bytes.Buffer{}

	ed, err := NewFileEditor(path, model.Cursor(0, 0), out)
	require.NoError(t, err)

	require.NoError(t, ed.Write("const a = 2;\n", nil))

	assert.Equal(t, "const a = 2;\n", out.String())

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, "const a = 1;\n", string(content), "file must stay untouched without write-back")
}

func TestFileEditor_WriteBack(t *testing.T) {
	path := writeFixture(t, "sample.ts", "const a = 1;\n")
	out := &bytes.Buffer{}

	ed, err := NewFileEditor(path, model.Cursor(0, 0), out, WithWriteBack())
	require.NoError(t, err)

	require.NoError(t, ed.Write("const a = 2;\n", nil))

	assert.Empty(t, out.String())

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, "const a = 2;\n", string(content))
}

func TestFileEditor_ReadThenWrite(t *testing.T) {
	path := writeFixture(t, "sample.ts", "if (a == b) {}\n")
	out := &bytes.Buffer{}

	ed, err := NewFileEditor(path, model.Cursor(0, 4), out)
	require.NoError(t, err)

	sel := model.NewSelection(model.NewPosition(0, 4), model.NewPosition(0, 10))
	err = ed.ReadThenWrite(sel, func(fragment model.Code) []model.Modification {
		assert.Equal(t, model.Code("a == b"), fragment)

		return []model.Modification{{Code: "!(a != b)", Selection: fragment.FullSelection()}}
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "if (!(a != b)) {}\n", out.String())
}

func TestFileEditor_SelectAll(t *testing.T) {
	path := writeFixture(t, "sample.ts", "doA();\ndoB();\n")

	ed, err := NewFileEditor(path, model.Cursor(0, 0), &bytes.Buffer{})
	require.NoError(t, err)

	ed.SelectAll()

	assert.Equal(t, ed.Code().FullSelection(), ed.Selection())
}

func TestFileEditor_ShowErrorRecordsAndRenders(t *testing.T) {
	path := writeFixture(t, "sample.ts", "doA();\n")
	errOut := &bytes.Buffer{}

	ed, err := NewFileEditor(path, model.Cursor(0, 0), &bytes.Buffer{}, WithErrorOutput(errOut))
	require.NoError(t, err)

	assert.Nil(t, ed.ReportedError())

	ed.ShowError(editor.DidNotFindDeadCode)

	require.NotNil(t, ed.ReportedError())
	assert.Equal(t, editor.DidNotFindDeadCode, *ed.ReportedError())
	assert.Contains(t, errOut.String(), "didn't find dead code")
}

func TestFileEditor_WriteIn(t *testing.T) {
	path := writeFixture(t, "sample.ts", "doA();\n")
	other := model.Path(filepath.Join(t.TempDir(), "other.ts"))

	ed, err := NewFileEditor(path, model.Cursor(0, 0), &bytes.Buffer{})
	require.NoError(t, err)

	require.NoError(t, ed.WriteIn(other, "doB();\n"))

	content, err := os.ReadFile(string(other))
	require.NoError(t, err)
	assert.Equal(t, "doB();\n", string(content))

	got, err := ed.CodeOf(other)
	require.NoError(t, err)
	assert.Equal(t, model.Code("doB();\n"), got)
}

func TestFileEditor_PromptsDefaultToStatic(t *testing.T) {
	path := writeFixture(t, "sample.ts", "doA();\n")

	ed, err := NewFileEditor(path, model.Cursor(0, 0), &bytes.Buffer{})
	require.NoError(t, err)

	choice, err := ed.AskUserChoice(context.Background(), []editor.Choice{{Label: "one"}})
	require.NoError(t, err)
	assert.Nil(t, choice, "static prompts cancel choices")

	input, err := ed.AskUserInput(context.Background(), "fallback")
	require.NoError(t, err)
	require.NotNil(t, input)
	assert.Equal(t, "fallback", *input)
}

func TestFileEditor_DelegateIsUnavailable(t *testing.T) {
	path := writeFixture(t, "sample.ts", "doA();\n")

	ed, err := NewFileEditor(path, model.Cursor(0, 0), &bytes.Buffer{})
	require.NoError(t, err)

	require.Error(t, ed.Delegate(context.Background(), editor.CommandRenameSymbol))
}

func TestFileEditor_AskForPositionsConfirmsUnchanged(t *testing.T) {
	path := writeFixture(t, "sample.ts", "doA();\n")

	ed, err := NewFileEditor(path, model.Cursor(0, 0), &bytes.Buffer{})
	require.NoError(t, err)

	given := []editor.SelectedPosition{{Label: "first"}, {Label: "second"}}

	var confirmed []editor.SelectedPosition

	err = ed.AskForPositions(context.Background(), given, func(positions []editor.SelectedPosition) error {
		confirmed = positions
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, given, confirmed)
}
