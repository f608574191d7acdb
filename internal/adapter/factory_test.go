package adapter

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPromptUI(t *testing.T) {
	assert.IsType(t, &TUIPromptUI{}, NewPromptUI(true))
	assert.IsType(t, &StaticPromptUI{}, NewPromptUI(false))
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestIsTTY_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}

	defer func() { _ = f.Close() }()

	assert.False(t, IsTTY(f), "a regular file is not a terminal")
}
