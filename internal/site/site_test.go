package site

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnviron(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("PYTHONPATH", strings.Join([]string{"/a", "", "/b"}, sep))

	sp := FromEnviron()
	assert.Equal(t, []string{"/a", "/b"}, sp.Dirs(), "empty segments are dropped")
}

func TestFromEnvironUnset(t *testing.T) {
	t.Setenv("PYTHONPATH", "")

	sp := FromEnviron()
	assert.Empty(t, sp.Dirs())
	assert.Equal(t, 0, sp.Len())
}

func TestNewSearchPathCopiesInput(t *testing.T) {
	seed := []string{"/a"}
	sp := NewSearchPath(seed...)
	seed[0] = "/mutated"
	assert.Equal(t, []string{"/a"}, sp.Dirs())
}
