package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	l, err := Parse("test.data", strings.NewReader(`
# determiners
the    Det
The    Det   # case folds
dog    N
big-ish Adj
`))
	require.NoError(t, err)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"big-ish", "dog", "the"}, l.Words())
	assert.Equal(t, []string{"Adj", "Det", "N"}, l.Preterminals())

	tag, err := l.TagOf("dog")
	require.NoError(t, err)
	assert.Equal(t, "N", tag)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("bad.data", strings.NewReader("the Det\ndog\n"))

	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 2, lerr.Line)
	assert.Equal(t, `lexicon: bad.data:2: problem parsing "dog"`, lerr.Error())
}

func TestTagOf_Unknown(t *testing.T) {
	l := New()
	l.Add("the", "Det")

	_, err := l.TagOf("cat")
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "cat", lerr.Word)
}

func TestAdd_LastWins(t *testing.T) {
	l := New()
	l.Add("that", "Det")
	l.Add("that", "RelPro")

	tag, err := l.TagOf("that")
	require.NoError(t, err)
	assert.Equal(t, "RelPro", tag)
	assert.Equal(t, []string{"RelPro"}, l.Preterminals())
}
