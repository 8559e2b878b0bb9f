package parser

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMarkup(t *testing.T) {
	testCases := map[string]struct {
		input    string
		expected string
	}{
		"plain":      {input: "  meet me  ", expected: "meet me"},
		"emphasis":   {input: "I <em>meet</em> you", expected: "I meet you"},
		"entities":   {input: "salt &amp; pepper", expected: "salt & pepper"},
		"whitespace": {input: "one\n\t two", expected: "one two"},
		"empty":      {input: "", expected: ""},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stripMarkup(tc.input))
		})
	}
}

func TestEmphasized(t *testing.T) {
	assert.Equal(t, []string{"meet", "half way"}, emphasized("I <em>meet</em> you <em> half  way</em>."))
	assert.Nil(t, emphasized("no emphasis"))
}

func TestNodeText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<li><i class="graytxt">j'</i><i class="verbtxt">ai</i><script>x()</script><br>eu</li>`,
	))
	require.NoError(t, err)
	assert.Equal(t, "j'ai eu", nodeText(doc.Find("li")))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, unique([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, unique(nil))
}
