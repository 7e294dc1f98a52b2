package escape_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriscorrea/voca/internal/charset"
	"github.com/chriscorrea/voca/internal/escape"
)

const escapedPunctuation = "!&quot;#$%&amp;&#x27;()*+,-./:;&lt;=&gt;?@[\\]^_&#x60;{|}~"

func TestHTML(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"<>&\"'`", "&lt;&gt;&amp;&quot;&#x27;&#x60;"},
		{charset.Punctuation, escapedPunctuation},
		{"<p>wonderful world</p>", "&lt;p&gt;wonderful world&lt;/p&gt;"},
		{"<span>", "&lt;span&gt;"},
		{"<p>wonderful<span>world<span/></p>", "&lt;p&gt;wonderful&lt;span&gt;world&lt;span/&gt;&lt;/p&gt;"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escape.HTML(tt.in), "HTML(%q)", tt.in)
	}
}

func TestUnescapeHTML(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"&lt;&gt;&amp;&quot;&#x27;&#x60;", "<>&\"'`"},
		{escapedPunctuation, charset.Punctuation},
		{"&lt;p&gt;wonderful world&lt;/p&gt;", "<p>wonderful world</p>"},
		{"&lt;span&gt;", "<span>"},
		{"&lt;p&gt;wonderful&lt;span&gt;world&lt;span/&gt;&lt;/p&gt;", "<p>wonderful<span>world<span/></p>"},
		{"&amp;lt;", "&lt;"},
		{"caf&eacute;", "caf\u00e9"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escape.UnescapeHTML(tt.in), "UnescapeHTML(%q)", tt.in)
	}
}

func TestHTMLRoundTrip(t *testing.T) {
	for _, s := range []string{charset.Printable, "<a href='x'>`tick`</a>", "Zażółć & gęślą"} {
		assert.Equal(t, s, escape.UnescapeHTML(escape.HTML(s)))
	}
}

func TestRegexp(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"(hours)[minutes]{seconds}", `\(hours\)\[minutes\]\{seconds\}`},
		{`-[]/{}()*+?.\^$|`, `\-\[\]\/\{\}\(\)\*\+\?\.\\\^\$\|`},
		{"gęślą", "gęślą"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escape.Regexp(tt.in), "Regexp(%q)", tt.in)
	}
}

func TestRegexpMatchesLiterally(t *testing.T) {
	subject := "cost: $5.00 (approx.) [sic]"
	re, err := regexp.Compile(escape.Regexp(subject))
	require.NoError(t, err)
	assert.True(t, re.MatchString("total "+subject))
}
