package strip_test

import (
	"testing"

	"github.com/chriscorrea/voca/internal/charset"
	"github.com/chriscorrea/voca/internal/strip"
)

func TestBOM(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"\ufeff", ""},
		{charset.Printable, charset.Printable},
		{"\ufeffsummertime sadness", "summertime sadness"},
		{`\u{FEFF}summertime sadness`, `\u{FEFF}summertime sadness`},
		{"summertime sadness", "summertime sadness"},
		{"\ufeff\ufeffdouble", "\ufeffdouble"},
	}

	for _, tt := range tests {
		if got := strip.BOM(tt.in); got != tt.want {
			t.Errorf("BOM(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "Hello world!", "Hello world!"},
		{"spaces", "  ", "  "},
		{"nested tags", `<span><a href="#">Summer</a> is nice</span>`, "Summer is nice"},
		{"bold", "<b>Hello world!</b>", "Hello world!"},
		{"attributes", `<span class="italic"><b>Hello world!</b></span>`, "Hello world!"},
		{"brackets in single quotes", `<span class='<italic>'>Hello world!</span>`, "Hello world!"},
		{"script body kept", `<script language="PHP"> echo hello </script>`, " echo hello "},
		{"quoted closer", "hello <img title='>_<'> world", "hello  world"},
		{"quoted opener", `hello <img title="<"> world`, "hello  world"},
		{"mixed quotes", `hello <img title="<foo/> <'bar'"> world`, "hello  world"},
		{
			"quotes outside tags",
			"This's a string with quotes:</html>\n\"strings in double quote\";\n'strings in single quote';\n<html>this\\line is single quoted /with\\slashes",
			"This's a string with quotes:\n\"strings in double quote\";\n'strings in single quote';\nthis\\line is single quoted /with\\slashes",
		},
		{"comment only", "<html><!-- COMMENT --></html>", ""},
		{"trailing comment", "<b>Hello world!</b><!-- Just some information -->", "Hello world!"},
		{"inner comment", `<span class="italic">Hello world!<!-- Just some information --></span>`, "Hello world!"},
		{"brackets in comment", `<!-- Small<>comment --><span class="italic"><!-- Just some information --><b>Hello world!</b></span>`, "Hello world!"},
		{"doctype", `<!doctype html><span class="italic"><!-- Just some information --><b>Hello world!</b></span>`, "Hello world!"},
		{"upper doctype", "<!DOCTYPE html><p>text</p>", "text"},
		{"leading comment", "<!-- testing --><a>text here</a>", "text here"},
		{"broken attributes", `<span style="font-family: " microsoft="" yahei="" font-size:="" 16px="">】มีมี\u0e48’ เด็กสาว</span><br />`, "】มีมี\u0e48’ เด็กสาว"},
		{"spaced opener", "< html >", "< html >"},
		{"doubled brackets", "<<>>", ""},
		{"odd names", "<a.>HtMl text</.a>", "HtMl text"},
		{"whitespace kept", "<abc>hello</abc> \t\tworld... <ppp>strip_tags_test</ppp>", "hello \t\tworld... strip_tags_test"},
		{"adjacent", "<html><b>hello</b><p>world</p></html>", "helloworld"},
		{"literal brackets", `<span class="italic"><b>He>llo</b> < world!</span>`, "He>llo < world!"},
		{"symbols", "<SCRIPT>Ω≈ç≈≈Ω</SCRIPT>", "Ω≈ç≈≈Ω"},
		{"kana", `<SCRIPT a="blah">片仮名平仮名</SCRIPT>`, "片仮名平仮名"},
		{"unterminated", "<", ""},
		{"unterminated name", "<t", ""},
		{"unterminated closer", "</", ""},
		{"unterminated closer name", "</a", ""},
		{"unterminated directive", "<!", ""},
		{"unterminated comment opener", "<!-", ""},
		{"unterminated comment", "text<!-- never closed", "text"},
		{"combining marks kept", "<i>cafe\u0301</i>", "cafe\u0301"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strip.Tags(tt.in); got != tt.want {
				t.Errorf("Tags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTagsXSS(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<img src=\"data:image/gif;base64,R0lGODlhAQABAIAAAP///wAAACwAAAAAA\u200cQABAAACAkQBADs=\"\n onload=\"$.getScript('evil.js');1<2>3\">", ""},
		{"<script>evil();</script>", "evil();"},
		{"<SCRIPT SRC=http://xss.rocks/xss.js></SCRIPT>", ""},
		{`<IMG """><SCRIPT>alert("XSS")</SCRIPT>">`, ""},
		{`<SCRIPT/XSS SRC="http://xss.rocks/xss.js"></SCRIPT>`, ""},
		{"<BODY onload!#$%&()*~+-_.,:;?@[/|\\]^`=alert(\"XSS\")>", ""},
		{`<SCRIPT/SRC="http://xss.rocks/xss.js"></SCRIPT>`, ""},
		{`<<SCRIPT>alert("XSS");//<</SCRIPT>`, ""},
		{"<SCRIPT SRC=http://xss.rocks/xss.js?< B >", ""},
		{"<SCRIPT SRC=//xss.rocks/.j>", ""},
		{`<IMG SRC="javascript:alert('XSS')"`, ""},
		{`<SCRIPT a=">" SRC="httx://xss.rocks/xss.js"></SCRIPT>`, ""},
		{`<SCRIPT =">" SRC="httx://xss.rocks/xss.js"></SCRIPT>`, ""},
		{`<SCRIPT a=">" '' SRC="httx://xss.rocks/xss.js"></SCRIPT>`, ""},
		{`<SCRIPT "a='>'" SRC="httx://xss.rocks/xss.js"></SCRIPT>`, ""},
		{"<SCRIPT a=`>` SRC=\"httx://xss.rocks/xss.js\"></SCRIPT>", "` SRC=\"httx://xss.rocks/xss.js\">"},
		{`<SCRIPT a=">'>" SRC="httx://xss.rocks/xss.js"></SCRIPT>`, ""},
		{`<SCRIPT>document.write("<SCRI");</SCRIPT>PT SRC="httx://xss.rocks/xss.js"></SCRIPT>`, `document.write("`},
	}

	for _, tt := range tests {
		if got := strip.Tags(tt.in); got != tt.want {
			t.Errorf("Tags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func BenchmarkTags(b *testing.B) {
	s := `<!doctype html><span class="italic"><!-- Just some information --><b>Hello world!</b></span>`
	for range b.N {
		_ = strip.Tags(s)
	}
}
