package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	op, err := Lookup("camel")
	require.NoError(t, err)
	assert.Equal(t, "camel", op.Name)
	assert.Equal(t, "case", op.Group)

	_, err = Lookup("sift")
	assert.True(t, errors.Is(err, ErrUnknownOperation), "Lookup error = %v", err)
	assert.ErrorContains(t, err, `"sift"`)
}

func TestOperationsWellFormed(t *testing.T) {
	ops := Operations()
	require.NotEmpty(t, ops)

	for _, op := range ops {
		t.Run(op.Name, func(t *testing.T) {
			assert.NotEmpty(t, op.Group)
			assert.NotEmpty(t, op.Short)
			require.NotNil(t, op.Apply)

			seen := map[string]bool{}
			for _, p := range op.Params {
				assert.False(t, seen[p.Name], "duplicate param %q", p.Name)
				seen[p.Name] = true
				assert.NotEmpty(t, p.Usage, "param %q has no usage", p.Name)

				_, err := coerce(p, p.Default)
				assert.NoError(t, err, "default of %q does not match its kind", p.Name)
			}

			args, err := op.Bind(nil)
			require.NoError(t, err)
			if op.Name == "token-prefix" {
				return // loads the tiktoken encoding
			}
			// every operation must cope with an empty subject and its defaults
			_, err = op.Apply(context.Background(), "", args)
			assert.NoError(t, err)
		})
	}
}

func TestOperationsSorted(t *testing.T) {
	ops := Operations()
	for i := 1; i < len(ops); i++ {
		prev, cur := ops[i-1], ops[i]
		if prev.Group > cur.Group || (prev.Group == cur.Group && prev.Name >= cur.Name) {
			t.Errorf("Operations() not sorted at %d: %s/%s before %s/%s", i, prev.Group, prev.Name, cur.Group, cur.Name)
		}
	}
}

func TestOperationsCoverPackages(t *testing.T) {
	want := []string{
		"chars", "graphemes", "code-points", "words", "split",
		"char-at", "grapheme-at", "code-point-at", "first", "last", "slice", "substr", "substring",
		"truncate", "prune", "min", "max", "foreign-key", "after", "after-last", "before", "before-last",
		"lower", "upper", "capitalize", "decapitalize", "upper-first", "lower-first", "swap",
		"camel", "pascal", "snake", "shouty-snake", "kebab", "shouty-kebab", "train", "title",
		"count", "count-substrings", "count-words", "count-unique-words", "count-where", "token-prefix",
		"escape-html", "unescape-html", "escape-regexp",
		"index-of", "last-index-of", "index-all", "search", "occurrences",
		"pad", "pad-left", "pad-right", "zfill", "repeat", "insert", "splice", "reverse", "reverse-grapheme",
		"trim", "trim-left", "trim-right", "tr", "finish", "start", "expand-tabs", "expand-spaces",
		"latinise", "slugify", "replace", "replace-all", "word-wrap",
		"starts-with", "ends-with", "includes", "matches", "query",
		"is-alpha", "is-alpha-digit", "is-blank", "is-digit", "is-empty", "is-numeric",
		"is-camel-case", "is-pascal-case", "is-snake-case", "is-shouty-snake-case", "is-kebab-case",
		"is-shouty-kebab-case", "is-train-case", "is-title", "is-capitalize", "is-decapitalize",
		"is-lower-case", "is-upper-case", "is-lower-first", "is-upper-first", "is-foreign-key",
		"strip-tags", "strip-bom",
	}
	for _, name := range want {
		_, err := Lookup(name)
		assert.NoError(t, err, "operation %q is not registered", name)
	}
	assert.Len(t, Operations(), len(want))
}

func TestBind(t *testing.T) {
	op, err := Lookup("truncate")
	require.NoError(t, err)

	tests := []struct {
		name    string
		args    Args
		want    Args
		wantErr string
	}{
		{"defaults", nil, Args{"length": 0, "suffix": "..."}, ""},
		{"typed values", Args{"length": 7, "suffix": "~"}, Args{"length": 7, "suffix": "~"}, ""},
		{"string parsed as int", Args{"length": "12"}, Args{"length": 12, "suffix": "..."}, ""},
		{"bad int", Args{"length": "twelve"}, nil, `parameter "length"`},
		{"wrong type", Args{"suffix": 3}, nil, "wants string, got int"},
		{"unknown parameter", Args{"width": 3}, nil, `no parameter "width"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := op.Bind(tt.args)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBindBool(t *testing.T) {
	op, err := Lookup("capitalize")
	require.NoError(t, err)

	args, err := op.Bind(Args{"rest-to-lower": "true"})
	require.NoError(t, err)
	assert.True(t, args.Bool("rest-to-lower"))

	_, err = op.Bind(Args{"rest-to-lower": "sometimes"})
	assert.Error(t, err)
}

func TestArgsGetters(t *testing.T) {
	a := Args{"s": "gravity", "n": 3, "b": true}
	assert.Equal(t, "gravity", a.String("s"))
	assert.Equal(t, 3, a.Int("n"))
	assert.True(t, a.Bool("b"))

	// missing or mistyped values read as zero
	assert.Equal(t, "", a.String("n"))
	assert.Equal(t, 0, a.Int("missing"))
	assert.False(t, a.Bool("s"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "string", String.String())
	assert.Equal(t, "int", Int.String())
	assert.Equal(t, "bool", Bool.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	op := Operation{Name: "twice", Group: "test", Short: "twice"}
	assert.Panics(t, func() { newRegistry([]Operation{op, op}) })
}
