package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	t.Run("single literal", func(t *testing.T) {
		segs, err := parsePattern("/about/us")
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, segLiteral, segs[0].kind)
		assert.Equal(t, "/about/us", segs[0].text)
	})

	t.Run("escape yields the escaped character", func(t *testing.T) {
		segs, err := parsePattern(`/\:x`)
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, "/:x", segs[0].text)
	})

	t.Run("escaped backslash", func(t *testing.T) {
		segs, err := parsePattern(`/a\\b`)
		require.NoError(t, err)
		assert.Equal(t, `/a\b`, segs[0].text)
	})

	t.Run("parameter splits the literal", func(t *testing.T) {
		segs, err := parsePattern("/user/:id")
		require.NoError(t, err)
		require.Len(t, segs, 2)
		assert.Equal(t, "/user/", segs[0].text)
		assert.Equal(t, segParam, segs[1].kind)
		assert.Equal(t, "id", segs[1].name)
		assert.Nil(t, segs[1].re)
		assert.False(t, segs[1].multi)
		assert.Zero(t, segs[1].stage)
	})

	t.Run("parameter with regex", func(t *testing.T) {
		segs, err := parsePattern(`/user/:id(\d+)`)
		require.NoError(t, err)
		require.Len(t, segs, 2)
		require.NotNil(t, segs[1].re)
		assert.Equal(t, `\d+`, segs[1].reSrc)
		assert.Equal(t, []int{0, 2}, segs[1].re.FindStringIndex("42abc"))
		assert.Nil(t, segs[1].re.FindStringIndex("abc"))
	})

	t.Run("regex tracks nested parens", func(t *testing.T) {
		segs, err := parsePattern(`/x/:v((a|b)+)`)
		require.NoError(t, err)
		assert.Equal(t, `(a|b)+`, segs[1].reSrc)
	})

	t.Run("regex honours escaped parens", func(t *testing.T) {
		segs, err := parsePattern(`/x/:v(\()`)
		require.NoError(t, err)
		assert.Equal(t, `\(`, segs[1].reSrc)
	})

	t.Run("stage suffix", func(t *testing.T) {
		segs, err := parsePattern(`/p/:id$-10`)
		require.NoError(t, err)
		assert.Equal(t, -10, segs[1].stage)
	})

	t.Run("stage with regex and multi", func(t *testing.T) {
		segs, err := parsePattern(`/p/:id$7(\d+)*`)
		require.NoError(t, err)
		assert.Equal(t, 7, segs[1].stage)
		assert.Equal(t, `\d+`, segs[1].reSrc)
		assert.True(t, segs[1].multi)
	})

	t.Run("multi suffix", func(t *testing.T) {
		segs, err := parsePattern("/files/:rest*")
		require.NoError(t, err)
		assert.True(t, segs[1].multi)
	})

	t.Run("adjacent parameters with regex on the left", func(t *testing.T) {
		segs, err := parsePattern(`/user/:short(\d{1,2}):rest`)
		require.NoError(t, err)
		require.Len(t, segs, 3)
		assert.Equal(t, "short", segs[1].name)
		assert.Equal(t, "rest", segs[2].name)
	})
}

func TestParsePatternErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty pattern", ""},
		{"missing leading slash", "about"},
		{"parameter at pattern start", ":id"},
		{"adjacent parameters without regex", "/user/:a:b"},
		{"unterminated regex", `/x/:v(\d+`},
		{"empty regex", "/x/:v()"},
		{"empty parameter name", "/x/:"},
		{"stage without integer", "/x/:v$"},
		{"stage with bare minus", "/x/:v$-"},
		{"bad regex", "/x/:v([)"},
		{"trailing escape", `/x\`},
		{"multi without regex not last", "/x/:rest*/more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePattern(tt.pattern)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.pattern, syntaxErr.Pattern)
		})
	}
}

func TestParsePatternDeterministic(t *testing.T) {
	t.Run("same pattern compiles to the same segments", func(t *testing.T) {
		a, err := parsePattern(`/a/:b(\w+)/c/:d*`)
		require.NoError(t, err)
		b, err := parsePattern(`/a/:b(\w+)/c/:d*`)
		require.NoError(t, err)

		require.Len(t, b, len(a))
		for i := range a {
			assert.Equal(t, a[i].kind, b[i].kind)
			assert.Equal(t, a[i].text, b[i].text)
			assert.Equal(t, a[i].name, b[i].name)
			assert.Equal(t, a[i].reSrc, b[i].reSrc)
			assert.Equal(t, a[i].multi, b[i].multi)
			assert.Equal(t, a[i].stage, b[i].stage)
		}
	})
}
