package satzbau

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	g, err := ParseGender("m")
	require.NoError(t, err)
	assert.Equal(t, Masculine, g)
	g, err = ParseGender("die")
	require.NoError(t, err)
	assert.Equal(t, Feminine, g)

	c, err := ParseCase("Dat")
	require.NoError(t, err)
	assert.Equal(t, Dative, c)

	n, err := ParseNumber("plural")
	require.NoError(t, err)
	assert.Equal(t, Plural, n)

	a, err := ParseArticleType("none")
	require.NoError(t, err)
	assert.Equal(t, NoArticle, a)
}

func TestParseEnumsInvalid(t *testing.T) {
	_, err := ParseGender("x")
	assert.True(t, errors.Is(err, ErrInvalidEnum))
	_, err = ParseCase("vocative")
	assert.True(t, errors.Is(err, ErrInvalidEnum))
	_, err = ParseNumber("dual")
	assert.True(t, errors.Is(err, ErrInvalidEnum))
	_, err = ParseArticleType("some")
	assert.True(t, errors.Is(err, ErrInvalidEnum))
}

func TestEnumStrings(t *testing.T) {
	for _, c := range Cases {
		parsed, err := ParseCase(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	for _, a := range []ArticleType{Definite, Indefinite, Negation, NoArticle} {
		parsed, err := ParseArticleType(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	assert.Equal(t, "unset", Gender(0).String())
}
