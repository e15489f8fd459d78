package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreText(t *testing.T) {
	require.Equal(t, "Score: 0", ScoreText(0))
	require.Equal(t, "Score: 17", ScoreText(17))
}

func TestCenter(t *testing.T) {
	require.Equal(t, 250, Center(600, 100))
	require.Equal(t, 0, Center(10, 10))
	require.Equal(t, -5, Center(10, 20))
}

func TestLabelsReleaseReplacedText(t *testing.T) {
	drawn := 0
	released := []string{}
	l := NewLabels(
		func(s string) string { drawn++; return "img:" + s },
		func(img string) { released = append(released, img) },
	)

	require.Equal(t, "img:Score: 0", l.Get("score", ScoreText(0)))
	require.Equal(t, "img:Score: 0", l.Get("score", ScoreText(0)))
	require.Equal(t, 1, drawn)

	for i := 1; i <= 50; i++ {
		l.Get("score", ScoreText(i))
	}
	l.Get("title", GameOverText)

	require.Equal(t, 2, l.Len())
	require.Equal(t, 52, drawn)
	require.Len(t, released, 50)
	require.Equal(t, "img:Score: 0", released[0])
	require.Equal(t, "img:Score: 49", released[49])
}
