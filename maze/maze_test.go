package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPerfect(t *testing.T, m *Maze) {
	t.Helper()

	w, h := m.Width(), m.Height()
	assert.Equal(t, w*h-1, m.OpenPassages(), "open passages")

	reached, err := m.Reachable(Position{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, w*h, reached, "reachable cells")

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for _, d := range Directions {
				wall, err := m.IsWall(x, y, d)
				require.NoError(t, err)
				n := Position{X: x, Y: y}.Step(d)
				if !m.InBound(n.X, n.Y) {
					assert.True(t, wall, "boundary wall at (%d,%d) %s", x, y, d)
					continue
				}
				mirror, err := m.IsWall(n.X, n.Y, d.Opposite())
				require.NoError(t, err)
				assert.Equal(t, wall, mirror, "wall symmetry at (%d,%d) %s", x, y, d)
			}
		}
	}
}

func TestGeneratePerfectMaze(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {1, 7}, {6, 1}, {2, 2}, {5, 5}, {7, 7}, {9, 9}, {13, 4}}
	for _, size := range sizes {
		for seed := uint64(1); seed <= 5; seed++ {
			m, err := Generate(size.w, size.h, NewRand(seed))
			require.NoError(t, err)
			assert.Equal(t, size.w, m.Width())
			assert.Equal(t, size.h, m.Height())
			assertPerfect(t, m)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(9, 9, NewRand(42))
	require.NoError(t, err)
	b, err := Generate(9, 9, NewRand(42))
	require.NoError(t, err)
	assert.Equal(t, a.grid, b.grid)
	assert.Equal(t, a.String(), b.String())

	c, err := Generate(9, 9, NewRand(43))
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

func TestGenerateInvalidDimensions(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		m, err := Generate(size[0], size[1], NewRand(1))
		assert.ErrorIs(t, err, ErrInvalidDimensions)
		assert.Nil(t, m)
	}
}

func TestIsWallOutOfBounds(t *testing.T) {
	m, err := Generate(5, 5, NewRand(1))
	require.NoError(t, err)

	for _, p := range []Position{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		_, err := m.IsWall(p.X, p.Y, North)
		assert.ErrorIs(t, err, ErrOutOfBounds, "position %s", p)
	}

	_, err = m.IsWall(0, 0, Direction(9))
	assert.ErrorIs(t, err, ErrInvalidDirection)

	_, err = m.Reachable(Position{X: 7, Y: 7})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestParseRoundTrip(t *testing.T) {
	m, err := Generate(7, 5, NewRand(7))
	require.NoError(t, err)

	parsed, err := Parse(m.String())
	require.NoError(t, err)
	assert.Equal(t, m.grid, parsed.grid)
	assertPerfect(t, parsed)
}

func TestParseLayout(t *testing.T) {
	m, err := Parse(`
+---+---+
|       |
+---+   +
|       |
+---+---+
`)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 2, m.Height())
	assertPerfect(t, m)

	wall, _ := m.IsWall(0, 0, East)
	assert.False(t, wall)
	wall, _ = m.IsWall(0, 0, South)
	assert.True(t, wall)
	wall, _ = m.IsWall(1, 1, North)
	assert.False(t, wall)

	_, err = Parse("+--+\n|  |")
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestRenderHidesFilteredWalls(t *testing.T) {
	m, err := Parse(`
+---+---+
|       |
+---+---+
`)
	require.NoError(t, err)

	out := m.Render(map[Position]rune{{X: 0, Y: 0}: 'P'}, func(p Position, d Direction) bool {
		return p == Position{X: 1, Y: 0} && d == East
	})
	assert.Equal(t, "+   +   +\n  P     |\n+   +   +\n", out)
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		dx, dy := d.Delta()
		odx, ody := d.Opposite().Delta()
		assert.Equal(t, 0, dx+odx)
		assert.Equal(t, 0, dy+ody)
	}

	d, err := ParseDirection("W")
	require.NoError(t, err)
	assert.Equal(t, North, d)
	d, err = ParseDirection("east")
	require.NoError(t, err)
	assert.Equal(t, East, d)
	_, err = ParseDirection("up-left")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}
