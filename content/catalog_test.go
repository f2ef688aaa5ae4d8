package content

import (
	"testing"

	"MakeupBot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_RejectsEmpty(t *testing.T) {
	_, err := NewCatalog(nil)
	assert.ErrorIs(t, err, model.ErrEmptyCatalog)
}

func TestCatalog_ItemWraps(t *testing.T) {
	c, err := NewCatalog([]string{"A", "B", "C"})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "A", c.Item(0))
	assert.Equal(t, "C", c.Item(2))
	assert.Equal(t, "A", c.Item(3))
	assert.Equal(t, "B", c.Item(7))
	assert.Equal(t, "C", c.Item(-1))
}

func TestCatalog_Next(t *testing.T) {
	c, err := NewCatalog([]string{"A", "B", "C"})
	require.NoError(t, err)

	assert.Equal(t, 1, c.Next(0))
	assert.Equal(t, 0, c.Next(2))
	assert.Equal(t, 2, c.Next(4))
}

func TestCatalog_CopiesItems(t *testing.T) {
	items := []string{"A", "B"}
	c, err := NewCatalog(items)
	require.NoError(t, err)

	items[0] = "Z"
	assert.Equal(t, "A", c.Item(0))
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, len(DailyTips), c.Len())
	for i := 0; i < c.Len(); i++ {
		assert.NotEmpty(t, c.Item(i))
	}
}
