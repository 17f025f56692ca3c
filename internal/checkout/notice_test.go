package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoticeFeed_KeepsMostRecent(t *testing.T) {
	f := newNoticeFeed(2)
	f.push(Notice{Title: "one"})
	f.push(Notice{Title: "two"})
	f.push(Notice{Title: "three"})

	got := f.drain()
	assert.Len(t, got, 2)
	assert.Equal(t, "two", got[0].Title)
	assert.Equal(t, "three", got[1].Title)

	empty := f.drain()
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
