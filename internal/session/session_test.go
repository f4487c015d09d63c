package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateAndGet(t *testing.T) {
	m := NewManager()

	st := m.Create()
	require.NotEmpty(t, st.ID)
	assert.Empty(t, st.SelectedCategory)

	got, ok := m.Get(st.ID)
	require.True(t, ok)
	assert.Equal(t, st, got)

	_, ok = m.Get("nonexistent")
	assert.False(t, ok)
}

func TestApplyReplacesOnlyNamedFields(t *testing.T) {
	m := NewManager()
	st := m.Create()

	got, ok := m.Apply(st.ID, Update{
		SelectedCategory: strPtr("plumbing"),
		SearchTerm:       strPtr("geyser"),
	})
	require.True(t, ok)
	assert.Equal(t, "plumbing", got.SelectedCategory)
	assert.Equal(t, "geyser", got.SearchTerm)
	assert.Empty(t, got.SelectedArtisan)

	// a later partial update leaves the other fields alone
	got, ok = m.Apply(st.ID, Update{SelectedArtisan: strPtr("a1")})
	require.True(t, ok)
	assert.Equal(t, "plumbing", got.SelectedCategory)
	assert.Equal(t, "a1", got.SelectedArtisan)

	// clearing uses an explicit empty value, not nil
	got, ok = m.Apply(st.ID, Update{SelectedCategory: strPtr("")})
	require.True(t, ok)
	assert.Empty(t, got.SelectedCategory)
}

func TestApplyUnknownSession(t *testing.T) {
	m := NewManager()
	_, ok := m.Apply("nonexistent", Update{SearchTerm: strPtr("x")})
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	m := NewManager()
	st := m.Create()

	assert.True(t, m.Delete(st.ID))
	assert.False(t, m.Delete(st.ID))
	assert.Equal(t, 0, m.Count())
}

func TestSessionsAreIsolated(t *testing.T) {
	m := NewManager()
	first := m.Create()
	second := m.Create()

	_, ok := m.Apply(first.ID, Update{SearchTerm: strPtr("plumber")})
	require.True(t, ok)

	got, ok := m.Get(second.ID)
	require.True(t, ok)
	assert.Empty(t, got.SearchTerm)
}

func TestConcurrentUpdates(t *testing.T) {
	m := NewManager()
	st := m.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Apply(st.ID, Update{SearchTerm: strPtr("term")})
			_, _ = m.Get(st.ID)
		}()
	}
	wg.Wait()

	got, ok := m.Get(st.ID)
	require.True(t, ok)
	assert.Equal(t, "term", got.SearchTerm)
}
