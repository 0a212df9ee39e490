package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAge_AnniversaryBoundary(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	// birthday was yesterday: already 30
	assert.Equal(t, 30, Age(now.AddDate(-30, 0, -1), now))
	// birthday is tomorrow: still 29
	assert.Equal(t, 29, Age(now.AddDate(-30, 0, 1), now))
	// birthday is today: 30
	assert.Equal(t, 30, Age(now.AddDate(-30, 0, 0), now))
}

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "Laki-laki", GenderLabel("male"))
	assert.Equal(t, "Perempuan", GenderLabel("female"))
	// binary mapping: anything unexpected gets the female label
	assert.Equal(t, "Perempuan", GenderLabel("other"))
	assert.Equal(t, "Perempuan", GenderLabel(""))
}

func TestFileURL(t *testing.T) {
	assert.Nil(t, FileURL("http://cdn.example.org/storage", ""))

	url := FileURL("http://cdn.example.org/storage/", "/documents/ktp/1.jpg")
	assert.NotNil(t, url)
	assert.Equal(t, "http://cdn.example.org/storage/documents/ktp/1.jpg", *url)
}

func TestLastPosition(t *testing.T) {
	closed := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	positions := []Position{
		{ID: 1, Name: "Sekretaris", EndDate: &closed},
		{ID: 2, Name: "Ketua", EndDate: nil},
	}
	last := LastPosition(positions)
	assert.NotNil(t, last)
	assert.Equal(t, uint64(2), last.ID)

	assert.Nil(t, LastPosition(nil))
	assert.Nil(t, LastPosition([]Position{{ID: 1, EndDate: &closed}}))

	// invariant violated: two open positions, first encountered wins
	both := []Position{
		{ID: 3, Name: "Bendahara", EndDate: nil},
		{ID: 4, Name: "Ketua", EndDate: nil},
	}
	assert.Equal(t, uint64(3), LastPosition(both).ID)
}
