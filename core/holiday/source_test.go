package holiday_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"holiday-manager/core/holiday"
	"holiday-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objectChannel(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestSource_ListPacks(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "holiday-packs").Return(true, nil)
	client.On("ListObjects", mock.Anything, "holiday-packs", mock.Anything).
		Return(objectChannel("uk.json", "README.md", "us.json"))

	ukPack := `{
	  "id": "8f9f2d3e-0000-4000-8000-000000000001",
	  "category": "Public Holidays",
	  "holidays": [
	    {"name": "Boxing Day", "date": "2025-12-26", "location": ["LON"]}
	  ]
	}`
	usPack := `{
	  "id": "8f9f2d3e-0000-4000-8000-000000000002",
	  "category": "Public Holidays",
	  "holidays": [
	    {"name": "Independence Day", "date": "2025-07-04", "location": ["NYC"]}
	  ]
	}`
	client.On("GetObject", mock.Anything, "holiday-packs", "uk.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(ukPack))), nil)
	client.On("GetObject", mock.Anything, "holiday-packs", "us.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(usPack))), nil)

	source := holiday.NewSource(client, "holiday-packs")
	packs, err := source.ListPacks(context.Background())
	require.NoError(t, err)
	require.Len(t, packs, 2, "non-JSON objects are skipped")

	assert.Equal(t, "Public Holidays", packs[0].Category)
	require.Len(t, packs[0].Holidays, 1)
	assert.Equal(t, "Boxing Day", packs[0].Holidays[0].Name)
	assert.True(t, packs[0].Holidays[0].OutOfOffice, "default applies through decode")
	client.AssertNotCalled(t, "GetObject", mock.Anything, "holiday-packs", "README.md", mock.Anything)
}

func TestSource_MissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "holiday-packs").Return(false, nil)

	source := holiday.NewSource(client, "holiday-packs")
	_, err := source.ListPacks(context.Background())
	assert.ErrorIs(t, err, holiday.ErrSourceUnavailable)
}

func TestSource_MalformedPack(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "holiday-packs").Return(true, nil)
	client.On("ListObjects", mock.Anything, "holiday-packs", mock.Anything).
		Return(objectChannel("bad.json"))
	client.On("GetObject", mock.Anything, "holiday-packs", "bad.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"id":"x","holidays":[{"date":"2025-01-01"}]}`))), nil)

	source := holiday.NewSource(client, "holiday-packs")
	_, err := source.ListPacks(context.Background())
	assert.ErrorIs(t, err, holiday.ErrMalformedRecord)
}

// countingLister counts how often the underlying source is hit.
type countingLister struct {
	calls int
	packs []holiday.Pack
}

func (c *countingLister) ListPacks(context.Context) ([]holiday.Pack, error) {
	c.calls++
	return c.packs, nil
}

func TestCachedSource(t *testing.T) {
	t.Run("ReusesWithinTTL", func(t *testing.T) {
		inner := &countingLister{packs: []holiday.Pack{{ID: "p1"}}}
		cached := holiday.NewCachedSource(inner, time.Second)

		for i := 0; i < 3; i++ {
			packs, err := cached.ListPacks(context.Background())
			require.NoError(t, err)
			assert.Len(t, packs, 1)
		}
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("ZeroTTLPassesThrough", func(t *testing.T) {
		inner := &countingLister{}
		cached := holiday.NewCachedSource(inner, 0)

		_, _ = cached.ListPacks(context.Background())
		_, _ = cached.ListPacks(context.Background())
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("InvalidateForcesReload", func(t *testing.T) {
		inner := &countingLister{}
		cached := holiday.NewCachedSource(inner, time.Second)

		_, _ = cached.ListPacks(context.Background())
		cached.Invalidate()
		_, _ = cached.ListPacks(context.Background())
		assert.Equal(t, 2, inner.calls)
	})
}
