package cart

import (
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawfinder/internal/bus"
	"pawfinder/internal/domain"
	"pawfinder/internal/storage"
)

func newService() (*Service, *bus.Bus) {
	store := storage.New(storage.NewMemoryBackend(), nil)
	b := bus.New()
	return New(store, b, log.New(os.Stderr, "", 0)), b
}

func item(id, breed string) domain.CartItem {
	return domain.CartItem{ListingID: id, Breed: breed, Price: 100}
}

func TestAddAllowsDuplicates(t *testing.T) {
	svc, _ := newService()
	require.NoError(t, svc.Add(item("1", "Beagle")))
	require.NoError(t, svc.Add(item("1", "Beagle")))

	assert.Len(t, svc.Items(), 2)
}

func TestAddValidation(t *testing.T) {
	svc, _ := newService()
	assert.ErrorIs(t, svc.Add(domain.CartItem{Breed: "Beagle"}), domain.ErrInvalid)
	assert.ErrorIs(t, svc.Add(domain.CartItem{ListingID: "1"}), domain.ErrInvalid)
	assert.ErrorIs(t, svc.Add(domain.CartItem{ListingID: "1", Breed: "Beagle", Price: -5}), domain.ErrInvalid)
	assert.Empty(t, svc.Items())
}

func TestRemoveDropsAllMatchesPreservingOrder(t *testing.T) {
	svc, _ := newService()
	require.NoError(t, svc.Add(item("1", "Beagle")))
	require.NoError(t, svc.Add(item("2", "Poodle")))
	require.NoError(t, svc.Add(item("1", "Beagle")))
	require.NoError(t, svc.Add(item("3", "Boxer")))

	svc.Remove("1")

	got := svc.Items()
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ListingID)
	assert.Equal(t, "3", got[1].ListingID)
}

func TestRemovingAllDistinctIDsEmptiesCart(t *testing.T) {
	svc, _ := newService()
	ids := []string{"1", "2", "3", "1", "2"}
	for _, id := range ids {
		require.NoError(t, svc.Add(item(id, "Breed"+id)))
	}
	for _, id := range []string{"1", "2", "3"} {
		svc.Remove(id)
	}
	assert.Empty(t, svc.Items())
}

func TestMutationsPublish(t *testing.T) {
	svc, b := newService()
	calls := 0
	b.Subscribe(bus.CartUpdated, func() { calls++ })

	require.NoError(t, svc.Add(item("1", "Beagle")))
	svc.Remove("1")
	svc.Clear()

	assert.Equal(t, 3, calls)
}
