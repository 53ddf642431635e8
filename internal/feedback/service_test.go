package feedback

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

func newService() *Service {
	store := storage.New(storage.NewMemoryBackend(), nil)
	return New(store, bus.New(), log.New(os.Stderr, "", 0))
}

func session(id string) *domain.Session {
	return &domain.Session{ID: id, Email: id + "@example.com"}
}

func TestAddAttributesAuthor(t *testing.T) {
	svc := newService()
	entry, err := svc.Add(session("u1"), AddInput{Rating: 5, Message: "great"})
	require.NoError(t, err)

	assert.Equal(t, "u1", entry.AuthorID)
	assert.Equal(t, "u1@example.com", entry.AuthorEmail)
	assert.Equal(t, "u1@example.com", entry.Name) // session display name fallback
}

func TestAddAnonymousFallback(t *testing.T) {
	svc := newService()
	entry, err := svc.Add(nil, AddInput{Rating: 4, Message: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", entry.Name)
	assert.Empty(t, entry.AuthorID)
}

func TestAddValidation(t *testing.T) {
	svc := newService()
	_, err := svc.Add(session("u1"), AddInput{Rating: 5})
	assert.ErrorIs(t, err, domain.ErrInvalid)
	_, err = svc.Add(session("u1"), AddInput{Rating: 0, Message: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalid)
	_, err = svc.Add(session("u1"), AddInput{Rating: 6, Message: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalid)
	assert.Empty(t, svc.List())
}

func TestOnlyAuthorMayEdit(t *testing.T) {
	svc := newService()
	entry, err := svc.Add(session("owner"), AddInput{Rating: 5, Message: "original"})
	require.NoError(t, err)

	err = svc.Edit(session("intruder"), entry.ID, EditInput{Name: "x", Rating: 1, Message: "defaced"})
	assert.ErrorIs(t, err, domain.ErrNotAuthor)
	err = svc.Edit(nil, entry.ID, EditInput{Name: "x", Rating: 1, Message: "defaced"})
	assert.ErrorIs(t, err, domain.ErrNotAuthor)

	got := svc.List()
	require.Len(t, got, 1)
	assert.Equal(t, "original", got[0].Message)
	assert.Equal(t, 5, got[0].Rating)

	require.NoError(t, svc.Edit(session("owner"), entry.ID, EditInput{Name: "Owner", Rating: 4, Message: "updated"}))
	got = svc.List()
	assert.Equal(t, "updated", got[0].Message)
}

func TestOnlyAuthorMayDelete(t *testing.T) {
	svc := newService()
	entry, err := svc.Add(session("owner"), AddInput{Rating: 5, Message: "keep me"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(session("intruder"), entry.ID), domain.ErrNotAuthor)
	assert.Len(t, svc.List(), 1)

	require.NoError(t, svc.Delete(session("owner"), entry.ID))
	assert.Empty(t, svc.List())
}

func TestEditUnknownEntry(t *testing.T) {
	svc := newService()
	assert.ErrorIs(t, svc.Edit(session("u1"), "missing", EditInput{Rating: 3, Message: "x"}), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(session("u1"), "missing"), domain.ErrNotFound)
}

func TestSeedIfEmptyRunsOnce(t *testing.T) {
	svc := newService()
	svc.SeedIfEmpty()
	seeded := svc.List()
	require.Len(t, seeded, 3)

	// seeded entries have no author and may be curated by any signed-in user
	assert.NoError(t, svc.Delete(session("anyone"), seeded[0].ID))

	svc.SeedIfEmpty()
	assert.Len(t, svc.List(), 2)
}

func TestListNewestFirst(t *testing.T) {
	svc := newService()
	svc.SeedIfEmpty()
	got := svc.List()
	require.Len(t, got, 3)
	assert.Equal(t, "Meera", got[0].Name)
	assert.Equal(t, "Ananya", got[2].Name)
}
