package kvstore_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/kitivo/core/academics"
	"github.com/trezcool/kitivo/core/poll"
	"github.com/trezcool/kitivo/storage/kvstore"
	"github.com/trezcool/kitivo/storage/kvstore/inmem"
)

var errBackendDown = errors.New("backend unavailable")

// unreliableKV is an in-memory backend whose Save can be switched off,
// standing in for a full disk or a dropped connection.
type unreliableKV struct {
	*inmemkv.Store
	failSaves bool
}

func (kv *unreliableKV) Save(key string, value []byte) error {
	if kv.failSaves {
		return errBackendDown
	}
	return kv.Store.Save(key, value)
}

func openUnreliableStore(t *testing.T) (*kvstore.Store, *unreliableKV) {
	t.Helper()
	kv := &unreliableKV{Store: inmemkv.New()}
	store, err := kvstore.Open(kv)
	if err != nil {
		t.Fatalf("Open() err = %v; want nil", err)
	}
	return store, kv
}

func TestStore_failedSaveKeepsCatalogUntouched(t *testing.T) {
	store, kv := openUnreliableStore(t)
	svc := academics.NewService(store.AcademicsRepository())

	before, err := svc.CourseCodes()
	if err != nil {
		t.Fatalf("CourseCodes() err = %v; want nil", err)
	}

	kv.failSaves = true
	_, err = svc.AddCourse(academics.NewCourse{
		Level: "300", Term: "First", Code: "CSC399", Title: "Special Topics", Units: 3,
	})
	assert.ErrorIs(t, err, errBackendDown)

	after, err := svc.CourseCodes()
	if err != nil {
		t.Fatalf("CourseCodes() err = %v; want nil", err)
	}
	assert.Equal(t, before, after)
	assert.NotContains(t, after, "CSC399")

	// the operation goes through cleanly once the backend is back
	kv.failSaves = false
	if _, err = svc.AddCourse(academics.NewCourse{
		Level: "300", Term: "First", Code: "CSC399", Title: "Special Topics", Units: 3,
	}); err != nil {
		t.Fatalf("AddCourse() err = %v; want nil", err)
	}
	after, _ = svc.CourseCodes()
	assert.Contains(t, after, "CSC399")
}

func TestStore_failedSaveKeepsPollVotes(t *testing.T) {
	store, kv := openUnreliableStore(t)
	svc := poll.NewService(store.PollRepository())

	p, _, err := svc.Create(1, poll.NewPoll{
		Question: "Hoodie color?",
		Options:  []string{"Navy", "Black"},
	})
	if err != nil {
		t.Fatalf("Create() err = %v; want nil", err)
	}
	if _, err = svc.CastVote(p.ID, 7, 0); err != nil {
		t.Fatalf("CastVote() err = %v; want nil", err)
	}

	// moving the vote fails at the backend; the original vote must survive
	kv.failSaves = true
	_, err = svc.CastVote(p.ID, 7, 1)
	assert.ErrorIs(t, err, errBackendDown)

	got, err := svc.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID() err = %v; want nil", err)
	}
	assert.Equal(t, []int{7}, got.Options[0].Votes)
	assert.Empty(t, got.Options[1].Votes)
	assert.Equal(t, 1, got.TotalVotes())
}

func TestStore_failedSaveKeepsRoster(t *testing.T) {
	store, kv := openUnreliableStore(t)
	repo := store.UserRepository()

	matric := kvstore.DefaultRoster[0]

	kv.failSaves = true
	err := repo.RemoveFromRoster(matric)
	assert.ErrorIs(t, err, errBackendDown)

	roster, err := repo.QueryRoster()
	if err != nil {
		t.Fatalf("QueryRoster() err = %v; want nil", err)
	}
	assert.Contains(t, roster, matric)
}

func TestStore_readsDoNotAliasMirror(t *testing.T) {
	store, _ := openUnreliableStore(t)

	repo := store.AcademicsRepository()
	cat, err := repo.GetCatalog()
	if err != nil {
		t.Fatalf("GetCatalog() err = %v; want nil", err)
	}
	for level := range cat {
		delete(cat, level)
	}

	cat, err = repo.GetCatalog()
	if err != nil {
		t.Fatalf("GetCatalog() err = %v; want nil", err)
	}
	assert.NotEmpty(t, cat)
	assert.Contains(t, cat.Codes(), "CSC101")
}
