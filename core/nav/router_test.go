package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/kitivo/core/nav"
	"github.com/trezcool/kitivo/storage/kvstore"
	"github.com/trezcool/kitivo/storage/kvstore/inmem"
)

func setup(t *testing.T) (*kvstore.Store, nav.Repository) {
	t.Helper()
	store, err := kvstore.Open(inmemkv.New())
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return store, store.RouteRepository()
}

func TestNewRoute(t *testing.T) {
	rt := nav.NewRoute(nav.PageTakeQuiz, "id", "7")
	assert.Equal(t, nav.PageTakeQuiz, rt.Page)
	assert.Equal(t, map[string]string{"id": "7"}, rt.Params)

	bare := nav.NewRoute(nav.PageHome)
	assert.Nil(t, bare.Params)
}

func TestRouter_startsAtHome(t *testing.T) {
	_, repo := setup(t)
	router := nav.NewRouter(repo)
	assert.Equal(t, nav.PageHome, router.Current().Page)
}

func TestRouter_Navigate(t *testing.T) {
	_, repo := setup(t)
	router := nav.NewRouter(repo)

	rt := router.Navigate(nav.NewRoute(nav.PageForumThread, "id", "3"))
	assert.Equal(t, nav.PageForumThread, rt.Page)
	assert.Equal(t, "3", rt.Params["id"])
	assert.Equal(t, rt, router.Current())
}

func TestRouter_resumesLastRoute(t *testing.T) {
	kv := inmemkv.New()
	store, err := kvstore.Open(kv)
	if err != nil {
		t.Fatalf("Open() err = %v; want nil", err)
	}
	router := nav.NewRouter(store.RouteRepository())
	router.Navigate(nav.NewRoute(nav.PageGpa))

	// a new session over the same key-space picks up where it stopped
	store2, err := kvstore.Open(kv)
	if err != nil {
		t.Fatalf("Open() err = %v; want nil", err)
	}
	router2 := nav.NewRouter(store2.RouteRepository())
	assert.Equal(t, nav.PageGpa, router2.Current().Page)
}

func TestRouter_Reset(t *testing.T) {
	_, repo := setup(t)
	router := nav.NewRouter(repo)

	router.Navigate(nav.NewRoute(nav.PageMessages))
	rt := router.Reset()
	assert.Equal(t, nav.PageSignIn, rt.Page)
	assert.Equal(t, nav.PageSignIn, router.Current().Page)
}
