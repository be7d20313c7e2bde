package testutil

import (
	"net/http/httptest"
	"testing"

	"backoffice/internal/stub"

	"go.uber.org/zap"
)

// StartStub boots the in-memory backend on an httptest listener and returns
// its base URL plus the store for direct fixture setup.
func StartStub(t *testing.T, seed int64) (string, *stub.Store) {
	t.Helper()

	store := stub.NewStore(seed)
	server := httptest.NewServer(stub.NewRouter(store, zap.NewNop()))
	t.Cleanup(server.Close)

	return server.URL, store
}
