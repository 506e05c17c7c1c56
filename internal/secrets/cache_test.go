package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	values map[string]string
	err    error
	calls  map[string]int
}

func newFakeProvider(values map[string]string) *fakeProvider {
	return &fakeProvider{values: values, calls: map[string]int{}}
}

func (p *fakeProvider) GetParameter(_ context.Context, name string) (string, error) {
	p.calls[name]++
	if p.err != nil {
		return "", p.err
	}
	v, ok := p.values[name]
	if !ok {
		return "", errors.New("parameter not found")
	}
	return v, nil
}

func TestCacheResolvesOncePerKey(t *testing.T) {
	provider := newFakeProvider(map[string]string{
		"/ubuntucrafts/db_username": "admin",
		"/ubuntucrafts/db_password": "hunter2",
	})
	cache := NewCache(provider)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		user, err := cache.Resolve(ctx, "/ubuntucrafts/db_username")
		require.NoError(t, err)
		assert.Equal(t, "admin", user)

		pass, err := cache.Resolve(ctx, "/ubuntucrafts/db_password")
		require.NoError(t, err)
		assert.Equal(t, "hunter2", pass)
	}

	assert.Equal(t, 1, provider.calls["/ubuntucrafts/db_username"])
	assert.Equal(t, 1, provider.calls["/ubuntucrafts/db_password"])
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	provider := newFakeProvider(nil)
	provider.err = errors.New("ssm unavailable")
	cache := NewCache(provider)
	ctx := context.Background()

	_, err := cache.Resolve(ctx, "/ubuntucrafts/db_username")
	require.Error(t, err)

	// The provider recovers; the next resolve must retry, not replay
	// the failure.
	provider.err = nil
	provider.values = map[string]string{"/ubuntucrafts/db_username": "admin"}

	user, err := cache.Resolve(ctx, "/ubuntucrafts/db_username")
	require.NoError(t, err)
	assert.Equal(t, "admin", user)
	assert.Equal(t, 2, provider.calls["/ubuntucrafts/db_username"])
}
