package mutate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/core"
	"github.com/aretw0/waybill/pkg/mutate"
	"github.com/aretw0/waybill/pkg/nav"
)

type recordingNavigator struct {
	targets []string
}

func (n *recordingNavigator) Navigate(ctx context.Context, target string) (*nav.Navigation, error) {
	n.targets = append(n.targets, target)
	return &nav.Navigation{Path: target, Result: core.Ready(nil)}, nil
}

func seed(t *testing.T, store *cache.Store, keys ...string) {
	t.Helper()
	for _, key := range keys {
		_, err := store.EnsureQueryData(context.Background(), key, func(ctx context.Context) (any, error) {
			return key, nil
		})
		require.NoError(t, err)
	}
}

func TestExecute_SuccessInvalidatesExactKeysAndNavigates(t *testing.T) {
	store := cache.New()
	seed(t, store, "corporate-customer/abc", "corporate-customer/other", "stations")

	navigator := &recordingNavigator{}
	var messages []string
	controller := mutate.NewController(store, navigator,
		mutate.WithFeedback(func(message string, success bool) {
			require.True(t, success)
			messages = append(messages, message)
		}),
	)

	navigation, err := controller.Execute(context.Background(), mutate.Mutation{
		Name: "wallet-refill",
		Write: func(ctx context.Context) (string, error) {
			return "wallet refilled", nil
		},
		Invalidate: []string{"corporate-customer/abc"},
		NavigateTo: "/corporate/abc",
	})
	require.NoError(t, err)
	require.NotNil(t, navigation)

	// Feedback carried the response message.
	assert.Equal(t, []string{"wallet refilled"}, messages)

	// Exactly the declared entry went stale: no broader, no narrower.
	_, status, _ := store.Peek("corporate-customer/abc")
	assert.Equal(t, cache.StatusStale, status)
	_, status, _ = store.Peek("corporate-customer/other")
	assert.Equal(t, cache.StatusFresh, status)
	_, status, _ = store.Peek("stations")
	assert.Equal(t, cache.StatusFresh, status)

	// Exactly one follow-up navigation.
	assert.Equal(t, []string{"/corporate/abc"}, navigator.targets)
}

func TestExecute_FailureLeavesCacheAndNavigationAlone(t *testing.T) {
	store := cache.New()
	seed(t, store, "corporate-customer/abc")

	navigator := &recordingNavigator{}
	var gotMessage string
	var gotSuccess bool
	controller := mutate.NewController(store, navigator,
		mutate.WithFeedback(func(message string, success bool) {
			gotMessage, gotSuccess = message, success
		}),
	)

	_, err := controller.Execute(context.Background(), mutate.Mutation{
		Name: "wallet-refill",
		Write: func(ctx context.Context) (string, error) {
			return "", &core.FetchError{Message: "insufficient funds"}
		},
		Invalidate: []string{"corporate-customer/abc"},
		NavigateTo: "/corporate/abc",
	})

	var mErr *core.MutationError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, "insufficient funds", mErr.Message)

	// Feedback fired with the error message.
	assert.Equal(t, "insufficient funds", gotMessage)
	assert.False(t, gotSuccess)

	// Previously cached data is intact and no navigation happened.
	_, status, _ := store.Peek("corporate-customer/abc")
	assert.Equal(t, cache.StatusFresh, status)
	assert.Empty(t, navigator.targets)
}

func TestExecute_NoFollowUpNavigation(t *testing.T) {
	store := cache.New()
	controller := mutate.NewController(store, nil)

	navigation, err := controller.Execute(context.Background(), mutate.Mutation{
		Name:  "noop",
		Write: func(ctx context.Context) (string, error) { return "done", nil },
	})
	require.NoError(t, err)
	assert.Nil(t, navigation)
}
