package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/waybill/internal/metrics"
	"github.com/aretw0/waybill/internal/session"
	"github.com/aretw0/waybill/pkg/api"
	"github.com/aretw0/waybill/pkg/cache"
	"github.com/aretw0/waybill/pkg/mutate"
	"github.com/aretw0/waybill/pkg/nav"
)

// Console is the assembled data layer: one client, one cache, one
// router, one mutation controller, all sharing the operator session.
type Console struct {
	Client    *api.Client
	Cache     *cache.Store
	Router    *nav.Router
	Mutations *mutate.Controller
	Session   *session.Session
}

// New builds a console against the vendor API at baseURL.
func New(baseURL string, opts ...Option) (*Console, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	sess := o.session
	if sess == nil {
		if o.sessionFile == "" {
			return nil, fmt.Errorf("no session: provide WithSession or WithSessionFile")
		}
		loaded, err := session.Load(o.sessionFile, o.logger)
		if err != nil {
			return nil, fmt.Errorf("loading session: %w", err)
		}
		sess = loaded
	}

	var observer *metrics.Metrics
	if o.registry != nil {
		observer = metrics.New(o.registry)
	}

	cacheOpts := []cache.Option{cache.WithLogger(o.logger)}
	if observer != nil {
		cacheOpts = append(cacheOpts, cache.WithObserver(observer))
	}
	store := cache.New(cacheOpts...)

	clientOpts := []api.Option{
		api.WithTokenSource(sess.Token),
		api.WithLogger(o.logger),
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(o.httpClient))
	}
	client := api.NewClient(baseURL, clientOpts...)

	routerOpts := []nav.Option{nav.WithLogger(o.logger)}
	if observer != nil {
		routerOpts = append(routerOpts, nav.WithObserver(observer))
	}
	router := nav.NewRouter(Routes(client), store, sess, routerOpts...)

	mutateOpts := []mutate.Option{mutate.WithLogger(o.logger)}
	if o.feedback != nil {
		mutateOpts = append(mutateOpts, mutate.WithFeedback(o.feedback))
	}
	controller := mutate.NewController(store, router, mutateOpts...)

	return &Console{
		Client:    client,
		Cache:     store,
		Router:    router,
		Mutations: controller,
		Session:   sess,
	}, nil
}

// Navigate runs a navigation through the router.
func (c *Console) Navigate(ctx context.Context, target string) (*nav.Navigation, error) {
	return c.Router.Navigate(ctx, target)
}

// WalletRefill tops up a corporate wallet, invalidates exactly that
// customer's cache entry, and lands on the refreshed corporate page.
func (c *Console) WalletRefill(ctx context.Context, corporateID string, amount float64) (*nav.Navigation, error) {
	return c.Mutations.Execute(ctx, mutate.Mutation{
		Name: "wallet-refill",
		Write: func(ctx context.Context) (string, error) {
			return c.Client.WalletRefill(ctx, corporateID, amount)
		},
		Invalidate: []string{api.CorporateCustomerKey(corporateID)},
		NavigateTo: "/corporate/" + corporateID,
	})
}

// WatchSession installs a watcher that reloads the operator session
// whenever its file changes, until ctx is cancelled.
func (c *Console) WatchSession(ctx context.Context) error {
	return c.Session.Watch(ctx)
}
