// Package waybill is the Composition Root for the Waybill data layer.
//
// It connects the vendor-operations domain (core entities, route
// loaders, mutations) with the infrastructure pieces (HTTP client,
// query cache, session, metrics) behind a small functional-options
// facade.
//
// Philosophy:
//
// Waybill is the client side of a logistics console. It treats the
// vendor API as the source of truth and keeps a local query cache in
// front of it, so every screen reads through the cache and every write
// invalidates exactly the entries it touched. Navigation is
// data-driven: a route tree declares which entities a screen needs,
// and the router fetches, composes, and commits them for the latest
// navigation only.
//
// Features:
//
//   - **Query Cache**: at most one in-flight fetch per key; concurrent
//     readers join the same flight.
//   - **Declarative Routes**: path patterns, guards, search-parameter
//     schemas, and loaders in one tree.
//   - **Dependent Fetches**: loaders compose entities (order → its
//     customer) and descendants reuse parent data without refetching.
//   - **Mutations**: a write declares its invalidation set and its
//     follow-up navigation; stale screens refresh themselves.
//   - **Typed Retrieval**: generic wrapper (`EnsureTyped[T]`) for
//     type-safe cache access.
//
// Usage:
//
//	// Build a console with functional options
//	c, err := waybill.New("https://api.example.com",
//		waybill.WithSessionFile("~/.waybill/session.yaml"),
//		waybill.WithLogger(logger),
//	)
//
//	// Navigate to a screen
//	navigation, err := c.Navigate(ctx, "/orders/ord-1/summary")
//
//	// Top up a corporate wallet and land on the refreshed page
//	navigation, err = c.WalletRefill(ctx, "corp-2", 150)
package waybill
