// Package catalog provides an in-memory library catalog of physical book copies.
//
// Each Entry is one copy of a book with its own availability flag. Copies are created
// from a Template by Add, lent out by Borrow and taken back by Return:
//
//	cat, err := catalog.NewCatalog(catalog.WithTranscript(os.Stdout))
//	if err != nil {
//		// handle error
//	}
//
//	_ = cat.Add(ctx, catalog.BuildTemplate("Colobok", "Folk", "Fairy tale", 1000), 3)
//
//	entry, err := cat.Borrow(ctx, "colobok") // title matching is case-insensitive
//	if errors.Is(err, catalog.ErrNotFoundOrNotAvailable) {
//		// no copy on the shelf
//	}
//
//	_, _ = cat.Return(ctx, entry.Title)
//
// Borrow and Return always act on the earliest-added eligible copy.
//
// Every state change and every failed Borrow or Return is recorded as a DomainEvent
// in an in-memory history that lives as long as the Catalog does.
//
// Observability is optional and dependency-free: plug in implementations of Logger,
// ContextualLogger, MetricsCollector and TracingCollector via the With* options,
// for example the OpenTelemetry ones from the oteladapters subpackage.
package catalog
