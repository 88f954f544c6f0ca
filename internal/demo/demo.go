// Package demo drives a Catalog through the fixed lending sequence the library command runs.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

const (
	TitleKolobok = "колобок"
	TitleUnicorn = "боевой единорог"
)

// Run adds three copies of "колобок" and one of "боевой единорог", borrows "колобок" twice,
// returns it once and then tries to borrow "боевой единорог" twice.
//
// Only the first successful borrow is echoed to out as "Borrowed: <title>".
// A borrow or return that finds no eligible copy is part of the sequence, not a failure.
func Run(ctx context.Context, c *catalog.Catalog, out io.Writer) error {
	if err := c.Add(ctx, catalog.BuildTemplate(TitleKolobok, "хз", "сказка", 1000), 3); err != nil {
		return fmt.Errorf("add %s: %w", TitleKolobok, err)
	}

	if err := c.Add(ctx, catalog.BuildTemplate(TitleUnicorn, "дипсик", "какао", 5000), 1); err != nil {
		return fmt.Errorf("add %s: %w", TitleUnicorn, err)
	}

	borrowed, err := c.Borrow(ctx, TitleKolobok)
	if err := expected(err); err != nil {
		return err
	}
	if err == nil {
		if _, err := fmt.Fprintf(out, "Borrowed: %s\n", borrowed.Title); err != nil {
			return err
		}
	}

	steps := []struct {
		op    func(context.Context, string) (catalog.Entry, error)
		title string
	}{
		{c.Borrow, TitleKolobok},
		{c.Return, TitleKolobok},
		{c.Borrow, TitleUnicorn},
		{c.Borrow, TitleUnicorn},
	}

	for _, step := range steps {
		if _, err := step.op(ctx, step.title); expected(err) != nil {
			return err
		}
	}

	return nil
}

// expected swallows the not-found outcomes of Borrow and Return.
func expected(err error) error {
	if errors.Is(err, catalog.ErrNotFoundOrNotAvailable) || errors.Is(err, catalog.ErrNotFoundOrNotBorrowed) {
		return nil
	}

	return err
}
