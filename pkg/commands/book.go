package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"tableflip.dev/weddingbook/pkg/app"
	"tableflip.dev/weddingbook/pkg/parser"
	"tableflip.dev/weddingbook/pkg/printers"
	"tableflip.dev/weddingbook/pkg/runner"
	"tableflip.dev/weddingbook/pkg/store"
)

// book is a loaded address book plus what is needed to save it again.
type book struct {
	settings    *store.Settings
	persistence store.Persistence
	service     *app.Service
}

// openBook reads the configuration, sets up logging and loads the saved
// address book.
func openBook(ctx context.Context) (*book, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel})))

	p, err := store.Load(settings)
	if err != nil {
		return nil, err
	}
	return loadBook(ctx, settings, p)
}

func loadBook(ctx context.Context, settings *store.Settings, p store.Persistence) (*book, error) {
	snap, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading address book from %s: %w", settings.BasePath(), err)
	}
	service := app.New()
	if err := service.Restore(snap); err != nil {
		return nil, fmt.Errorf("loading address book from %s: %w", settings.BasePath(), err)
	}
	return &book{settings: settings, persistence: p, service: service}, nil
}

func (b *book) engine() *runner.Engine {
	policy := runner.DiscardPending
	if b.settings.KeepPending {
		policy = runner.KeepPending
	}
	return runner.NewEngine(b.service,
		runner.WithParser(parser.New()),
		runner.WithPendingPolicy(policy),
		runner.WithLogger(slog.Default()),
	)
}

func (b *book) printer(out io.Writer) *printers.PrettyPrint {
	return &printers.PrettyPrint{Out: out, DateLayout: b.settings.DateLayout}
}

func (b *book) save(ctx context.Context) error {
	if err := b.persistence.Save(ctx, b.service.Snapshot()); err != nil {
		return fmt.Errorf("saving address book to %s: %w", b.settings.BasePath(), err)
	}
	return nil
}
