package impl

import (
	"io"
	"log/slog"

	"github.com/irabeny89/ebbs-io/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxProducts int) *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			MaxProducts: maxProducts,
		},
	}
}
