package search

import (
	"context"
	"log/slog"

	"zenvira/config"
	"zenvira/internal/domain/entity"
	"zenvira/internal/domain/lifecycle"
	"zenvira/internal/domain/service"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopIndex is used when search is disabled; queries fall back to SQL.
type noopIndex struct{}

// NewNoopIndex returns a MedicineIndex that stores nothing.
func NewNoopIndex() service.MedicineIndex {
	return noopIndex{}
}

func (noopIndex) Index(context.Context, *entity.Medicine) error { return nil }

func (noopIndex) Remove(context.Context, uuid.UUID) error { return nil }

func (noopIndex) Search(context.Context, string, int) ([]uuid.UUID, error) {
	return nil, service.ErrSearchUnavailable
}

// IndexParams holds dependencies for the MedicineIndex, injected by Fx
type IndexParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewMedicineIndex builds the Elasticsearch index when search is enabled.
func NewMedicineIndex(params IndexParams) (service.MedicineIndex, error) {
	cfg := params.Config.Search
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Search disabled, medicine search uses the database")

		return NewNoopIndex(), nil
	}
	if len(cfg.Addresses) == 0 {
		return nil, errors.New("search addresses are required when search is enabled")
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create elasticsearch client")
	}

	index := NewElasticIndex(client, cfg.Index, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable cluster leaves search on the SQL fallback.
			if err := index.EnsureIndex(ctx); err != nil {
				params.Logger.Warn("Search index is not ready", slog.Any("error", err))
			}

			return nil
		},
	})

	return index, nil
}

// Module provides the search FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMedicineIndex),
)
