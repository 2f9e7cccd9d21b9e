// Package store elige la implementación del repositorio de clientes según la configuración.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/customers-api/internal/domain/repository"
	"github.com/jhoicas/customers-api/internal/infrastructure/memory"
	"github.com/jhoicas/customers-api/internal/infrastructure/postgres"
	"github.com/jhoicas/customers-api/pkg/config"
	"github.com/jhoicas/customers-api/pkg/logger"
)

// Open devuelve el repositorio configurado y una función de cierre (siempre no nil).
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.CustomerRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("usando almacén en memoria; los datos no sobreviven al proceso")
		return memory.NewCustomerRepository(), func() {}, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, func() {}, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.DB.AutoMigrate {
			if err := postgres.EnsureSchema(ctx, pool, cfg.DB.CustomerTable); err != nil {
				pool.Close()
				return nil, func() {}, err
			}
			log.Info().Str("table", cfg.DB.CustomerTable).Msg("esquema de clientes verificado")
		}
		return postgres.NewCustomerRepository(pool, cfg.DB.CustomerTable), pool.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("STORE_DRIVER no soportado: %q", cfg.Store.Driver)
	}
}
