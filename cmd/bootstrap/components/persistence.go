package components

import (
	"github.com/zhangwenhan0216/reservation/internal/infra/readstore"
	"github.com/zhangwenhan0216/reservation/internal/infra/repository"
	sqlc "github.com/zhangwenhan0216/reservation/internal/infra/sqlc/generated"
	"github.com/zhangwenhan0216/reservation/internal/usecase/commands"
	"github.com/zhangwenhan0216/reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	fx.Annotate(
		NewSQLQueries,
		fx.As(new(readstore.ReservationReadQueries)),
		fx.As(new(repository.ReservationWriteQueries)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
