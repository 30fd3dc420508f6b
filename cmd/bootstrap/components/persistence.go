package components

import (
	"salon-reserve/internal/infra/export"
	"salon-reserve/internal/infra/readstore"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/infra/uow"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(queries.OperatorReadStore)),
			fx.As(new(queries.SalonOperatorReadStore)),
		),
		// Salon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SalonReadQueries)),
		),
		fx.Annotate(
			readstore.NewSalonReadStore,
			fx.As(new(queries.SalonReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.UpcomingReservationChecker)),
		),
		// Menu
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MenuReadQueries)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuReadStore)),
		),
		// Slot
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Export
		fx.Annotate(
			export.NewExcelExporter,
			fx.As(new(queries.ReservationExporter)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds the write repositories per transaction
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

var _ shared.UnitOfWork = (*uow.PostgresUoW)(nil)
