package bootstrap

import (
	"context"
	"log/slog"

	"salon-reserve/internal/infra/notify"
	"salon-reserve/internal/infra/repository"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewNotificationQueue,
		fx.Annotate(
			notify.NewLogNotifier,
			fx.As(new(shared.Notifier)),
		),
		commands.NewNotificationDispatcher,
	),
	fx.Invoke(startNotificationWorker),
)

func NewNotificationQueue(pool *pgxpool.Pool) shared.NotificationQueue {
	return repository.NewNotificationRepository(sqlc.New(), pool)
}

func startNotificationWorker(lc fx.Lifecycle, cfg config.Config, dispatcher commands.NotificationDispatcher) {
	if !cfg.Notification.Enabled {
		slog.Info("notification worker disabled")
		return
	}

	worker := notify.NewWorker(dispatcher, cfg.Notification.PollInterval)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// the worker outlives the start hook's context
			worker.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return worker.Stop(ctx)
		},
	})
}
