package cmd

import (
	"context"
	"log/slog"

	orderhttp "ordertracker/internal/adapters/in/http"
	"ordertracker/internal/adapters/out/memory/orderrepo"
	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/ports"
	"ordertracker/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config    Config
	logger    *slog.Logger
	orderRepo ports.OrderRepository
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:    config,
		logger:    logger,
		orderRepo: orderrepo.NewMemoryOrderRepository(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateServer() *orderhttp.Server {
	return orderhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.logger,
	)
}

// CreateRouter builds the echo instance serving the API and its documentation.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	docs, err := orderhttp.LoadAPIDocs(ctx)
	if err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "OpenAPI document loaded", "version", docs.Version())

	return orderhttp.NewRouter(c.CreateServer(), docs, orderhttp.NewMetrics(), c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCountOrdersByStatusQueryHandler(), c.config.StatsSchedule, c.logger)
}
