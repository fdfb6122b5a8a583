package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alpinetrips/skipack/api"
	"github.com/alpinetrips/skipack/config"
	"github.com/alpinetrips/skipack/internal/service/catalog"
	"github.com/alpinetrips/skipack/internal/service/checkout"
	"github.com/alpinetrips/skipack/internal/service/packages"
	"github.com/alpinetrips/skipack/internal/service/users"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until ctx is canceled or the
// server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	catalogSvc catalog.CatalogUseCase,
	packageSvc packages.PackageUseCase,
	checkoutSvc checkout.CheckoutUseCase,
	userSvc users.UserUseCase,
) error {
	router := gin.Default()

	userHandler := api.NewUserHandler(userSvc)

	group := router.Group("/api")
	api.NewCatalogHandler(catalogSvc).Register(group)
	api.NewPackageHandler(packageSvc).Register(group)
	userHandler.Register(group)
	api.NewCheckoutHandler(checkoutSvc, userHandler.Authenticate).Register(group)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
