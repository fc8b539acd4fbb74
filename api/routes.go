package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/banking-demo/internal/handlers/v1/account"
	"github.com/carson-networks/banking-demo/internal/handlers/v1/analytics"
	"github.com/carson-networks/banking-demo/internal/handlers/v1/draft"
	"github.com/carson-networks/banking-demo/internal/handlers/v1/session"
	"github.com/carson-networks/banking-demo/internal/handlers/v1/status"
	"github.com/carson-networks/banking-demo/internal/handlers/v1/transaction"
	"github.com/carson-networks/banking-demo/internal/logging"
	"github.com/carson-networks/banking-demo/internal/operator"
	"github.com/carson-networks/banking-demo/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

type registrar interface {
	Register(api huma.API)
}

// Routes builds the full HTTP surface: /status as a plain handler under LoggingWrapper, and
// everything else through Huma under the request logging middleware.
func (r *Rest) Routes() http.Handler {
	apiMux := http.NewServeMux()
	api := humago.New(apiMux, huma.DefaultConfig("Banking Demo", "1.0.0"))
	handlers := []registrar{
		account.NewCreateAccountHandler(r.Operator),
		account.NewGetAccountHandler(r.Service.Account),
		account.NewListAccountsHandler(r.Service.Account),
		account.NewUpdateAccountStatusHandler(r.Operator),
		session.NewHandler(r.Operator, r.Service),
		transaction.NewCreateTransactionHandler(r.Operator, r.Service),
		transaction.NewListTransactionsHandler(r.Service.Transaction, r.Service.Selection),
		transaction.NewUndoTransactionHandler(r.Operator),
		transaction.NewProcessScheduledHandler(r.Operator),
		transaction.NewDailyUsageHandler(r.Service.Transaction),
		draft.NewHandler(r.Operator, r.Service.Draft),
		analytics.NewHandler(r.Service.Analytics),
	}
	for _, h := range handlers {
		h.Register(api)
	}

	statusHandler := status.NewHandler(r.Service.Transaction, r.Service.Draft)

	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("/", logging.Middleware("API", r.Logger, apiMux))
	return mux
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
