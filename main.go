package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/banking-demo/api"
	"github.com/carson-networks/banking-demo/internal/config"
	"github.com/carson-networks/banking-demo/internal/logging"
	"github.com/carson-networks/banking-demo/internal/operator"
	"github.com/carson-networks/banking-demo/internal/operator/actions"
	"github.com/carson-networks/banking-demo/internal/service"
	"github.com/carson-networks/banking-demo/internal/storage"
	"github.com/carson-networks/banking-demo/internal/storage/ledger"
)

func main() {
	app := &cli.App{
		Name:  "banking-demo",
		Usage: "transaction engine for the banking demo",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				EnvVars: []string{"BANK_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API and the maturation scheduler",
				Action: serve,
			},
			{
				Name:  "demo",
				Usage: "run a scripted walk-through against an in-memory engine",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "dump", Usage: "dump the final ledger"},
				},
				Action: demo,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("banking-demo")
	}
}

func limitsFromConfig(cfg *config.Config) (service.Limits, error) {
	dailyDebit, err := decimal.NewFromString(cfg.Limits.DailyDebitLimit)
	if err != nil {
		return service.Limits{}, fmt.Errorf("parse daily debit limit: %w", err)
	}
	return service.Limits{
		DailyDebitLimit:       dailyDebit,
		MaxTransactionsPerDay: cfg.Limits.MaxTransactionsPerDay,
		AbnormalMultiplier:    decimal.NewFromFloat(cfg.Limits.AbnormalMultiplier),
	}, nil
}

func serve(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.SetupLogging(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger.Info("banking-demo starting")

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logger.WithError(err).Error("storage.NewStorage")
		return err
	}
	defer store.Close()

	limits, err := limitsFromConfig(cfg)
	if err != nil {
		return err
	}
	svc := service.NewService(store, service.Options{
		Limits:   limits,
		Location: cfg.Location(),
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := svc.Draft.Init(ctx); err != nil {
		logger.WithError(err).Warn("DraftService.Init")
	}

	unsubscribe := store.Ledger.Subscribe(func(event ledger.Event) {
		logger.WithFields(logrus.Fields{
			"kind":          event.Kind,
			"transactionID": event.Transaction.ID,
			"version":       event.Version,
		}).Debug("Ledger.changed")
	})
	defer unsubscribe()

	delegator := operator.NewOperatorDelegator(svc, 1)
	delegator.Start()
	defer delegator.Stop()

	rest := &api.Rest{
		Logger:   logger,
		Port:     cfg.HTTP.Port,
		Service:  svc,
		Operator: delegator,
	}
	scheduler := operator.NewMaturationScheduler(delegator, cfg.Scheduler.Interval, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return rest.Serve(gctx) })
	g.Go(func() error { return scheduler.Run(gctx) })

	err = g.Wait()
	logger.Info("banking-demo stopped")
	return err
}

// demo drives the engine through every operation without HTTP or a database.
func demo(c *cli.Context) error {
	logger, err := logging.SetupLogging("warn")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	store := storage.NewMemoryStorage()
	svc := service.NewService(store, service.Options{
		Now:    func() time.Time { return now },
		Logger: logger,
	})
	delegator := operator.NewOperatorDelegator(svc, 1)
	delegator.Start()
	defer delegator.Stop()

	ctx := c.Context
	today := svc.Today()

	create := &actions.CreateAccount{Account: service.Account{
		CustomerID:     uuid.Must(uuid.NewV4()),
		Name:           "Everyday",
		Currency:       service.CurrencyUSD,
		OpeningDate:    today.StartOfMonth(-2),
		OpeningBalance: decimal.NewFromInt(2500),
	}}
	if err := delegator.Process(ctx, create); err != nil {
		return err
	}
	if err := delegator.Process(ctx, &actions.SelectSession{AccountID: create.CreatedID}); err != nil {
		return err
	}
	fmt.Printf("opened account %s\n", create.CreatedID)

	script := []service.TransactionRequest{
		{Direction: service.DirectionCredit, Category: service.CategorySalary, Amount: decimal.NewFromInt(3200), Date: today.StartOfMonth(-1), Description: "Salary"},
		{Direction: service.DirectionDebit, Category: service.CategoryPayment, Amount: decimal.NewFromInt(120), Date: today.StartOfMonth(-1).AddDays(3), Description: "Groceries"},
		{Direction: service.DirectionDebit, Category: service.CategoryPayment, Amount: decimal.NewFromInt(95), Date: today, Description: "Groceries"},
		{Direction: service.DirectionDebit, Category: service.CategoryPayment, Amount: decimal.NewFromInt(60), Date: today.AddDays(2), Description: "Scheduled rent share"},
		{Direction: service.DirectionDebit, Category: service.CategoryFees, Amount: decimal.NewFromInt(15), Date: today, Description: "Card fee"},
		{Direction: service.DirectionDebit, Category: service.CategoryWithdrawal, Amount: decimal.NewFromInt(800), Date: today, Description: "Cash"},
		{Direction: service.DirectionCredit, Category: service.CategoryFees, Amount: decimal.NewFromInt(10), Date: today, Description: "Rejected: fees are debit only"},
	}
	for _, req := range script {
		action := &actions.CreateTransaction{Request: req}
		if err := delegator.Process(ctx, action); err != nil {
			return err
		}
		printResult(req, action.Result)
	}

	undo := &actions.UndoLastTransaction{}
	if err := delegator.Process(ctx, undo); err != nil {
		return err
	}
	fmt.Printf("undo last completed transaction: %v\n", undo.Undone)

	now = now.Add(72 * time.Hour)
	process := &actions.ProcessScheduled{}
	if err := delegator.Process(ctx, process); err != nil {
		return err
	}
	fmt.Printf("matured %d scheduled transaction(s) on %s\n", process.Processed, svc.Today())

	balance, err := svc.Account.Balance(create.CreatedID)
	if err != nil {
		return err
	}
	fmt.Printf("balance: %s\n", balance.StringFixed(2))

	printAnalytics(svc.Analytics.Summary())

	if c.Bool("dump") {
		spew.Dump(svc.Transaction.ListTransactions(create.CreatedID))
	}
	return nil
}

func printResult(req service.TransactionRequest, result *service.CreateResult) {
	if !result.Success {
		for _, e := range result.Errors {
			fmt.Printf("  rejected %-30q %s: %s\n", req.Description, e.Code, e.Message)
		}
		return
	}
	tx := result.Transaction
	fmt.Printf("  %-9s %-30q %s %10s %s\n", tx.Status, tx.Description, tx.Reference, tx.Amount.StringFixed(2), tx.Date)
}

func printAnalytics(s service.AnalyticsSummary) {
	fmt.Println("spending trend:")
	for _, m := range s.Trend {
		fmt.Printf("  %s %d  %10s (%d)\n", m.Month, m.Year, m.Total.StringFixed(2), m.Count)
	}
	fmt.Printf("average transaction: %s, average debit: %s\n",
		s.AverageTransactionSize.StringFixed(2), s.AverageSpending.StringFixed(2))
	fmt.Printf("total spending: %s, total credits: %s\n", s.TotalSpending.StringFixed(2), s.TotalCredits.StringFixed(2))
	if s.Abnormal.Message != "" {
		fmt.Println(s.Abnormal.Message)
	}
	for _, cat := range s.ByCategory {
		fmt.Printf("  %-10s %10s (%d)\n", cat.Category, cat.Total.StringFixed(2), cat.Count)
	}
	mom := s.MonthOverMonth
	fmt.Printf("month over month: %s (%s%%, %s)\n", mom.Change.StringFixed(2), mom.Percent.StringFixed(2), mom.Direction)
}
