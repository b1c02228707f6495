// Command coffeemachine runs an order batch against a simulated coffee machine.
//
// The batch (starting inventory, orders and refills) is read from a YAML file.
// The first round processes the orders as prepared; every following round applies
// the configured refills and resumes the orders that are not yet fulfilled.
package main

import (
	"coffeeInventory/src/config"
	"coffeeInventory/src/logging"
	"coffeeInventory/src/repository/recipecatalog"
	"coffeeInventory/src/repository/resourcemanager"
	"coffeeInventory/src/services/demandcalculator"
	"coffeeInventory/src/services/notifier"
	"coffeeInventory/src/services/ordermanager"
	"coffeeInventory/src/services/vendingmachine"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "coffeemachine",
		Short:        "Simulate a coffee machine serving a batch of orders.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "batch file (default ./coffeemachine.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().Bool("log-dev", false, "human readable console logs")

	cmd.AddCommand(newRunCmd(&cfgFile))
	cmd.AddCommand(newRecipesCmd())
	return cmd
}

func newRunCmd(cfgFile *string) *cobra.Command {
	var rounds int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process the configured order batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runBatch(cmd.Context(), cfg, logger, cmd.OutOrStdout(), rounds)
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 2, "processing rounds, refills are applied before every round after the first")
	return cmd
}

func newRecipesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List the drinks the machine can make",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRecipes(cmd.Context(), recipecatalog.New(), cmd.OutOrStdout())
		},
	}
}

func printRecipes(ctx context.Context, catalog recipecatalog.Repository, out io.Writer) error {
	for _, drink := range catalog.DrinkTypes(ctx) {
		recipe, err := catalog.Lookup(ctx, drink)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-10s %s\n", drink, recipe.Requirements)
	}
	return nil
}

func runBatch(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer, rounds int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	initial, err := cfg.InitialInventory()
	if err != nil {
		return err
	}
	store, err := resourcemanager.New(initial.Water, initial.Milk, initial.CoffeeBeans)
	if err != nil {
		return err
	}

	catalog := recipecatalog.New()
	n := notifier.NewLogNotifier(logger)

	requests, err := cfg.OrderRequests()
	if err != nil {
		return err
	}
	orders, err := ordermanager.New(ordermanager.Params{
		RecipeCatalog: catalog,
		Notifier:      n,
	}).Prepare(ctx, requests)
	if err != nil {
		return err
	}

	demand, err := demandcalculator.New(catalog).TotalRequired(ctx, orders)
	if err != nil {
		return err
	}

	machine := vendingmachine.New(vendingmachine.Params{
		ResourceManager: store,
		RecipeCatalog:   catalog,
		Notifier:        n,
		RetryAttempts:   cfg.Retry.Attempts,
		RetryDelay:      cfg.Retry.Delay,
	})

	fmt.Fprintf(out, "inventory: %s\n", machine.Inventory(ctx))
	fmt.Fprintf(out, "required:  %s\n", demand)

	for round := 1; round <= rounds; round++ {
		if round > 1 {
			for _, refill := range cfg.RefillRequests() {
				if _, err := machine.Refill(ctx, refill.IngredientID, refill.Amount); err != nil {
					return fmt.Errorf("round %d: %w", round, err)
				}
			}
			fmt.Fprintf(out, "refilled:  %s\n", machine.Inventory(ctx))
		}

		fmt.Fprintf(out, "round %d\n", round)
		for _, resp := range machine.ProcessAll(ctx, orders) {
			fmt.Fprint(out, resp.String())
		}
		fmt.Fprintf(out, "inventory: %s\n", machine.Inventory(ctx))
	}
	return nil
}
