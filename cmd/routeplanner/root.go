// Package main wires the CLI command tree: root.go holds the flags and
// the run logic, main.go is the idiomatic one-line entrypoint.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/griffin-west/delivery-route-planner/internal/addressbook"
	"github.com/griffin-west/delivery-route-planner/internal/fleet"
	"github.com/griffin-west/delivery-route-planner/internal/model"
	"github.com/griffin-west/delivery-route-planner/internal/parcelcatalog"
	"github.com/griffin-west/delivery-route-planner/internal/routingmodel"
	"github.com/griffin-west/delivery-route-planner/internal/scenario"
	"github.com/griffin-west/delivery-route-planner/internal/solution"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	addressesPath string
	packagesPath  string
	scenarioPath  string
	logLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "routeplanner",
	Short: "Solves same-day pickup-and-delivery routing problems",
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Load a scenario, solve it, and print the resulting routes",
	RunE:  runSolve,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	solveCmd.Flags().StringVar(&addressesPath, "addresses", "", "path to the address/distance matrix CSV (required)")
	solveCmd.Flags().StringVar(&packagesPath, "packages", "", "path to the package catalog CSV (required)")
	solveCmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to the scenario/settings YAML (required)")
	solveCmd.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")
	_ = solveCmd.MarkFlagRequired("addresses")
	_ = solveCmd.MarkFlagRequired("packages")
	_ = solveCmd.MarkFlagRequired("scenario")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logrus.SetLevel(level)

	sc, settings, err := scenario.Load(scenarioPath)
	if err != nil {
		return err
	}

	addresses, err := addressbook.LoadCSV(addressesPath)
	if err != nil {
		return err
	}

	streets := addresses.Streets()
	if len(streets) == 0 {
		return fmt.Errorf("routeplanner: address book %q is empty", addressesPath)
	}
	depotStreet := streets[0]

	vehicles, err := fleet.NewShared(addresses, sc.FleetSize, sc.VehicleSpeed, sc.VehicleCapacity)
	if err != nil {
		return fmt.Errorf("routeplanner: build fleet: %w", err)
	}

	packages, err := parcelcatalog.LoadCSV(packagesPath,
		func(street string) bool { _, ok := addresses.Get(street); return ok },
		func(id int) bool { _, ok := vehicles.Get(id); return ok },
	)
	if err != nil {
		return err
	}

	dm, err := model.New(addresses, vehicles, packages, depotStreet, sc, settings)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if settings.SolverTimeLimitSeconds != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(*settings.SolverTimeLimitSeconds)*time.Second)
		defer cancel()
	}

	logrus.WithFields(logrus.Fields{
		"fleet_size": sc.FleetSize,
		"packages":   len(packages.All()),
	}).Info("routeplanner: solving")

	plan, err := routingmodel.Solve(ctx, dm)
	if err != nil {
		return fmt.Errorf("routeplanner: solve: %w", err)
	}
	if plan == nil {
		logrus.Warn("routeplanner: no solution found")
		return nil
	}

	sol, err := solution.Extract(dm, plan)
	if err != nil {
		return fmt.Errorf("routeplanner: extract solution: %w", err)
	}

	report(sol)
	return nil
}

func report(sol *solution.Solution) {
	for _, r := range sol.Routes {
		logrus.WithFields(logrus.Fields{
			"vehicle": r.Vehicle.ID,
			"stops":   len(r.Stops),
		}).Info("routeplanner: route")
	}
	logrus.WithFields(logrus.Fields{
		"total_mileage":       sol.TotalMileage(),
		"end_time":            sol.EndTime(),
		"delivered_packages":  len(sol.DeliveredPackages()),
		"missed_packages":     len(sol.MissedPackages()),
		"delivery_percentage": sol.DeliveryPercentage(),
	}).Info("routeplanner: summary")
}
