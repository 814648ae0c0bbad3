// Command seed prepares a catalog database: it can wipe every account, load
// the demo records and create an administrator.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/store"
)

func main() {
	var opts seedOptions
	flag.BoolVar(&opts.records, "records", false, "insert the demo records")
	flag.BoolVar(&opts.resetUsers, "reset-users", false, "remove every user account")
	flag.StringVar(&opts.adminUser, "admin-user", "", "username of the administrator to create")
	flag.StringVar(&opts.adminPassword, "admin-password", "", "password of the administrator to create")
	flag.IntVar(&opts.hashCost, "cost", 0, "bcrypt cost for the administrator password")
	flag.Parse()

	log := logger.NewLogger("catalog-seed")
	if !opts.records && !opts.resetUsers && opts.adminUser == "" {
		flag.Usage()
		os.Exit(2)
	}

	dbCfg, err := config.GetDBConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, dbCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	err = newSeeder(storages.RecordRepository, storages.UserRepository, log).run(ctx, opts)
	_ = storages.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msg("seeding finished")
}
