package main

import (
	"database/sql"
	"os"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/banking-demo/internal/config"
	"github.com/carson-networks/banking-demo/internal/storage/kv"
)

func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	env, err := server_config.Load(path)
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	result, err := kv.RunMigrations(db)
	if err != nil {
		logrus.WithError(err).Fatal("kv.RunMigrations")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreVersion,
		"postMigrationVersion": result.PostVersion,
	}).Info("Migration status")
}
