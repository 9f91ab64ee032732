package main

import (
	"log"
	"os"

	"github.com/trezcool/mazoezi/core"
	"github.com/trezcool/mazoezi/core/user"
	"github.com/trezcool/mazoezi/services/logger"
	"github.com/trezcool/mazoezi/storage/database"
	"github.com/trezcool/mazoezi/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.NewConfig()

	// set up DB
	errAndDie(database.CreateIfNotExist(conf))
	db, err := database.OpenX(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(database.Ping(db.DB))

	usrSvc := user.NewService(
		sqlxrepos.NewUserRepository(db),
		user.PlainMatcher{},
		logsvc.NewConsoleLogger(logger, conf),
	)

	// start CLI
	cli := commandLine{
		db:     db.DB,
		usrSvc: usrSvc,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
