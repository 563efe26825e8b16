package main

import (
	"log"
	"os"
	"time"

	"bitbucket.org/rutaandina/backend/api"
	"bitbucket.org/rutaandina/backend/server"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

// @title tours backend API
// @version 0.1
// @description API for the tour booking platform.

// @host api.rutaandina.cl
// @BasePath /
// @schemes http https

// @securityDefinitions.apiKey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	_ = godotenv.Load("dev.env")

	app := cli.NewApp()
	app.Name = "Tour Booking Service"
	app.Version = "1.00"
	app.Compiled = time.Now()
	app.Commands = []cli.Command{
		{
			Name:  "backend-up",
			Usage: "This command starts the backend service",
			Action: func(c *cli.Context) error {
				StartServer(api.GetRoutes())
				return nil
			},
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func StartServer(routes []*server.Route) {
	ctx := server.GetAppContext()
	ctx.CreateMySQLConnection()
	ctx.CreateSMTPConnection()
	ctx.CreateNewSessionS3()

	server.UpServer(routes, ctx)
}
