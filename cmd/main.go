package main

import (
	"github.com/MyLifeUa/rest-api/config"
	"github.com/MyLifeUa/rest-api/routes"
	"github.com/MyLifeUa/rest-api/services"
)

func main() {
	config.InitDB()

	reminder := services.NewReminderService(config.DB, services.NewLogNotifier())
	reminder.Start()

	r := routes.SetupRouter()
	r.Run(":8080")
}
