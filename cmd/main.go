package main

import (
	"github.com/RohitMacherla3/Viveo/config"
	"github.com/RohitMacherla3/Viveo/routes"
)

func main() {
	db := config.InitDB()
	r := routes.SetupRouter(db)
	r.Run(":8080")
}
