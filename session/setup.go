package session

import (
	"time"

	"learnex/config"
	"learnex/database"
)

// Sessions is the process-wide session manager.
var Sessions *Manager

// Setup wires the global manager to the connected database and loaded
// config. Call after config.LoadConfig and database.ConnectDb.
func Setup() {
	Sessions = NewManager(
		database.Database.Db,
		config.AppConfig.SessionCookie,
		time.Duration(config.AppConfig.SessionTTLHours)*time.Hour,
	)
}
