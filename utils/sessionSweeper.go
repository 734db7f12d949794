package utils

import (
	"log"

	"learnex/session"

	"github.com/robfig/cron/v3"
)

// StartSessionSweeper purges expired session rows every hour. Expired
// tokens are already rejected on read; the sweeper just keeps the table
// from growing without bound.
func StartSessionSweeper() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		purged, err := session.Sessions.PurgeExpired()
		if err != nil {
			log.Printf("Error purging expired sessions: %v", err)
			return
		}
		if purged > 0 {
			log.Printf("Purged %d expired sessions", purged)
		}
	})
	if err != nil {
		log.Printf("Error scheduling session sweeper: %v", err)
		return c
	}

	c.Start()
	log.Println("Session sweeper started (hourly)")
	return c
}
