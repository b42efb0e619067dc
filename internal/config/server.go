package config

import (
	"log"
	"strconv"
	"time"
)

// ServerAddr returns the listen address for the HTTP server.
func ServerAddr() string {
	return getEnv("SERVER_ADDR", "0.0.0.0:8080")
}

// SweepInterval returns how often the expiration sweep runs. Defaults to
// once a day.
func SweepInterval() time.Duration {
	hours, err := strconv.Atoi(getEnv("SWEEP_INTERVAL_HOURS", "24"))
	if err != nil || hours <= 0 {
		log.Printf("invalid SWEEP_INTERVAL_HOURS, falling back to 24")
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// SweepLocation returns the timezone the sweep computes "today" in.
func SweepLocation() *time.Location {
	name := getEnv("SWEEP_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid SWEEP_TIMEZONE %q, falling back to UTC", name)
		return time.UTC
	}
	return loc
}
