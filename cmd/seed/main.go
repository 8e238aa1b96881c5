// Command main runs the database seeder for Textbox.
package main

import (
	"flag"
	"log"

	"textbox/internal/config"
	"textbox/internal/database"
	"textbox/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	postsPerUser := flag.Int("posts", 8, "Number of posts per user")
	maxHoursBack := flag.Int("hours", 48, "Spread post timestamps over this many hours")
	randSeed := flag.Int64("seed", 0, "Fixed RNG seed for reproducible runs (0 = time-based)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	opts.Users = *numUsers
	opts.PostsPerUser = *postsPerUser
	opts.MaxHoursBack = *maxHoursBack
	opts.RandSeed = *randSeed

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users with %d posts each", opts.Users, opts.PostsPerUser)
}
