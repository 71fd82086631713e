package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ayushqc/college-info-api/internal/config"
	"github.com/ayushqc/college-info-api/internal/database"
	"github.com/ayushqc/college-info-api/internal/logger"
	"github.com/ayushqc/college-info-api/internal/model"
	"github.com/ayushqc/college-info-api/internal/repository"
)

// seed loads a small set of sample colleges and timeline events for local
// development.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	collegeRepo := repository.NewCollegeRepository(db)
	timelineRepo := repository.NewTimelineRepository(db)

	fmt.Println("=== Seeding Sample Colleges ===")

	colleges := []*model.College{
		{
			Name:     "Government Engineering College",
			District: "Bhopal",
			Address:  "Link Road No. 3, Bhopal",
			Programs: []model.Program{
				{Name: "Computer Science", Cutoff: 92.5, Eligibility: "10+2 PCM", Medium: "English"},
				{Name: "Mechanical Engineering", Cutoff: 85.0, Eligibility: "10+2 PCM", Medium: "English"},
			},
			Facilities: []string{"hostel", "library", "labs"},
			Contact:    model.Contact{Phone: "0755-1234567", Email: "info@gecbhopal.example"},
		},
		{
			Name:     "Science College Indore",
			District: "Indore",
			Address:  "AB Road, Indore",
			Programs: []model.Program{
				{Name: "BSc Computer Science", Cutoff: 78.0, Eligibility: "10+2 Science", Medium: "Hindi"},
				{Name: "BSc Physics", Cutoff: 72.0, Eligibility: "10+2 Science", Medium: "Hindi"},
			},
			Facilities: []string{"library", "sports"},
			Contact:    model.Contact{Phone: "0731-7654321", Email: "office@scindore.example"},
		},
	}

	for _, college := range colleges {
		if err := collegeRepo.Insert(ctx, college); err != nil {
			log.Fatal().Err(err).Str("college", college.Name).Msg("Failed to seed college")
		}
		fmt.Printf("Seeded college %q (%s)\n", college.Name, college.ID.Hex())
	}

	events := []*model.TimelineEvent{
		{
			CollegeID:   colleges[0].ID,
			Type:        model.EventAdmission,
			Title:       "B.Tech Admission Window",
			StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
			Description: "Online applications for the 2026 intake.",
		},
		{
			CollegeID:   colleges[1].ID,
			Type:        model.EventScholarship,
			Title:       "Merit Scholarship Applications",
			StartDate:   time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 7, 25, 0, 0, 0, 0, time.UTC),
			Description: "State merit scholarship for first-year students.",
		},
	}

	for _, event := range events {
		if err := timelineRepo.Insert(ctx, event); err != nil {
			log.Fatal().Err(err).Str("title", event.Title).Msg("Failed to seed event")
		}
		fmt.Printf("Seeded event %q (%s)\n", event.Title, event.ID.Hex())
	}

	fmt.Println("Done.")
}
