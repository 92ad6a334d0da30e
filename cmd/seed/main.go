package main

import (
	"context"
	"errors"
	"log"

	"github.com/caffeine-junky/jobconnect/internal/config"
	"github.com/caffeine-junky/jobconnect/internal/database"
	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/modules/admin"
	"github.com/caffeine-junky/jobconnect/internal/modules/availability"
	"github.com/caffeine-junky/jobconnect/internal/modules/catalog"
	"github.com/caffeine-junky/jobconnect/internal/modules/client"
	"github.com/caffeine-junky/jobconnect/internal/modules/technician"
	"github.com/caffeine-junky/jobconnect/internal/modules/techservice"
	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
	"github.com/caffeine-junky/jobconnect/internal/pkg/password"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"gorm.io/gorm/logger"
)

// Seed data is created through the services, so re-running skips rows that
// already exist.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	db, err := database.Connect(cfg.DatabaseURL, database.Options{LogLevel: logger.Warn})
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	ctx := context.Background()
	hasher := password.NewHasher(cfg.BcryptCost)
	clientRepo := repository.NewClientRepository(db)
	techRepo := repository.NewTechnicianRepository(db)
	serviceRepo := repository.NewServiceRepository(db)

	admins := admin.NewService(repository.NewAdminRepository(db), repository.NewVerifiedRepository(db), clientRepo, techRepo, hasher)
	clients := client.NewService(clientRepo, repository.NewFavoriteRepository(db), techRepo, hasher)
	technicians := technician.NewService(techRepo, hasher)
	services := catalog.NewService(serviceRepo)
	offers := techservice.NewService(repository.NewTechnicianServiceRepository(db), techRepo, serviceRepo)
	slots := availability.NewService(repository.NewAvailabilityRepository(db), techRepo)

	// ================== ADMIN ==================
	log.Println("Creating admin...")
	if _, err := admins.Create(ctx, admin.CreateAdminRequest{
		Fullname: "Platform Admin",
		Email:    "admin@jobconnect.co.za",
		Phone:    "0100000000",
		Password: "admin12345",
		Role:     domain.AdminSuper,
	}); err != nil {
		skipOrFail("admin", err)
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")
	catalogue := []catalog.CreateServiceRequest{
		{Name: "plumbing", Description: "Leaking pipes, blocked drains, geyser installation and repairs"},
		{Name: "electrical", Description: "Wiring, DB boards, light fittings and compliance certificates"},
		{Name: "painting", Description: "Interior and exterior painting, waterproofing and roof coating"},
		{Name: "carpentry", Description: "Doors, cupboards, ceilings and general woodwork"},
	}
	serviceIDs := map[string]*domain.Service{}
	for _, req := range catalogue {
		s, err := services.Create(ctx, req)
		if err != nil {
			skipOrFail("service "+req.Name, err)
			if s, err = services.ReadOneByName(ctx, req.Name); err != nil {
				log.Fatalf("read service %s: %v", req.Name, err)
			}
		}
		serviceIDs[req.Name] = s
	}

	// ================== TECHNICIANS ==================
	log.Println("Creating technicians...")
	type seedTech struct {
		req      technician.CreateTechnicianRequest
		services map[string]float64
	}
	techs := []seedTech{
		{
			req: technician.CreateTechnicianRequest{
				Fullname: "Sipho Ndlovu",
				Email:    "sipho@jobconnect.co.za",
				Phone:    "0721000001",
				Location: domain.Location{Name: "Soshanguve Block L", Latitude: -25.5236, Longitude: 28.1006},
				Password: "technician123",
			},
			services: map[string]float64{"plumbing": 450, "carpentry": 380},
		},
		{
			req: technician.CreateTechnicianRequest{
				Fullname: "Lerato Mokoena",
				Email:    "lerato@jobconnect.co.za",
				Phone:    "0721000002",
				Location: domain.Location{Name: "Pretoria CBD", Latitude: -25.7479, Longitude: 28.2293},
				Password: "technician123",
			},
			services: map[string]float64{"electrical": 600},
		},
		{
			req: technician.CreateTechnicianRequest{
				Fullname: "Johan van Wyk",
				Email:    "johan@jobconnect.co.za",
				Phone:    "0721000003",
				Location: domain.Location{Name: "Centurion", Latitude: -25.8603, Longitude: 28.1894},
				Password: "technician123",
			},
			services: map[string]float64{"painting": 300, "plumbing": 500},
		},
	}
	for _, st := range techs {
		t, err := technicians.Create(ctx, st.req)
		if err != nil {
			skipOrFail("technician "+st.req.Email, err)
			continue
		}
		for name, price := range st.services {
			if _, err := offers.Create(ctx, techservice.CreateTechnicianServiceRequest{
				TechnicianID:    t.ID,
				ServiceID:       serviceIDs[name].ID,
				ExperienceYears: 5,
				Price:           price,
			}); err != nil {
				skipOrFail("technician service "+name, err)
			}
		}
		// Monday to Friday, 08:00-17:00
		for day := 1; day <= 5; day++ {
			slot, err := domain.NewTimeSlotDay(day, "08:00", "17:00")
			if err != nil {
				log.Fatalf("timeslot: %v", err)
			}
			if _, err := slots.Create(ctx, availability.CreateAvailabilityRequest{TechnicianID: t.ID, TimeSlot: slot}); err != nil {
				skipOrFail("availability", err)
			}
		}
	}

	// ================== CLIENTS ==================
	log.Println("Creating clients...")
	for _, req := range []client.CreateClientRequest{
		{
			Fullname: "Tumelo Modise",
			Email:    "tumelo@example.com",
			Phone:    "0711000001",
			Location: domain.Location{Name: "Soshanguve Block H", Latitude: -25.5301, Longitude: 28.0952},
			Password: "client12345",
		},
		{
			Fullname: "Naledi Khumalo",
			Email:    "naledi@example.com",
			Phone:    "0711000002",
			Location: domain.Location{Name: "Hatfield", Latitude: -25.7487, Longitude: 28.2380},
			Password: "client12345",
		},
	} {
		if _, err := clients.Create(ctx, req); err != nil {
			skipOrFail("client "+req.Email, err)
		}
	}

	log.Println("Seed completed")
}

func skipOrFail(what string, err error) {
	if errors.Is(err, apperr.ErrConflict) {
		log.Printf("seed_skip item=%q reason=%q", what, err.Error())
		return
	}
	log.Fatalf("seed %s: %v", what, err)
}
