package bootstrap

import (
	"log"
	"os"

	"careerbridge.org/jobfairhub/internal/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Registration{},
		&entity.Event{},
		&entity.Program{},
		&entity.ImpactStat{},
		&entity.GalleryImage{},
	)
}

func SeedRoles(db *gorm.DB) error {
	defaultRoles := []entity.Role{
		{Name: entity.RoleAdmin, Description: "Dashboard administrator"},
		{Name: entity.RoleStaff, Description: "Event staff"},
	}

	for _, role := range defaultRoles {
		var count int64
		if err := db.Model(&entity.Role{}).
			Where("name = ?", role.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func SeedAdminUser(db *gorm.DB) error {
	var adminRole entity.Role
	if err := db.Where("name = ?", entity.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@careerbridge.org"
	}

	var count int64
	if err := db.Model(&entity.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := entity.User{
		Email:        email,
		FullName:     "Administrator",
		PasswordHash: string(hashedPasswordBytes),
		RoleID:       &adminRole.ID,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully")
	log.Printf("   Email: %s", email)

	return nil
}

// SeedContent loads the public site content once. Admins can replace it
// later; re-running the seed does not duplicate rows.
func SeedContent(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Event{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	events := []entity.Event{
		{
			Title:       "Record-Breaking Sunnyside Event",
			EventDate:   "October 17th, 2024",
			Location:    "World Harvest Outreach, Sunnyside",
			Description: "We had over 1400 job seekers signed up. This was our biggest event ever in Sunnyside at World Harvest Outreach.",
			Featured:    true,
		},
		{
			Title:       "Houston High School Hiring Event",
			EventDate:   "April 18th, 2024",
			Location:    "Southside Houston, Texas",
			Description: "Hiring event for high school students on the southside of Houston, Texas.",
		},
		{
			Title:       "San Antonio Hiring Event",
			EventDate:   "April 4th, 2024",
			Location:    "San Antonio, Texas",
			Description: "Hiring event in San Antonio",
		},
		{
			Title:       "Sunnyside Employment Initiative",
			EventDate:   "March 14th, 2024",
			Location:    "Sunnyside, Houston",
			Description: "Focused employment initiative in the Sunnyside community.",
		},
	}
	if err := db.Create(&events).Error; err != nil {
		return err
	}

	programs := []entity.Program{
		{Title: "Job Fair Programs", Description: "Regular job fairs connecting job seekers with employers across Houston and Texas."},
		{Title: "Free Tutoring Program", Description: "Educational support for youth to emphasize the importance of education in career development."},
		{Title: "Free Internet Program", Description: "Over 100 families received free Internet for 2 years to support education and job searching."},
	}
	if err := db.Create(&programs).Error; err != nil {
		return err
	}

	stats := []entity.ImpactStat{
		{Label: "JOB SEEKERS SERVED", Value: "1,808", SortOrder: 1},
		{Label: "EMPLOYERS PARTICIPATION", Value: "171", SortOrder: 2},
		{Label: "OPENING POTENTIALLY FILLED", Value: "824", SortOrder: 3},
	}
	if err := db.Create(&stats).Error; err != nil {
		return err
	}

	log.Println("Site content seeded successfully")
	return nil
}
