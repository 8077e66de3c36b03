package database

import (
	"log"
	"timesheet/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return err
	}

	// Auto migrate the schema
	err = DB.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.Report{},
		&models.Activity{},
		&models.Comment{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaultAdmin(); err != nil {
		return err
	}

	return seedProjectCatalog()
}

func seedDefaultAdmin() error {
	var count int64
	DB.Model(&models.User{}).Where("email = ?", "admin@localhost").Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        "admin@localhost",
		FullName:     "Administrator",
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
	}

	result := DB.Create(&admin)
	if result.Error != nil {
		return result.Error
	}

	log.Println("Default admin user created (email: admin@localhost, password: admin)")
	return nil
}

// seedProjectCatalog loads a starter set of projects and tasks so the
// timecard pick-lists are not empty on a fresh install.
func seedProjectCatalog() error {
	var count int64
	DB.Model(&models.Project{}).Count(&count)
	if count > 0 {
		return nil
	}

	projects := []models.Project{
		{Name: "Internal", Tasks: []models.Task{{Name: "Meetings"}, {Name: "Training"}}},
		{Name: "Support", Tasks: []models.Task{{Name: "Tickets"}, {Name: "On-call"}}},
	}
	for i := range projects {
		if err := DB.Create(&projects[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
