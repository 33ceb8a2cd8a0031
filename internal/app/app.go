package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/threadmill/catalog/internal/adapters/httpserver"
	"github.com/threadmill/catalog/internal/adapters/repo/postgres"
	"github.com/threadmill/catalog/internal/domain"
	"github.com/threadmill/catalog/internal/usecase"
)

type App struct {
	DB        *gorm.DB
	ProductUC *usecase.ProductUC
	Refs      domain.ReferenceRepo
}

func NewApp(db *gorm.DB) (*App, error) {
	prodRepo := postgres.NewProductRepo(db)
	refRepo := postgres.NewReferenceRepo(db)

	app := &App{DB: db}
	app.ProductUC = &usecase.ProductUC{Products: prodRepo}
	app.Refs = refRepo
	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.ProductUC, a.Refs)
}

func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(
		&domain.Product{}, &domain.ProductItem{}, &domain.Size{}, &domain.Stock{},
		&domain.Category{}, &domain.Gender{},
	); err != nil {
		return err
	}
	return seedReferences(a.DB)
}

// seedReferences fills the lookup tables on first boot only.
func seedReferences(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		cats := []domain.Category{
			{CategoryName: "shirts"}, {CategoryName: "pants"},
			{CategoryName: "shoes"}, {CategoryName: "accessories"},
		}
		if err := db.Create(&cats).Error; err != nil {
			return err
		}
	}
	if err := db.Model(&domain.Gender{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		genders := []domain.Gender{
			{GenderName: "men"}, {GenderName: "women"}, {GenderName: "unisex"},
		}
		if err := db.Create(&genders).Error; err != nil {
			return err
		}
	}
	return nil
}
