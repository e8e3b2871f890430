// Command seed populates the database with a default admin account,
// the base categories and a handful of sample products. Every write is
// an upsert or first-or-create, so reruns are safe.
package main

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	adminEmail    = "admin@storefront.local"
	adminPassword = "admin123"
)

type seedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(runSeed),
	).Run()
}

func runSeed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := seed(context.Background(), params); err != nil {
					params.Logger.Error("Seeding failed", slog.Any("error", err))
					params.Shutdown(fx.ExitCode(1))

					return
				}

				params.Logger.Info("Seeding completed")
				params.Shutdown()
			}()

			return nil
		},
	})
}

func seed(ctx context.Context, params seedParams) error {
	db := params.DB.WithContext(ctx)

	if err := seedAdmin(db, params); err != nil {
		return err
	}

	categories, err := seedCategories(db)
	if err != nil {
		return err
	}

	return seedProducts(db, categories)
}

func seedAdmin(db *gorm.DB, params seedParams) error {
	hasher := auth.NewBcryptHasher(params.Config)
	hashed, err := hasher.Hash(adminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := model.UserModel{
		Email:          adminEmail,
		HashedPassword: hashed,
		IsAdmin:        true,
		IsActive:       true,
	}

	// Existing admins keep their password; only the flags are refreshed.
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_admin", "is_active"}),
	}).Create(&admin).Error

	return errors.Wrap(err, "failed to seed admin user")
}

func seedCategories(db *gorm.DB) (map[string]model.CategoryModel, error) {
	names := []string{"Coffee", "Tea", "Pastries", "Sandwiches", "Merchandise"}

	categories := make(map[string]model.CategoryModel, len(names))
	for _, name := range names {
		category := model.CategoryModel{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to seed category %q", name)
		}
		categories[name] = category
	}

	return categories, nil
}

func seedProducts(db *gorm.DB, categories map[string]model.CategoryModel) error {
	products := []model.ProductModel{
		{
			Name:        "House Latte",
			Description: "Double shot with steamed milk.",
			Price:       4.50,
			CategoryID:  categories["Coffee"].ID,
			Images: []model.ProductImageModel{
				{URL: "/media/seed/latte.png", Position: 0},
			},
			Variants: []model.ProductVariantModel{
				{Name: "Small", Price: 4.50},
				{Name: "Large", Price: 5.50},
			},
		},
		{
			Name:        "Earl Grey",
			Description: "Loose leaf, bergamot forward.",
			Price:       3.00,
			CategoryID:  categories["Tea"].ID,
			Variants: []model.ProductVariantModel{
				{Name: "Cup", Price: 3.00},
				{Name: "Pot", Price: 5.00},
			},
		},
		{
			Name:        "Butter Croissant",
			Description: "Baked every morning.",
			Price:       3.25,
			CategoryID:  categories["Pastries"].ID,
			Images: []model.ProductImageModel{
				{URL: "/media/seed/croissant.png", Position: 0},
			},
		},
	}

	for i := range products {
		product := &products[i]
		if err := db.Where("name = ?", product.Name).FirstOrCreate(product).Error; err != nil {
			return errors.Wrapf(err, "failed to seed product %q", product.Name)
		}
	}

	return nil
}
