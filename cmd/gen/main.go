package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.ProductImageModel{},
		model.ProductVariantModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.ProductRatingModel{},
		model.ProductCommentModel{},
		model.NotificationModel{},
		model.ChatMessageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
