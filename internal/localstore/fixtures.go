package localstore

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/example/storefront/internal/model"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixtureProduct struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Price         float64  `yaml:"price"`
	OriginalPrice float64  `yaml:"original_price"`
	Images        []string `yaml:"images"`
	Category      string   `yaml:"category"`
	Subcategory   string   `yaml:"subcategory"`
	Sizes         []string `yaml:"sizes"`
	Colors        []string `yaml:"colors"`
	InStock       bool     `yaml:"in_stock"`
	StockQuantity int      `yaml:"stock_quantity"`
	Featured      bool     `yaml:"featured"`
	New           bool     `yaml:"new"`
	Rating        float64  `yaml:"rating"`
	ReviewCount   int      `yaml:"review_count"`
}

type fixtureFile struct {
	Products []fixtureProduct `yaml:"products"`
}

// seedProducts decodes the embedded fixture catalog
func seedProducts(now time.Time) ([]model.Product, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}

	products := make([]model.Product, 0, len(f.Products))
	for _, p := range f.Products {
		products = append(products, model.Product{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Images:        p.Images,
			Category:      p.Category,
			Subcategory:   p.Subcategory,
			Sizes:         p.Sizes,
			Colors:        p.Colors,
			InStock:       p.InStock,
			StockQuantity: p.StockQuantity,
			Featured:      p.Featured,
			New:           p.New,
			Rating:        p.Rating,
			ReviewCount:   p.ReviewCount,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return products, nil
}
