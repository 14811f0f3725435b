package catalog

import "github.com/nexusshop/storefront/internal/domain"

var (
	apparelSizes = []string{"XS", "S", "M", "L", "XL"}
	waistSizes   = []string{"28", "30", "32", "34", "36"}
	shoeSizes    = []string{"7", "8", "9", "10", "11", "12"}
	oneSize      = []string{"One Size"}
)

var products = []domain.Product{
	{
		ID:          "shirt-1",
		Name:        "Classic White Tee",
		Category:    domain.CategoryShirts,
		Price:       price("49.99"),
		Sizes:       apparelSizes,
		Description: "A timeless essential crafted from premium cotton. Perfect for any occasion.",
		Images:      placeholders(3),
	},
	{
		ID:          "shirt-2",
		Name:        "Oversized Black Shirt",
		Category:    domain.CategoryShirts,
		Price:       price("69.99"),
		Sizes:       []string{"S", "M", "L", "XL"},
		Description: "Relaxed fit with dropped shoulders. Made from organic cotton blend.",
		Images:      placeholders(2),
	},
	{
		ID:          "shirt-3",
		Name:        "Linen Summer Shirt",
		Category:    domain.CategoryShirts,
		Price:       price("89.99"),
		Sizes:       apparelSizes,
		Description: "Breathable linen shirt perfect for warm weather. Minimalist design.",
		Images:      placeholders(3),
	},
	{
		ID:          "shirt-4",
		Name:        "Graphic Print Tee",
		Category:    domain.CategoryShirts,
		Price:       price("59.99"),
		Sizes:       []string{"S", "M", "L", "XL"},
		Description: "Bold statement piece with exclusive Nexus artwork.",
		Images:      placeholders(2),
	},

	{
		ID:          "pants-1",
		Name:        "Slim Fit Chinos",
		Category:    domain.CategoryPants,
		Price:       price("99.99"),
		Sizes:       waistSizes,
		Description: "Modern slim fit chinos with stretch comfort. Versatile for work or weekend.",
		Images:      placeholders(3),
	},
	{
		ID:          "pants-2",
		Name:        "Wide Leg Trousers",
		Category:    domain.CategoryPants,
		Price:       price("129.99"),
		Sizes:       []string{"28", "30", "32", "34"},
		Description: "Elevated wide leg silhouette. High-waisted with pleated front.",
		Images:      placeholders(2),
	},
	{
		ID:          "pants-3",
		Name:        "Relaxed Denim Jeans",
		Category:    domain.CategoryPants,
		Price:       price("149.99"),
		Sizes:       waistSizes,
		Description: "Premium selvedge denim with relaxed fit. Crafted in Japan.",
		Images:      placeholders(3),
	},
	{
		ID:          "pants-4",
		Name:        "Cargo Pants",
		Category:    domain.CategoryPants,
		Price:       price("119.99"),
		Sizes:       []string{"S", "M", "L", "XL"},
		Description: "Utility-inspired cargo pants with multiple pockets. Durable cotton twill.",
		Images:      placeholders(2),
	},

	{
		ID:          "shoes-1",
		Name:        "Minimalist Sneakers",
		Category:    domain.CategoryShoes,
		Price:       price("189.99"),
		Sizes:       shoeSizes,
		Description: "Clean leather sneakers with cushioned sole. Handcrafted in Portugal.",
		Images:      placeholders(3),
	},
	{
		ID:          "shoes-2",
		Name:        "Chelsea Boots",
		Category:    domain.CategoryShoes,
		Price:       price("249.99"),
		Sizes:       shoeSizes,
		Description: "Classic Chelsea boots in premium suede. Elastic side panels.",
		Images:      placeholders(2),
	},
	{
		ID:          "shoes-3",
		Name:        "Canvas Slip-Ons",
		Category:    domain.CategoryShoes,
		Price:       price("79.99"),
		Sizes:       shoeSizes,
		Description: "Effortless slip-on style. Organic canvas upper.",
		Images:      placeholders(3),
	},
	{
		ID:          "shoes-4",
		Name:        "Running Trainers",
		Category:    domain.CategoryShoes,
		Price:       price("169.99"),
		Sizes:       shoeSizes,
		Description: "Performance meets style. Lightweight mesh with responsive cushioning.",
		Images:      placeholders(2),
	},

	{
		ID:          "acc-1",
		Name:        "Leather Belt",
		Category:    domain.CategoryAccessories,
		Price:       price("79.99"),
		Sizes:       []string{"S", "M", "L"},
		Description: "Full-grain leather belt with brushed metal buckle.",
		Images:      placeholders(2),
	},
	{
		ID:          "acc-2",
		Name:        "Canvas Tote Bag",
		Category:    domain.CategoryAccessories,
		Price:       price("69.99"),
		Sizes:       oneSize,
		Description: "Spacious tote bag in heavy canvas. Leather handles.",
		Images:      placeholders(3),
	},
	{
		ID:          "acc-3",
		Name:        "Wool Beanie",
		Category:    domain.CategoryAccessories,
		Price:       price("49.99"),
		Sizes:       oneSize,
		Description: "Merino wool beanie. Soft and warm for cold days.",
		Images:      placeholders(2),
	},
	{
		ID:          "acc-4",
		Name:        "Sunglasses",
		Category:    domain.CategoryAccessories,
		Price:       price("159.99"),
		Sizes:       oneSize,
		Description: "Acetate frame sunglasses with UV protection. Timeless design.",
		Images:      placeholders(3),
	},
}

func placeholders(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "placeholder"
	}
	return out
}
