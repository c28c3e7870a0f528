package models

import "strings"

// Product is a catalog entry. The catalog is an in-memory fixture — there
// is no merchandising backend; this stands in for one.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	InStock     bool    `json:"in_stock"`
	DeliveryETA string  `json:"delivery_eta"`
}

var Categories = []string{
	"Dairy, Bread & Eggs",
	"Fruits & Vegetables",
	"Snacks & Munchies",
	"Cold Drinks & Juices",
	"Atta, Rice & Dal",
}

var Catalog = []Product{
	{ID: "milk-1", Name: "Amul Taaza Toned Fresh Milk", Description: "Pasteurised toned milk", Price: 28, Unit: "500 ml", Category: "Dairy, Bread & Eggs", Image: "products/milk.png", InStock: true, DeliveryETA: "8 mins"},
	{ID: "bread-1", Name: "Harvest Gold White Bread", Description: "Soft sandwich bread", Price: 45, Unit: "400 g", Category: "Dairy, Bread & Eggs", Image: "products/bread.png", InStock: true, DeliveryETA: "8 mins"},
	{ID: "eggs-1", Name: "Farm Fresh White Eggs", Description: "Pack of 6", Price: 42, Unit: "6 pcs", Category: "Dairy, Bread & Eggs", Image: "products/eggs.png", InStock: true, DeliveryETA: "8 mins"},
	{ID: "curd-1", Name: "Amul Masti Dahi", Description: "Fresh curd cup", Price: 35, Unit: "400 g", Category: "Dairy, Bread & Eggs", Image: "products/curd.png", InStock: true, DeliveryETA: "8 mins"},
	{ID: "banana-1", Name: "Robusta Banana", Description: "Fresh ripe bananas", Price: 32, Unit: "4 pcs", Category: "Fruits & Vegetables", Image: "products/banana.png", InStock: true, DeliveryETA: "10 mins"},
	{ID: "onion-1", Name: "Onion", Description: "Medium sized onions", Price: 38, Unit: "1 kg", Category: "Fruits & Vegetables", Image: "products/onion.png", InStock: true, DeliveryETA: "10 mins"},
	{ID: "tomato-1", Name: "Tomato Hybrid", Description: "Farm fresh tomatoes", Price: 29, Unit: "500 g", Category: "Fruits & Vegetables", Image: "products/tomato.png", InStock: true, DeliveryETA: "10 mins"},
	{ID: "chips-1", Name: "Lay's India's Magic Masala", Description: "Potato chips", Price: 20, Unit: "52 g", Category: "Snacks & Munchies", Image: "products/chips.png", InStock: true, DeliveryETA: "8 mins"},
	{ID: "biscuit-1", Name: "Parle-G Gold Biscuits", Description: "Glucose biscuits", Price: 30, Unit: "200 g", Category: "Snacks & Munchies", Image: "products/biscuit.png", InStock: true, DeliveryETA: "8 mins"},
	{ID: "cola-1", Name: "Thums Up Soft Drink", Description: "Chilled soft drink", Price: 40, Unit: "750 ml", Category: "Cold Drinks & Juices", Image: "products/cola.png", InStock: true, DeliveryETA: "8 mins"},
	{ID: "juice-1", Name: "Real Mixed Fruit Juice", Description: "Fruit power juice", Price: 110, Unit: "1 l", Category: "Cold Drinks & Juices", Image: "products/juice.png", InStock: false, DeliveryETA: "8 mins"},
	{ID: "atta-1", Name: "Aashirvaad Shudh Chakki Atta", Description: "Whole wheat flour", Price: 325, Unit: "5 kg", Category: "Atta, Rice & Dal", Image: "products/atta.png", InStock: true, DeliveryETA: "12 mins"},
	{ID: "rice-1", Name: "India Gate Basmati Rice", Description: "Feast Rozzana basmati", Price: 145, Unit: "1 kg", Category: "Atta, Rice & Dal", Image: "products/rice.png", InStock: true, DeliveryETA: "12 mins"},
	{ID: "dal-1", Name: "Tata Sampann Toor Dal", Description: "Unpolished toor dal", Price: 160, Unit: "1 kg", Category: "Atta, Rice & Dal", Image: "products/dal.png", InStock: true, DeliveryETA: "12 mins"},
}

// FindProduct looks a product up by id. Returns nil when absent.
func FindProduct(id string) *Product {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// SearchProducts matches name, description and category, case-insensitive.
func SearchProducts(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var results []Product
	for _, p := range Catalog {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			results = append(results, p)
		}
	}
	return results
}

// ProductsByCategory returns all catalog entries in a category.
func ProductsByCategory(category string) []Product {
	var results []Product
	for _, p := range Catalog {
		if strings.EqualFold(p.Category, category) {
			results = append(results, p)
		}
	}
	return results
}
