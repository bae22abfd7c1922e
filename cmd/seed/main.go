package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/misircafe/misircafe-backend/config"
	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/internal/app/repository"
	"github.com/misircafe/misircafe-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Seeds the menu from an XLSX export. Expected columns, first row is
// the header:
//
//	A category title
//	B category description
//	C category image URL
//	D item name
//	E item description
//	F price (display string, e.g. "450 TL")
//	G popular (yes/no)
//
// Rows sharing a category title land in the same category; categories
// get their display order from first appearance.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	categories, items, err := readMenuFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Categories to import: %d\n", len(categories))
	fmt.Printf("Menu items to import: %d\n", len(items))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	menuItemRepo := repository.NewMenuItemRepository(db.GetDB())

	categoryIDs := make(map[string]string)
	for _, category := range categories {
		c := category
		if err := categoryRepo.Create(&c); err != nil {
			log.Fatalf("Failed to create category %q: %v", c.Title, err)
		}
		categoryIDs[c.Title] = c.ID
	}

	imported := 0
	for _, item := range items {
		it := item.item
		it.CategoryID = categoryIDs[item.categoryTitle]
		if err := menuItemRepo.Create(&it); err != nil {
			log.Fatalf("Failed to create menu item %q: %v", it.Name, err)
		}
		imported++
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total menu items imported: %d\n", imported)
}

type seedItem struct {
	categoryTitle string
	item          model.MenuItem
}

func readMenuFromXLSX(filePath string) ([]model.Category, []seedItem, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("no data found in XLSX file")
	}

	var categories []model.Category
	var items []seedItem
	seenCategories := make(map[string]bool)
	skippedCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 6 {
			skippedCount++
			continue
		}

		categoryTitle := strings.TrimSpace(row[0])
		itemName := strings.TrimSpace(row[3])
		price := strings.TrimSpace(row[5])
		if categoryTitle == "" || itemName == "" || price == "" {
			skippedCount++
			continue
		}

		if !seenCategories[categoryTitle] {
			seenCategories[categoryTitle] = true
			categories = append(categories, model.Category{
				Title:       categoryTitle,
				Description: strings.TrimSpace(row[1]),
				ImageURL:    strings.TrimSpace(row[2]),
				SortOrder:   len(categories) + 1,
			})
		}

		popular := false
		if len(row) > 6 {
			switch strings.ToLower(strings.TrimSpace(row[6])) {
			case "yes", "y", "true", "1":
				popular = true
			}
		}

		items = append(items, seedItem{
			categoryTitle: categoryTitle,
			item: model.MenuItem{
				Name:        itemName,
				Description: strings.TrimSpace(row[4]),
				Price:       price,
				IsPopular:   popular,
				IsActive:    true,
			},
		})
	}

	if skippedCount > 0 {
		fmt.Printf("Skipped %d incomplete rows\n", skippedCount)
	}

	return categories, items, nil
}
