package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Category and Product are the parsed sheet rows. Ids are assigned by
// the catalog when the rows are inserted, not here.
type Category struct {
	Name     string
	Products []Product
}

type Product struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Available   bool
}

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

// ParseCatalog reads a menu spreadsheet into categories and products.
// Rows with only column A filled start a new category; rows with name
// and price are products of the current category. Columns: A name,
// B description, C price, D image URL, E available (TRUE/FALSE).
func (p *GoogleSheetsParser) ParseCatalog(ctx context.Context, spreadsheetID string) ([]Category, error) {
	readRange := "A:E"
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	var categories []Category
	var current *Category

	// skip header
	for i := 1; i < len(resp.Values); i++ {
		row := resp.Values[i]
		if len(row) == 0 || cell(row, 0) == "" {
			continue
		}

		// category row: only column A filled
		if len(row) == 1 || cell(row, 1) == "" && cell(row, 2) == "" {
			if current != nil {
				categories = append(categories, *current)
			}
			current = &Category{Name: cell(row, 0)}
			continue
		}

		// product rows before any category header go to a default one
		if current == nil {
			current = &Category{Name: "General"}
		}

		product := Product{
			Name:        cell(row, 0),
			Description: cell(row, 1),
			Image:       cell(row, 3),
			Available:   true,
		}

		if priceStr := cell(row, 2); priceStr != "" {
			price, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimLeft(priceStr, "$ ")), 64)
			if err == nil {
				product.Price = price
			}
		}

		if availStr := cell(row, 4); availStr != "" {
			product.Available = strings.ToUpper(availStr) == "TRUE"
		}

		current.Products = append(current.Products, product)
	}

	if current != nil {
		categories = append(categories, *current)
	}

	return categories, nil
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[idx]))
}
