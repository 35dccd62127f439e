package gateway

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"sales-analytics/internal/domain"
)

// readSellersCSV parses a sellers file with columns id,first_name,last_name.
func readSellersCSV(path string) ([]domain.Seller, error) {
	var sellers []domain.Seller
	err := readCSV(path, 3, func(record []string) error {
		sellers = append(sellers, domain.Seller{
			ID:        record[0],
			FirstName: record[1],
			LastName:  record[2],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sellers, nil
}

// readProductsCSV parses a catalog file with columns sku,purchase_price,sale_price.
func readProductsCSV(path string) ([]domain.Product, error) {
	var products []domain.Product
	err := readCSV(path, 3, func(record []string) error {
		purchasePrice, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return fmt.Errorf("could not parse purchase_price '%s': %w", record[1], err)
		}
		salePrice, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return fmt.Errorf("could not parse sale_price '%s': %w", record[2], err)
		}
		products = append(products, domain.Product{
			SKU:           record[0],
			PurchasePrice: purchasePrice,
			SalePrice:     salePrice,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// readCSV opens path, skips the header and hands every row to fn.
func readCSV(path string, columns int, fn func(record []string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = columns
	reader.TrimLeadingSpace = true
	// Skip header
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if err := fn(record); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
