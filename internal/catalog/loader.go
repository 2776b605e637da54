package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/tickerhub/tickerhub/pkg/models"
)

// LoadStocksCSV reads a stock catalog override from a CSV file with the
// header: symbol,name,sector,exchange. The exchange column is optional.
func LoadStocksCSV(path string) ([]models.StockSymbol, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	stocks := make([]models.StockSymbol, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%s: row %d: want at least 3 columns, got %d", path, i+2, len(row))
		}
		sym := strings.ToUpper(strings.TrimSpace(row[0]))
		if sym == "" {
			continue
		}
		if seen[sym] {
			return nil, fmt.Errorf("%s: row %d: duplicate symbol %q", path, i+2, sym)
		}
		seen[sym] = true

		s := models.StockSymbol{
			Symbol: sym,
			Name:   strings.TrimSpace(row[1]),
			Sector: strings.TrimSpace(row[2]),
		}
		if len(row) > 3 {
			s.Exchange = strings.TrimSpace(row[3])
		}
		stocks = append(stocks, s)
	}
	if len(stocks) == 0 {
		return nil, fmt.Errorf("%s: no stock records", path)
	}
	return stocks, nil
}

// LoadCryptosCSV reads a crypto catalog override from a CSV file with
// the header: id,symbol,name,category.
func LoadCryptosCSV(path string) ([]models.CryptoAsset, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	cryptos := make([]models.CryptoAsset, 0, len(rows))
	seenID := make(map[string]bool, len(rows))
	for i, row := range rows {
		if len(row) < 4 {
			return nil, fmt.Errorf("%s: row %d: want 4 columns, got %d", path, i+2, len(row))
		}
		id := strings.ToLower(strings.TrimSpace(row[0]))
		if id == "" {
			continue
		}
		if seenID[id] {
			return nil, fmt.Errorf("%s: row %d: duplicate id %q", path, i+2, id)
		}
		seenID[id] = true

		cryptos = append(cryptos, models.CryptoAsset{
			ID:       id,
			Symbol:   strings.ToUpper(strings.TrimSpace(row[1])),
			Name:     strings.TrimSpace(row[2]),
			Category: strings.TrimSpace(row[3]),
		})
	}
	if len(cryptos) == 0 {
		return nil, fmt.Errorf("%s: no crypto records", path)
	}
	return cryptos, nil
}

// readCSV opens the file and returns all data rows, skipping the header.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // exchange column is optional
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: missing header or data rows", path)
	}
	return rows[1:], nil
}
