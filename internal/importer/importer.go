package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pawfinder/internal/domain"
)

// CatalogWriter receives the fully parsed listing set.
type CatalogWriter interface {
	Import(listings []domain.Listing)
}

// CSVImporter reads marketplace listing exports and replaces the catalog.
type CSVImporter struct {
	reader  *csv.Reader
	catalog CatalogWriter
}

func NewCSVImporter(r io.Reader, catalog CatalogWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:  csvr,
		catalog: catalog,
	}
}

type csvRow struct {
	ListingID   string
	Breed       string
	Price       int64
	AgeMonths   int
	Image       string
	Description string
	Tags        []string
}

// Run parses CSV rows and replaces the catalog with the parsed listings.
// Rows with an empty listingId are continuation rows: their tags belong to
// the listing above them.
func (i *CSVImporter) Run() (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *csvRow
		listings []domain.Listing
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		listing, err := current.listing()
		if err != nil {
			return err
		}
		listings = append(listings, listing)
		current = nil
		return nil
	}

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.ListingID != "" {
			if err := flush(); err != nil {
				return 0, err
			}
			current = row
			continue
		}

		if current != nil && len(row.Tags) > 0 {
			current.Tags = append(current.Tags, row.Tags...)
		}
	}

	if err := flush(); err != nil {
		return 0, err
	}

	i.catalog.Import(listings)
	return len(listings), nil
}

func (r *csvRow) listing() (domain.Listing, error) {
	if r.Breed == "" || r.Price <= 0 {
		return domain.Listing{}, fmt.Errorf("invalid listing row (missing breed or price) for id %q", r.ListingID)
	}
	return domain.Listing{
		ListingID:   r.ListingID,
		Breed:       r.Breed,
		Price:       r.Price,
		AgeMonths:   r.AgeMonths,
		Image:       r.Image,
		Description: r.Description,
		Tags:        r.Tags,
	}, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) *csvRow {
	get := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	row := &csvRow{
		ListingID:   get("listingid"),
		Breed:       get("breed"),
		Image:       get("image"),
		Description: get("description"),
	}
	if v := get("price"); v != "" {
		if price, err := strconv.ParseInt(v, 10, 64); err == nil {
			row.Price = price
		}
	}
	if v := get("agemonths"); v != "" {
		if age, err := strconv.Atoi(v); err == nil {
			row.AgeMonths = age
		}
	}
	if v := get("tags"); v != "" {
		for _, tag := range strings.Split(v, ";") {
			if tag = strings.TrimSpace(tag); tag != "" {
				row.Tags = append(row.Tags, tag)
			}
		}
	}

	if row.ListingID == "" && len(row.Tags) == 0 {
		return nil
	}
	return row
}
