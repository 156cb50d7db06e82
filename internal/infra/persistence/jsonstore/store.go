// Package jsonstore loads the static JSON content of the site into immutable
// in-memory collections and implements the directory repositories on top of
// them. Loading happens exactly once at process start; a malformed document
// aborts startup instead of serving a partially loaded site.
package jsonstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/azez-alhoot/fannifix-hub/config"
	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"
	"github.com/azez-alhoot/fannifix-hub/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	countriesFile   = "countries.json"
	servicesFile    = "services.json"
	techniciansFile = "technicians.json"
	listingsFile    = "listings.json"
	areasDir        = "areas"
	seoDir          = "seo"
)

// Collections holds the parsed content of every JSON document. It is the
// input for constructing a Store directly, which tests use to seed fixtures.
type Collections struct {
	Countries   []*entity.Country
	Services    []*entity.Service
	Areas       []*entity.Area
	Technicians []*entity.Technician
	Listings    []*entity.Listing
	Seo         []*entity.SeoDocument
}

// Store is the read-only entity store. All slices preserve document order;
// the maps are lookup indexes over the same records. Nothing is mutated
// after New returns, so concurrent readers need no locking.
type Store struct {
	countries   []*entity.Country
	services    []*entity.Service
	areas       map[string][]*entity.Area
	technicians []*entity.Technician
	listings    []*entity.Listing
	seo         map[string]*entity.SeoDocument

	countryByCode map[string]*entity.Country
	serviceByID   map[string]*entity.Service
	serviceBySlug map[string]*entity.Service
	serviceByKey  map[string]*entity.Service
	areaByID      map[string]map[string]*entity.Area
	areaBySlug    map[string]map[string]*entity.Area
	techByID      map[string]*entity.Technician
	listingByID   map[string]*entity.Listing
}

// New reads every JSON collection from the configured data directory.
// It fails on the first unreadable or malformed document.
func New(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	var dataPath string
	if cfg.Data != nil {
		dataPath = cfg.Data.Path
	}

	var defaultCountry string
	if cfg.Site != nil {
		defaultCountry = cfg.Site.DefaultCountry
	}

	var cols Collections

	if err := readJSONFile(filepath.Join(dataPath, countriesFile), &cols.Countries); err != nil {
		return nil, err
	}
	if err := readJSONFile(filepath.Join(dataPath, servicesFile), &cols.Services); err != nil {
		return nil, err
	}

	areas, err := loadAreas(filepath.Join(dataPath, areasDir))
	if err != nil {
		return nil, err
	}
	cols.Areas = areas

	technicians, err := loadTechnicians(filepath.Join(dataPath, techniciansFile), defaultCountry)
	if err != nil {
		return nil, err
	}
	cols.Technicians = technicians

	listings, err := loadListings(filepath.Join(dataPath, listingsFile))
	if err != nil {
		return nil, err
	}
	cols.Listings = listings

	seo, err := loadSeoDocuments(filepath.Join(dataPath, seoDir))
	if err != nil {
		return nil, err
	}
	cols.Seo = seo

	store, err := NewFromCollections(cols)
	if err != nil {
		return nil, err
	}

	logger.Info("directory data loaded",
		slog.String("path", dataPath),
		slog.Int("countries", len(store.countries)),
		slog.Int("services", len(store.services)),
		slog.Int("areas", len(cols.Areas)),
		slog.Int("technicians", len(store.technicians)),
		slog.Int("listings", len(store.listings)),
		slog.Int("seoDocuments", len(store.seo)),
	)

	return store, nil
}

// NewFromCollections validates the given collections and builds the store
// with all lookup indexes. Referential integrity between collections is not
// enforced: a listing may reference an unknown technician and the reference
// simply resolves to not-found at query time.
func NewFromCollections(cols Collections) (*Store, error) {
	if err := validateCollections(cols); err != nil {
		return nil, err
	}

	store := &Store{
		countries:     cols.Countries,
		services:      cols.Services,
		areas:         make(map[string][]*entity.Area),
		technicians:   cols.Technicians,
		listings:      cols.Listings,
		seo:           make(map[string]*entity.SeoDocument, len(cols.Seo)),
		countryByCode: make(map[string]*entity.Country, len(cols.Countries)),
		serviceByID:   make(map[string]*entity.Service, len(cols.Services)),
		serviceBySlug: make(map[string]*entity.Service, len(cols.Services)),
		serviceByKey:  make(map[string]*entity.Service, len(cols.Services)),
		areaByID:      make(map[string]map[string]*entity.Area),
		areaBySlug:    make(map[string]map[string]*entity.Area),
		techByID:      make(map[string]*entity.Technician, len(cols.Technicians)),
		listingByID:   make(map[string]*entity.Listing, len(cols.Listings)),
	}

	for _, country := range cols.Countries {
		if _, exists := store.countryByCode[country.Code]; exists {
			return nil, errors.Errorf("duplicate country code %q", country.Code)
		}
		store.countryByCode[country.Code] = country
	}

	for _, svc := range cols.Services {
		if _, exists := store.serviceByID[svc.ID]; exists {
			return nil, errors.Errorf("duplicate service id %q", svc.ID)
		}
		if _, exists := store.serviceBySlug[svc.Slug]; exists {
			return nil, errors.Errorf("duplicate service slug %q", svc.Slug)
		}
		store.serviceByID[svc.ID] = svc
		store.serviceBySlug[svc.Slug] = svc
		store.serviceByKey[svc.Key] = svc
	}

	for _, area := range cols.Areas {
		cc := area.CountryCode
		if _, seen := store.areas[cc]; !seen {
			store.areaByID[cc] = make(map[string]*entity.Area)
			store.areaBySlug[cc] = make(map[string]*entity.Area)
		}
		if _, exists := store.areaByID[cc][area.ID]; exists {
			return nil, errors.Errorf("duplicate area id %q in country %q", area.ID, cc)
		}
		if _, exists := store.areaBySlug[cc][area.Slug]; exists {
			return nil, errors.Errorf("duplicate area slug %q in country %q", area.Slug, cc)
		}
		store.areas[cc] = append(store.areas[cc], area)
		store.areaByID[cc][area.ID] = area
		store.areaBySlug[cc][area.Slug] = area
	}

	for _, tech := range cols.Technicians {
		if _, exists := store.techByID[tech.ID]; exists {
			return nil, errors.Errorf("duplicate technician id %q", tech.ID)
		}
		store.techByID[tech.ID] = tech
	}

	for _, listing := range cols.Listings {
		if _, exists := store.listingByID[listing.ID]; exists {
			return nil, errors.Errorf("duplicate listing id %q", listing.ID)
		}
		store.listingByID[listing.ID] = listing
	}

	for _, doc := range cols.Seo {
		if _, exists := store.seo[doc.CountryCode]; exists {
			return nil, errors.Errorf("duplicate seo document for country %q", doc.CountryCode)
		}
		store.seo[doc.CountryCode] = doc
	}

	return store, nil
}

func validateCollections(cols Collections) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	for _, country := range cols.Countries {
		if err := validate.Struct(country); err != nil {
			return errors.Wrapf(err, "invalid country record %q", country.Code)
		}
	}
	for _, svc := range cols.Services {
		if err := validate.Struct(svc); err != nil {
			return errors.Wrapf(err, "invalid service record %q", svc.ID)
		}
	}
	for _, area := range cols.Areas {
		if err := validate.Struct(area); err != nil {
			return errors.Wrapf(err, "invalid area record %q", area.ID)
		}
	}
	for _, tech := range cols.Technicians {
		if err := validate.Struct(tech); err != nil {
			return errors.Wrapf(err, "invalid technician record %q", tech.ID)
		}
	}
	for _, listing := range cols.Listings {
		if err := validate.Struct(listing); err != nil {
			return errors.Wrapf(err, "invalid listing record %q", listing.ID)
		}
	}
	for _, doc := range cols.Seo {
		if err := validate.Struct(doc); err != nil {
			return errors.Wrapf(err, "invalid seo document for country %q", doc.CountryCode)
		}
	}

	return nil
}

func readJSONFile(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}

	return nil
}

// loadAreas reads every per-country area file under dir. The file name
// supplies the country code; records that carry their own countryCode must
// agree with it.
func loadAreas(dir string) ([]*entity.Area, error) {
	files, err := listJSONFiles(dir)
	if err != nil {
		return nil, err
	}

	var all []*entity.Area
	for _, path := range files {
		countryCode := countryCodeFromFile(path)

		var areas []*entity.Area
		if err := readJSONFile(path, &areas); err != nil {
			return nil, err
		}

		for _, area := range areas {
			if area.CountryCode == "" {
				area.CountryCode = countryCode
			} else if area.CountryCode != countryCode {
				return nil, errors.Errorf("area %q declares country %q but lives in %s", area.ID, area.CountryCode, path)
			}
		}

		all = append(all, areas...)
	}

	return all, nil
}

func loadSeoDocuments(dir string) ([]*entity.SeoDocument, error) {
	files, err := listJSONFiles(dir)
	if err != nil {
		return nil, err
	}

	var docs []*entity.SeoDocument
	for _, path := range files {
		countryCode := countryCodeFromFile(path)

		doc := new(entity.SeoDocument)
		if err := readJSONFile(path, doc); err != nil {
			return nil, err
		}

		if doc.CountryCode == "" {
			doc.CountryCode = countryCode
		} else if doc.CountryCode != countryCode {
			return nil, errors.Errorf("seo document declares country %q but lives in %s", doc.CountryCode, path)
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// listJSONFiles returns the .json files of dir in lexical order. A missing
// directory is treated as empty, not as an error: a market may ship without
// per-country documents.
func listJSONFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "read dir %s", dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	return files, nil
}

func countryCodeFromFile(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}
