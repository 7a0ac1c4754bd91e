package repository

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/piresc/quickconnect/services/hospital"
	"gopkg.in/yaml.v2"
)

//go:embed hospitals.yaml
var defaultCatalog []byte

type catalogFile struct {
	Hospitals []models.Hospital `yaml:"hospitals"`
}

// CatalogRepository serves the static hospital list
type CatalogRepository struct {
	hospitals []models.Hospital
	byID      map[string]int
}

// NewCatalogRepository loads the catalogue from path, or the embedded
// catalogue when path is empty
func NewCatalogRepository(path string) (*CatalogRepository, error) {
	data := defaultCatalog
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read hospital catalog: %w", err)
		}
		data = raw
		logger.Info("Loaded hospital catalog override", logger.String("path", path))
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*CatalogRepository, error) {
	var file catalogFile
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode hospital catalog: %w", err)
	}
	if len(file.Hospitals) == 0 {
		return nil, hospital.ErrEmptyCatalog
	}

	repo := &CatalogRepository{
		hospitals: file.Hospitals,
		byID:      make(map[string]int, len(file.Hospitals)),
	}
	for i, h := range file.Hospitals {
		if h.ID == "" || h.Name == "" {
			return nil, fmt.Errorf("hospital at index %d is missing id or name", i)
		}
		if _, dup := repo.byID[h.ID]; dup {
			return nil, fmt.Errorf("duplicate hospital id %q", h.ID)
		}
		if !models.ValidCoordinates(h.Coordinates.Lat, h.Coordinates.Lng) {
			return nil, fmt.Errorf("hospital %q has invalid coordinates", h.ID)
		}
		repo.byID[h.ID] = i
	}
	return repo, nil
}

// List returns a copy of the catalogue in file order
func (r *CatalogRepository) List(ctx context.Context) ([]models.Hospital, error) {
	out := make([]models.Hospital, len(r.hospitals))
	copy(out, r.hospitals)
	return out, nil
}

// Get returns a copy of one hospital
func (r *CatalogRepository) Get(ctx context.Context, id string) (*models.Hospital, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, hospital.ErrHospitalNotFound
	}
	h := r.hospitals[i]
	return &h, nil
}
