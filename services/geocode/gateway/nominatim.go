package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"github.com/piresc/quickconnect/internal/pkg/constants"
	httpclient "github.com/piresc/quickconnect/internal/pkg/http"
	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/pkg/metrics"
	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/piresc/quickconnect/internal/utils"
	"github.com/piresc/quickconnect/services/geocode"
)

// geohash precision 8 is a cell of roughly 38m x 19m
const cellPrecision = 8

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// NominatimGW reverse-geocodes through a Nominatim-compatible endpoint
type NominatimGW struct {
	client    *httpclient.EnhancedClient
	baseURL   string
	userAgent string
	cache     *gocache.Cache
	metrics   *metrics.Metrics
}

// NewNominatimGW creates the gateway. A zero CacheTTL disables caching.
func NewNominatimGW(cfg models.GeocoderConfig, client *httpclient.EnhancedClient, m *metrics.Metrics) *NominatimGW {
	gw := &NominatimGW{
		client:    client,
		baseURL:   cfg.URL,
		userAgent: cfg.UserAgent,
		metrics:   m,
	}
	if cfg.CacheTTL > 0 {
		gw.cache = gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	return gw
}

// ReverseGeocode returns the display name for lat/lng
func (g *NominatimGW) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	key := fmt.Sprintf(constants.KeyGeocodeCell, utils.EncodeGeohash(lat, lng, cellPrecision))
	if g.cache != nil {
		if cached, ok := g.cache.Get(key); ok {
			g.metrics.GeocodeResult("cache_hit")
			return cached.(string), nil
		}
	}

	endpoint, err := url.Parse(g.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid geocoder url: %w", err)
	}
	q := endpoint.Query()
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	endpoint.RawQuery = q.Encode()

	var resp reverseResponse
	err = g.client.GetJSON(ctx, endpoint.String(), map[string]string{"User-Agent": g.userAgent}, &resp)
	if err != nil {
		g.metrics.GeocodeResult("error")
		return "", fmt.Errorf("reverse geocoding failed: %w", err)
	}

	address := strings.TrimSpace(resp.DisplayName)
	if address == "" {
		g.metrics.GeocodeResult("empty")
		logger.Debug("Geocoder returned no address",
			logger.String("cell", key),
			logger.String("upstream_error", resp.Error))
		return "", geocode.ErrAddressNotFound
	}

	if g.cache != nil {
		g.cache.SetDefault(key, address)
	}
	g.metrics.GeocodeResult("ok")
	return address, nil
}
