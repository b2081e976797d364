// Package archive extracts named point features from a compressed
// nomenclature archive: a zip container holding one KML document and zero or
// more raster assets.
package archive

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"atlas/internal/domain"
	"atlas/pkg/platform/sentinel"
)

var skippedRecords = promauto.NewCounter(prometheus.CounterOpts{
	Name: "atlas_archive_records_skipped_total",
	Help: "Placemarks dropped for missing names or unparseable coordinates",
})

// Asset is a non-KML entry carried alongside the markup document, typically
// a raster overlay.
type Asset struct {
	Name string
	Data []byte
}

// Result is the outcome of parsing one archive. Skipped counts individual
// malformed placemarks; they are reported in aggregate, never raised
// per-record.
type Result struct {
	Features []domain.Feature
	Assets   []Asset
	Skipped  int
}

// KML wire shapes. Placemarks may sit directly under Document or be nested in
// arbitrarily deep Folder levels; both ExtendedData conventions (Data pairs
// and SchemaData/SimpleData) occur in the wild.
type kmlRoot struct {
	XMLName  xml.Name    `xml:"kml"`
	Document kmlFolder   `xml:"Document"`
	Folders  []kmlFolder `xml:"Folder"`
}

type kmlFolder struct {
	Folders    []kmlFolder    `xml:"Folder"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name        string      `xml:"name"`
	Coordinates string      `xml:"Point>coordinates"`
	Data        []kmlPair   `xml:"ExtendedData>Data"`
	SimpleData  []kmlSimple `xml:"ExtendedData>SchemaData>SimpleData"`
}

type kmlPair struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

type kmlSimple struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// Parse reads an archive blob and extracts its features and auxiliary assets.
// Malformed individual placemarks are skipped and counted. A blob that is not
// a zip, holds no KML entry, or whose KML is not well-formed XML yields an
// empty Result and an error the caller treats as recoverable.
func Parse(blob []byte) (Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return Result{}, fmt.Errorf("open archive container: %v: %w", err, sentinel.ErrMalformed)
	}

	var markup []byte
	var assets []Asset
	for _, entry := range zr.File {
		data, rerr := readEntry(entry)
		if rerr != nil {
			return Result{}, fmt.Errorf("read archive entry %q: %v: %w", entry.Name, rerr, sentinel.ErrMalformed)
		}
		if strings.EqualFold(path.Ext(entry.Name), ".kml") && markup == nil {
			markup = data
			continue
		}
		assets = append(assets, Asset{Name: entry.Name, Data: data})
	}
	if markup == nil {
		return Result{}, fmt.Errorf("archive holds no markup document: %w", sentinel.ErrMalformed)
	}

	var root kmlRoot
	if err := xml.Unmarshal(markup, &root); err != nil {
		return Result{}, fmt.Errorf("parse markup document: %v: %w", err, sentinel.ErrMalformed)
	}

	var features []domain.Feature
	skipped := 0
	collect := func(p kmlPlacemark) {
		f, ok := toFeature(p)
		if !ok {
			skipped++
			skippedRecords.Inc()
			return
		}
		features = append(features, f)
	}
	walkFolder(root.Document, collect)
	for _, folder := range root.Folders {
		walkFolder(folder, collect)
	}

	return Result{Features: features, Assets: assets, Skipped: skipped}, nil
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func walkFolder(f kmlFolder, visit func(kmlPlacemark)) {
	for _, p := range f.Placemarks {
		visit(p)
	}
	for _, sub := range f.Folders {
		walkFolder(sub, visit)
	}
}

// toFeature validates one placemark. A record needs a name and a parseable
// finite coordinate pair; everything else is optional and defaults to
// absent rather than erroring.
func toFeature(p kmlPlacemark) (domain.Feature, bool) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return domain.Feature{}, false
	}
	lat, lon, ok := parseCoordinates(p.Coordinates)
	if !ok {
		return domain.Feature{}, false
	}

	f := domain.Feature{
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
		Source:    domain.SourceArchive,
	}
	applyAttributes(&f, p)
	return f, true
}

// parseCoordinates reads the "longitude,latitude[,altitude]" triple.
func parseCoordinates(raw string) (lat, lon float64, ok bool) {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) < 2 {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 0, 0, false
	}
	return lat, lon, true
}

func applyAttributes(f *domain.Feature, p kmlPlacemark) {
	attrs := make(map[string]string, len(p.Data)+len(p.SimpleData))
	for _, d := range p.Data {
		attrs[strings.ToLower(strings.TrimSpace(d.Name))] = strings.TrimSpace(d.Value)
	}
	for _, d := range p.SimpleData {
		attrs[strings.ToLower(strings.TrimSpace(d.Name))] = strings.TrimSpace(d.Value)
	}

	f.Type = attrs["feature_type"]
	f.Origin = attrs["origin"]
	f.ApprovalDate = attrs["approval_date"]
	if raw := attrs["diameter"]; raw != "" {
		if d, err := strconv.ParseFloat(raw, 64); err == nil && d > 0 {
			f.DiameterKm = domain.Km(d)
		}
	}
}
