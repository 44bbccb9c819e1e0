package gsod

import (
	"archive/tar"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Station is one weather station's records for a year, decoded from a single
// CSV within the yearly archive.
type Station struct {
	ID       string
	Name     string
	Location Location
	Reports  []*Report
}

// ReadStation decodes one station CSV.
func ReadStation(r io.Reader) (*Station, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := make(columns, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	station := &Station{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		if station.ID == "" {
			station.ID = cols.str(row, "STATION")
			station.Name = cols.str(row, "NAME")
			station.Location = Location{
				Lat: cols.float(row, "LATITUDE", 0),
				Lng: cols.float(row, "LONGITUDE", 0),
			}
		}

		report, err := reportFromRow(cols, row)
		if err != nil {
			return nil, err
		}
		station.Reports = append(station.Reports, report)
	}
	return station, nil
}

// EachStation walks a yearly tar.gz archive, decoding each station CSV and
// passing it to fn. Returning a non-nil error from fn stops the walk; the
// sentinel ErrStopped is swallowed so callers can end a scan early.
func EachStation(r io.Reader, fn func(*Station) error) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("opening gzip stream: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || !strings.HasSuffix(hdr.Name, ".csv") {
			continue
		}

		station, err := ReadStation(tr)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", hdr.Name, err)
		}
		if err := fn(station); err != nil {
			if err == ErrStopped {
				return nil
			}
			return err
		}
	}
}

// ErrStopped ends an EachStation walk without reporting an error.
var ErrStopped = fmt.Errorf("station walk stopped")

// FindStation scans the archive for the station with the given id.
func FindStation(r io.Reader, id string) (*Station, error) {
	var found *Station
	err := EachStation(r, func(s *Station) error {
		if s.ID == id {
			found = s
			return ErrStopped
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("station %s not found", id)
	}
	return found, nil
}
