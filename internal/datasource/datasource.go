// Package datasource retrieves NOAA GSOD yearly archives and caches them on
// disk. The charting engine never sees any of this; it operates on records
// decoded from files this package has already materialized.
package datasource

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the NCEI archive directory for GSOD.
const DefaultBaseURL = "https://www.ncei.noaa.gov/data/global-summary-of-the-day/archive/"

// Store is an on-disk cache of yearly archives keyed by year.
type Store struct {
	dir     string
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

// NewStore opens (creating if needed) the cache directory at dir.
func NewStore(dir, baseURL string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		dir:     dir,
		baseURL: baseURL,
		client:  http.DefaultClient,
		log:     log,
	}, nil
}

// ArchiveURL returns the upstream URL of the year's archive.
func (s *Store) ArchiveURL(year int) string {
	return fmt.Sprintf("%s%d.tar.gz", s.baseURL, year)
}

// archivePath returns the cache location of the year's archive.
func (s *Store) archivePath(year int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d.tar.gz", year))
}

// OpenYear returns a reader over the year's archive, downloading it into the
// cache first if it is not already present.
func (s *Store) OpenYear(ctx context.Context, year int) (io.ReadCloser, error) {
	dst := s.archivePath(year)
	if _, err := os.Stat(dst); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err := s.download(ctx, s.ArchiveURL(year), dst); err != nil {
			return nil, err
		}
	}
	return os.Open(dst)
}

// FetchYears warms the cache for several years concurrently. Years already
// cached are skipped.
func (s *Store) FetchYears(ctx context.Context, years []int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, year := range years {
		g.Go(func() error {
			f, err := s.OpenYear(ctx, year)
			if err != nil {
				return fmt.Errorf("fetching %d: %w", year, err)
			}
			return f.Close()
		})
	}
	return g.Wait()
}

// download fetches url into dst, writing through a temp file so an
// interrupted transfer never leaves a truncated archive in the cache.
func (s *Store) download(ctx context.Context, url, dst string) error {
	s.log.Info("downloading archive", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: %s", url, res.Status)
	}

	tmp, err := os.CreateTemp(s.dir, ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, res.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// AvailableYears scrapes the archive directory index and returns the years
// with a published archive, in ascending order.
func (s *Store) AvailableYears(ctx context.Context) ([]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching index: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching index: %s", res.Status)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing index: %w", err)
	}

	var years []int
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || !strings.HasSuffix(href, ".tar.gz") {
			return
		}
		year, err := strconv.Atoi(strings.TrimSuffix(filepath.Base(href), ".tar.gz"))
		if err != nil {
			return
		}
		years = append(years, year)
	})
	sort.Ints(years)
	return years, nil
}
