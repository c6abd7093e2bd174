// README: HTTP client for the national weather observations XML feed.
package weather

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultFeedURL is the Estonian Environment Agency observations document.
const DefaultFeedURL = "https://www.ilmateenistus.ee/ilma_andmed/xml/observations.php"

// Batch is one decoded feed document: a single batch timestamp plus every
// station reading published at that instant.
type Batch struct {
	Timestamp int64
	Stations  []StationReading
}

// StationReading is one station's raw reading before city filtering.
type StationReading struct {
	Name           string
	WMOCode        int64
	Phenomenon     string
	AirTemperature float64
	WindSpeed      float64
}

type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a feed client with a bounded request timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads and decodes the current observations document.
func (c *Client) Fetch(ctx context.Context) (*Batch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch observations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed returned status %d: %s", resp.StatusCode, body)
	}

	var doc observationsXML
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode observations: %w", err)
	}

	batch := &Batch{
		Timestamp: doc.Timestamp,
		Stations:  make([]StationReading, 0, len(doc.Stations)),
	}
	for _, st := range doc.Stations {
		batch.Stations = append(batch.Stations, StationReading{
			Name:           strings.TrimSpace(st.Name),
			WMOCode:        parseFeedInt(st.WMOCode),
			Phenomenon:     strings.TrimSpace(st.Phenomenon),
			AirTemperature: parseFeedFloat(st.AirTemperature),
			WindSpeed:      parseFeedFloat(st.WindSpeed),
		})
	}
	return batch, nil
}

// Feed document types. The batch timestamp is an attribute on the root
// element; stations carry their fields as child elements.

type observationsXML struct {
	XMLName   xml.Name     `xml:"observations"`
	Timestamp int64        `xml:"timestamp,attr"`
	Stations  []stationXML `xml:"station"`
}

type stationXML struct {
	Name           string `xml:"name"`
	WMOCode        string `xml:"wmocode"`
	Phenomenon     string `xml:"phenomenon"`
	AirTemperature string `xml:"airtemperature"`
	WindSpeed      string `xml:"windspeed"`
}

// Numeric feed elements are sometimes published empty; those decode as zero,
// matching how the upstream document is consumed elsewhere.

func parseFeedFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseFeedInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
