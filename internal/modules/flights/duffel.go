// README: Duffel fare client — offer request plus bounded offer polling.
package flights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	duffelBaseURL = "https://api.duffel.com"

	// Offers are produced asynchronously; if none come back inline we poll
	// with a fixed small budget. No backoff: a fare search that is slow for
	// three attempts gets synthesized instead.
	pollAttempts = 3
	pollDelay    = 2 * time.Second
)

// DuffelClient implements OfferProvider against the Duffel Air API.
type DuffelClient struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

func NewDuffelClient(token string) *DuffelClient {
	return &DuffelClient{
		token:   token,
		baseURL: duffelBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type duffelPassenger struct {
	Age int `json:"age"`
}

type duffelSlice struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

type duffelOfferRequest struct {
	Data struct {
		Slices     []duffelSlice     `json:"slices"`
		Passengers []duffelPassenger `json:"passengers"`
		CabinClass string            `json:"cabin_class"`
	} `json:"data"`
}

type duffelSegment struct {
	Origin struct {
		IataCode string `json:"iata_code"`
	} `json:"origin"`
	Destination struct {
		IataCode string `json:"iata_code"`
	} `json:"destination"`
	DepartingAt string `json:"departing_at"`
	ArrivingAt  string `json:"arriving_at"`
	Carrier     struct {
		IataCode string `json:"iata_code"`
		Name     string `json:"name"`
	} `json:"marketing_carrier"`
	FlightNumber string `json:"marketing_carrier_flight_number"`
}

type duffelOffer struct {
	ID          string `json:"id"`
	TotalAmount string `json:"total_amount"`
	Currency    string `json:"total_currency"`
	Owner       struct {
		IataCode string `json:"iata_code"`
		Name     string `json:"name"`
	} `json:"owner"`
	Slices []struct {
		Duration string          `json:"duration"`
		Segments []duffelSegment `json:"segments"`
	} `json:"slices"`
	PassengerIdentityDocumentsRequired bool `json:"passenger_identity_documents_required"`
}

type duffelOfferRequestResponse struct {
	Data struct {
		ID     string        `json:"id"`
		Offers []duffelOffer `json:"offers"`
	} `json:"data"`
}

type duffelOffersResponse struct {
	Data []duffelOffer `json:"data"`
}

// SearchOffers creates an offer request for a fixed outbound+return pair and
// returns the priced offers, polling when none are returned inline.
func (c *DuffelClient) SearchOffers(ctx context.Context, req OfferRequest) ([]Offer, error) {
	var body duffelOfferRequest
	body.Data.Slices = []duffelSlice{
		{Origin: req.Origin, Destination: req.Destination, DepartureDate: req.DepartureDate.Format("2006-01-02")},
		{Origin: req.Destination, Destination: req.Origin, DepartureDate: req.ReturnDate.Format("2006-01-02")},
	}
	for _, age := range req.PassengerAges {
		body.Data.Passengers = append(body.Data.Passengers, duffelPassenger{Age: age})
	}
	body.Data.CabinClass = "economy"

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	respBody, err := c.do(ctx, http.MethodPost, "/air/offer_requests?return_offers=true", payload)
	if err != nil {
		return nil, err
	}

	var created duffelOfferRequestResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("parse offer request response: %w", err)
	}

	offers := created.Data.Offers
	for attempt := 0; len(offers) == 0 && attempt < pollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollDelay):
		}
		offers, err = c.listOffers(ctx, created.Data.ID)
		if err != nil {
			return nil, err
		}
	}

	out := make([]Offer, 0, len(offers))
	for _, o := range offers {
		converted, ok := convertOffer(o)
		if !ok {
			continue
		}
		out = append(out, converted)
	}
	return out, nil
}

func (c *DuffelClient) listOffers(ctx context.Context, offerRequestID string) ([]duffelOffer, error) {
	path := "/air/offers?offer_request_id=" + url.QueryEscape(offerRequestID) + "&sort=total_amount"
	respBody, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var resp duffelOffersResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("parse offers response: %w", err)
	}
	return resp.Data, nil
}

func (c *DuffelClient) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Duffel-Version", "v2")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("duffel error (%d): %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// convertOffer maps the wire shape onto the provider-agnostic Offer. Offers
// with missing prices or slices are dropped rather than propagated.
func convertOffer(o duffelOffer) (Offer, bool) {
	if len(o.Slices) < 2 {
		return Offer{}, false
	}
	var amount float64
	if _, err := fmt.Sscanf(o.TotalAmount, "%f", &amount); err != nil || amount <= 0 {
		return Offer{}, false
	}

	out := Offer{
		ID:          o.ID,
		TotalAmount: amount,
		Currency:    o.Currency,
		OwnerCode:   o.Owner.IataCode,
		OwnerName:   o.Owner.Name,
	}
	for _, sl := range o.Slices {
		converted := OfferSlice{Duration: parseISODuration(sl.Duration)}
		for _, seg := range sl.Segments {
			departAt, _ := time.Parse("2006-01-02T15:04:05", seg.DepartingAt)
			arriveAt, _ := time.Parse("2006-01-02T15:04:05", seg.ArrivingAt)
			converted.Segments = append(converted.Segments, OfferSegment{
				Origin:       seg.Origin.IataCode,
				Destination:  seg.Destination.IataCode,
				DepartAt:     departAt,
				ArriveAt:     arriveAt,
				CarrierCode:  seg.Carrier.IataCode,
				CarrierName:  seg.Carrier.Name,
				FlightNumber: seg.Carrier.IataCode + seg.FlightNumber,
			})
		}
		if len(converted.Segments) == 0 {
			return Offer{}, false
		}
		out.Slices = append(out.Slices, converted)
	}
	return out, true
}

// parseISODuration handles the PTxHxM durations fare APIs use.
func parseISODuration(iso string) time.Duration {
	if !strings.HasPrefix(iso, "PT") {
		return 0
	}
	rest := strings.TrimPrefix(iso, "PT")
	var h, m int
	if idx := strings.IndexByte(rest, 'H'); idx >= 0 {
		fmt.Sscanf(rest[:idx], "%d", &h)
		rest = rest[idx+1:]
	}
	if idx := strings.IndexByte(rest, 'M'); idx >= 0 {
		fmt.Sscanf(rest[:idx], "%d", &m)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
}
