package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"stealthcompany.com/riskassess/internal/config"
	"stealthcompany.com/riskassess/internal/fetch"
	"stealthcompany.com/riskassess/internal/metrics"
)

// Client pages patient records out of the assessment API and submits the
// derived alert lists back. All requests go through the resilient fetcher;
// pagination is strictly sequential with a fixed inter-page delay.
type Client struct {
	fetcher   *fetch.Fetcher
	baseURL   string
	pageSize  int
	pageDelay time.Duration
}

// NewClient creates an assessment API client from the run configuration.
func NewClient(cfg config.Config) *Client {
	return &Client{
		fetcher: fetch.NewFetcher(cfg.APIKey, cfg.HTTPTimeout, fetch.Policy{
			MaxAttempts: cfg.RetryMaxAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
			MaxJitter:   cfg.RetryMaxJitter,
		}),
		baseURL:   cfg.BaseURL,
		pageSize:  cfg.PageSize,
		pageDelay: cfg.PageDelay,
	}
}

// FetchAllPatients walks every page until the API reports no next page.
// Page N+1 is requested only after page N is fully read and the inter-page
// delay has elapsed.
func (c *Client) FetchAllPatients(ctx context.Context) ([]Patient, error) {
	var all []Patient

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/patients?page=%d&limit=%d", c.baseURL, page, c.pageSize)

		resp, err := c.fetcher.Do(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch patients page %d: %w", page, err)
		}

		pageData, err := decodePatientsPage(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to read patients page %d: %w", page, err)
		}

		all = append(all, pageData.Data...)
		metrics.RecordPageFetched()
		log.Info().
			Int("page", page).
			Int("patients", len(pageData.Data)).
			Int("total", len(all)).
			Msg("Fetched patients page")

		if !pageData.Pagination.HasNext {
			break
		}

		timer := time.NewTimer(c.pageDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return all, nil
}

// SubmitAssessment posts the three alert lists exactly once and returns the
// decoded acknowledgment. Any non-2xx response is fatal.
func (c *Client) SubmitAssessment(ctx context.Context, result Classification) (map[string]any, error) {
	payload := Submission{
		HighRiskPatients:  result.HighRisk,
		FeverPatients:     result.Fever,
		DataQualityIssues: result.DataQuality,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	resp, err := c.fetcher.Do(ctx, http.MethodPost, c.baseURL+"/submit-assessment", body)
	if err != nil {
		return nil, fmt.Errorf("failed to submit assessment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to submit assessment: %w", fetch.NewStatusError(resp))
	}

	var ack map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("failed to decode submission acknowledgment: %w", err)
	}
	return ack, nil
}

// Run performs one complete assessment: fetch every patient, classify, and
// submit the alert lists.
func Run(ctx context.Context, cfg config.Config) error {
	client := NewClient(cfg)

	patients, err := client.FetchAllPatients(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch patients: %w", err)
	}

	result := Classify(patients)
	metrics.RecordClassificationSizes(len(result.HighRisk), len(result.Fever), len(result.DataQuality))
	log.Info().
		Int("patients", len(patients)).
		Int("high_risk", len(result.HighRisk)).
		Int("fever", len(result.Fever)).
		Int("data_quality", len(result.DataQuality)).
		Msg("Classified patients")

	ack, err := client.SubmitAssessment(ctx, result)
	if err != nil {
		return err
	}

	log.Info().Interface("ack", ack).Msg("Assessment submitted")
	return nil
}

// decodePatientsPage checks the final status and decodes one page. The body
// is always closed here.
func decodePatientsPage(resp *http.Response) (*patientsPage, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fetch.NewStatusError(resp)
	}

	var page patientsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode page: %w", err)
	}
	return &page, nil
}
