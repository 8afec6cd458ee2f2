package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"vehicle-finance.backend/internal/config"
	"vehicle-finance.backend/internal/domain/entities"
	domainerrors "vehicle-finance.backend/internal/domain/errors"
)

// Category selects one of the three fixed extraction schemas
type Category string

const (
	CategoryAadhaar   Category = "aadhaar"
	CategoryRC        Category = "rc"
	CategoryInsurance Category = "insurance"
)

// Extraction holds exactly one populated record matching the
// requested category. It is produced only on a full successful parse;
// a failed call never yields a partial record.
type Extraction struct {
	Aadhaar   *entities.AadhaarData   `json:"aadhaarData,omitempty"`
	RC        *entities.RCData        `json:"rcData,omitempty"`
	Insurance *entities.InsuranceData `json:"insuranceData,omitempty"`
}

var prompts = map[Category]string{
	CategoryAadhaar: `Analyze this Aadhaar card image and extract the following information into a valid JSON format:
{
  "name": "Full name in English",
  "dob": "Date of birth",
  "aadhaarNo": "12 digit number with spaces",
  "pincode": "6 digit pincode",
  "state": "State name",
  "city": "City or District",
  "area": "Locality or Area",
  "address": "Full address string"
}
Only return the JSON object.`,
	CategoryRC: `Analyze this Vehicle Registration Certificate (RC) image and extract information into valid JSON:
{
  "regNo": "Vehicle number",
  "ownerName": "Owner name",
  "vehicleType": "Type of vehicle",
  "mfgYear": "Manufacturing year",
  "make": "Manufacturer",
  "makeClass": "Model name",
  "regAuthority": "RTO name",
  "engineNo": "Engine number",
  "chassisNo": "Chassis number",
  "fuelType": "Petrol/Diesel/CNG",
  "color": "Vehicle color",
  "regDate": "Registration date",
  "expiryDate": "Fitness/Registration expiry"
}
Only return the JSON object.`,
	CategoryInsurance: `Analyze this Vehicle Insurance document image and extract into valid JSON:
{
  "company": "Insurance company name",
  "type": "Comprehensive/Third Party",
  "policyNo": "Policy number",
  "nameTransfer": "Insured name",
  "endorsementDate": "Start date",
  "expiryDate": "Expiry date",
  "idvValue": "Insured Declared Value as number",
  "premium": "Total premium amount as number"
}
Only return the JSON object.`,
}

// GeminiExtractor calls the generateContent REST endpoint with one
// inline image and a category-specific JSON-schema prompt. Each call
// covers a single document; there is no batching or retry.
type GeminiExtractor struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiExtractor(cfg config.OCRConfig) *GeminiExtractor {
	return &GeminiExtractor{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type generatePart struct {
	InlineData *inlineData `json:"inline_data,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateRequest struct {
	Contents []struct {
		Parts []generatePart `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"response_mime_type"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Extract runs one extraction. image may be a raw base64 string or a
// data URL; the prefix is stripped before transmission.
func (e *GeminiExtractor) Extract(ctx context.Context, image, mimeType string, category Category) (*Extraction, error) {
	prompt, ok := prompts[category]
	if !ok {
		return nil, domainerrors.ErrUnknownCategory
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	if idx := strings.Index(image, ","); idx >= 0 && strings.HasPrefix(image, "data:") {
		image = image[idx+1:]
	}

	var req generateRequest
	req.Contents = make([]struct {
		Parts []generatePart `json:"parts"`
	}, 1)
	req.Contents[0].Parts = []generatePart{
		{InlineData: &inlineData{MimeType: mimeType, Data: image}},
		{Text: prompt},
	}
	req.GenerationConfig.ResponseMimeType = "application/json"

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrExtractionFailed, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", e.baseURL, e.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrExtractionFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", e.apiKey)

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrExtractionFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domainerrors.ErrExtractionFailed, resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrExtractionFailed, err)
	}

	text := candidateText(&gr)
	if text == "" {
		return nil, domainerrors.ErrEmptyExtraction
	}

	return parseExtraction(text, category)
}

func candidateText(gr *generateResponse) string {
	if len(gr.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}

// parseExtraction decodes the model output into the typed record for
// the category. Any decode failure leaves the extraction entirely
// unset so callers never see a partial record.
func parseExtraction(text string, category Category) (*Extraction, error) {
	out := &Extraction{}
	var err error
	switch category {
	case CategoryAadhaar:
		var data entities.AadhaarData
		if err = json.Unmarshal([]byte(text), &data); err == nil {
			out.Aadhaar = &data
		}
	case CategoryRC:
		var data entities.RCData
		if err = json.Unmarshal([]byte(text), &data); err == nil {
			out.RC = &data
		}
	case CategoryInsurance:
		var data entities.InsuranceData
		if err = json.Unmarshal([]byte(text), &data); err == nil {
			out.Insurance = &data
		}
	default:
		return nil, domainerrors.ErrUnknownCategory
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrExtractionFailed, err)
	}
	return out, nil
}
