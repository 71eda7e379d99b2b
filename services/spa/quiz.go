package spa

import (
	"sort"
	"strings"

	"omnispa/models"
)

// QuizAnswers is what the preference quiz collects from a visitor.
type QuizAnswers struct {
	Category  string `json:"category"`
	PriceBand string `json:"price_band"`
	TimeBand  string `json:"time_band"`
	Area      string `json:"area"`
}

// Recommendation is one quiz result: a service at a spa that fits the
// visitor's answers.
type Recommendation struct {
	SpaID       string  `json:"spa_id"`
	SpaName     string  `json:"spa_name"`
	Area        string  `json:"area"`
	ImageURL    string  `json:"image_url,omitempty"`
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Category    string  `json:"category"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
}

// Price and duration bands offered by the quiz. Band labels double as the
// wire values the frontend posts back.
const (
	PriceBudget   = "Budget (SCR0-50)"
	PriceModerate = "Moderate (SCR50-100)"
	PricePremium  = "Premium (SCR100-150)"
	PriceLuxury   = "Luxury (SCR150+)"

	TimeQuick    = "Quick (≤30 min)"
	TimeStandard = "Standard (30-60 min)"
	TimeExtended = "Extended (60-90 min)"
	TimeLengthy  = "Lengthy (90+ min)"
)

// priceInBand uses half-open bands so a SCR50 service is Moderate, not Budget.
func priceInBand(price float64, band string) bool {
	switch band {
	case PriceBudget:
		return price < 50
	case PriceModerate:
		return price >= 50 && price < 100
	case PricePremium:
		return price >= 100 && price < 150
	case PriceLuxury:
		return price >= 150
	default:
		return true
	}
}

func durationInBand(minutes int, band string) bool {
	switch band {
	case TimeQuick:
		return minutes <= 30
	case TimeStandard:
		return minutes > 30 && minutes <= 60
	case TimeExtended:
		return minutes > 60 && minutes <= 90
	case TimeLengthy:
		return minutes > 90
	default:
		return true
	}
}

// QuizOptions is what the quiz form presents: the distinct service
// categories and areas found in the directory plus the fixed bands.
type QuizOptions struct {
	Categories []string `json:"categories"`
	Areas      []string `json:"areas"`
	PriceBands []string `json:"price_bands"`
	TimeBands  []string `json:"time_bands"`
}

// Options aggregates the choices the quiz can offer from the live directory.
func (s *DefaultSpaService) Options() (QuizOptions, error) {
	opts := QuizOptions{
		Categories: []string{},
		Areas:      []string{},
		PriceBands: []string{PriceBudget, PriceModerate, PricePremium, PriceLuxury},
		TimeBands:  []string{TimeQuick, TimeStandard, TimeExtended, TimeLengthy},
	}

	spas, err := s.Repo.GetAll()
	if err != nil {
		return opts, err
	}
	seenCat := map[string]bool{}
	seenArea := map[string]bool{}
	for _, sp := range spas {
		if sp.Area != "" && !seenArea[sp.Area] {
			seenArea[sp.Area] = true
			opts.Areas = append(opts.Areas, sp.Area)
		}
		for _, svc := range sp.Services {
			if svc.Category != "" && !seenCat[svc.Category] {
				seenCat[svc.Category] = true
				opts.Categories = append(opts.Categories, svc.Category)
			}
		}
	}
	sort.Strings(opts.Categories)
	sort.Strings(opts.Areas)
	return opts, nil
}

// Recommend scans the directory for services matching every answer the
// visitor gave. Unanswered questions match everything.
func (s *DefaultSpaService) Recommend(answers QuizAnswers) ([]Recommendation, error) {
	list, err := s.candidates(answers.Area)
	if err != nil {
		return nil, err
	}

	category := strings.ToLower(strings.TrimSpace(answers.Category))
	recs := []Recommendation{}
	for _, sp := range list {
		imageURL := ""
		if img := sp.PrimaryImage(); img != nil {
			imageURL = img.URL
		}
		for _, svc := range sp.Services {
			if category != "" && strings.ToLower(svc.Category) != category {
				continue
			}
			if !priceInBand(svc.Price, answers.PriceBand) {
				continue
			}
			if !durationInBand(svc.Duration, answers.TimeBand) {
				continue
			}
			recs = append(recs, Recommendation{
				SpaID:       sp.ID,
				SpaName:     sp.Name,
				Area:        sp.Area,
				ImageURL:    imageURL,
				ServiceID:   svc.ID,
				ServiceName: svc.Name,
				Category:    svc.Category,
				Duration:    svc.Duration,
				Price:       svc.Price,
			})
		}
	}
	return recs, nil
}

func (s *DefaultSpaService) candidates(area string) ([]models.Spa, error) {
	area = strings.TrimSpace(area)
	if area == "" || strings.EqualFold(area, "any") {
		return s.Repo.GetAll()
	}
	return s.Repo.GetByArea(area)
}
