package spa

import (
	"strings"

	"omnispa/models"
)

const (
	suggestionLimit = 10
	searchLimit     = 20
	minQueryLength  = 2
)

// Suggestion is one typeahead entry for the search box.
type Suggestion struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
	Area string `json:"area,omitempty"`
}

// ServiceMatch pairs a matching service with the spa that offers it.
type ServiceMatch struct {
	SpaID       string  `json:"spa_id"`
	SpaName     string  `json:"spa_name"`
	Area        string  `json:"area"`
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Category    string  `json:"category"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
}

// SearchResults combines spa and service matches for one query.
type SearchResults struct {
	Query    string         `json:"query"`
	Spas     []SpaSummary   `json:"spas"`
	Services []ServiceMatch `json:"services"`
}

// SpaSummary is a directory card: enough to list a spa without its full
// profile.
type SpaSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Area     string  `json:"area"`
	Address  string  `json:"address"`
	ImageURL string  `json:"image_url,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
}

// Suggest returns typeahead suggestions. Queries under two characters return
// nothing rather than matching the whole directory.
func (s *DefaultSpaService) Suggest(query string) ([]Suggestion, error) {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return []Suggestion{}, nil
	}

	spas, err := s.Repo.Search(query, suggestionLimit)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, suggestionLimit)
	seenAreas := map[string]bool{}
	for _, sp := range spas {
		suggestions = append(suggestions, Suggestion{
			Type: "spa",
			ID:   sp.ID,
			Text: sp.Name,
			Area: sp.Area,
		})
		lower := strings.ToLower(sp.Area)
		if strings.Contains(lower, strings.ToLower(query)) && !seenAreas[lower] {
			seenAreas[lower] = true
			suggestions = append(suggestions, Suggestion{Type: "area", Text: sp.Area})
		}
		if len(suggestions) >= suggestionLimit {
			break
		}
	}
	if len(suggestions) > suggestionLimit {
		suggestions = suggestions[:suggestionLimit]
	}
	return suggestions, nil
}

// Search runs the full directory search: spas matched on name, area,
// description or address, plus individual services matched by name.
func (s *DefaultSpaService) Search(query string) (SearchResults, error) {
	results := SearchResults{
		Query:    strings.TrimSpace(query),
		Spas:     []SpaSummary{},
		Services: []ServiceMatch{},
	}
	if len(results.Query) < minQueryLength {
		return results, nil
	}

	spas, err := s.Repo.Search(results.Query, searchLimit)
	if err != nil {
		return results, err
	}
	for _, sp := range spas {
		results.Spas = append(results.Spas, summarize(sp))
	}

	withServices, err := s.Repo.SearchByServiceName(results.Query, searchLimit)
	if err != nil {
		return results, err
	}
	lower := strings.ToLower(results.Query)
	for _, sp := range withServices {
		for _, svc := range sp.Services {
			if !strings.Contains(strings.ToLower(svc.Name), lower) {
				continue
			}
			results.Services = append(results.Services, ServiceMatch{
				SpaID:       sp.ID,
				SpaName:     sp.Name,
				Area:        sp.Area,
				ServiceID:   svc.ID,
				ServiceName: svc.Name,
				Category:    svc.Category,
				Duration:    svc.Duration,
				Price:       svc.Price,
			})
			if len(results.Services) >= searchLimit {
				return results, nil
			}
		}
	}
	return results, nil
}

func summarize(sp models.Spa) SpaSummary {
	summary := SpaSummary{
		ID:      sp.ID,
		Name:    sp.Name,
		Area:    sp.Area,
		Address: sp.Address,
	}
	if img := sp.PrimaryImage(); img != nil {
		summary.ImageURL = img.URL
	}
	return summary
}
