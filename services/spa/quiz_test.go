package spa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"omnispa/models"
)

// stubRepo serves a fixed directory; mutations are not exercised here.
type stubRepo struct {
	spas []models.Spa
}

func (s *stubRepo) Create(spa *models.Spa) error                   { return nil }
func (s *stubRepo) Update(spa *models.Spa) error                   { return nil }
func (s *stubRepo) UpdateSetDocument(id string, doc bson.M) error  { return nil }
func (s *stubRepo) Delete(id string) error                         { return nil }
func (s *stubRepo) UpsertAvailability(spaID string, entry models.DayAvailability) error {
	return nil
}
func (s *stubRepo) AddImage(spaID string, img models.SpaImage) error { return nil }
func (s *stubRepo) RemoveImage(spaID, publicID string) error         { return nil }
func (s *stubRepo) GetAvailability(spaID, day string) (*models.DayAvailability, error) {
	return nil, nil
}

func (s *stubRepo) GetByID(id string) (*models.Spa, error) {
	for i := range s.spas {
		if s.spas[i].ID == id {
			return &s.spas[i], nil
		}
	}
	return nil, nil
}

func (s *stubRepo) GetAll() ([]models.Spa, error) { return s.spas, nil }

func (s *stubRepo) GetByOwner(ownerID string) ([]models.Spa, error) {
	var out []models.Spa
	for _, sp := range s.spas {
		if sp.OwnerID == ownerID {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (s *stubRepo) GetByArea(area string) ([]models.Spa, error) {
	var out []models.Spa
	for _, sp := range s.spas {
		if sp.Area == area {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (s *stubRepo) Search(query string, limit int64) ([]models.Spa, error) {
	return s.spas, nil
}

func (s *stubRepo) SearchByServiceName(query string, limit int64) ([]models.Spa, error) {
	return s.spas, nil
}

func testDirectory() []models.Spa {
	return []models.Spa{
		{
			ID: "spa-1", Name: "Serenity Spa", Area: "Victoria",
			Services: []models.Service{
				{ID: "s1", Category: "Massage", Name: "Quick Neck Massage", Duration: 20, Price: 40},
				{ID: "s2", Category: "Massage", Name: "Deep Tissue Massage", Duration: 60, Price: 85},
				{ID: "s3", Category: "Facial", Name: "Luxury Gold Facial", Duration: 100, Price: 200},
			},
		},
		{
			ID: "spa-2", Name: "Ocean Bliss", Area: "Beau Vallon",
			Services: []models.Service{
				{ID: "s4", Category: "Massage", Name: "Hot Stone Massage", Duration: 75, Price: 120},
			},
		},
	}
}

func quizService() *DefaultSpaService {
	return NewSpaService(&stubRepo{spas: testDirectory()}, nil, nil)
}

func TestPriceBandBoundaries(t *testing.T) {
	// SCR50 lands in Moderate, SCR100 in Premium, SCR150 in Luxury.
	assert.True(t, priceInBand(49.99, PriceBudget))
	assert.False(t, priceInBand(50, PriceBudget))
	assert.True(t, priceInBand(50, PriceModerate))
	assert.False(t, priceInBand(100, PriceModerate))
	assert.True(t, priceInBand(100, PricePremium))
	assert.False(t, priceInBand(150, PricePremium))
	assert.True(t, priceInBand(150, PriceLuxury))
	assert.True(t, priceInBand(999, PriceLuxury))
}

func TestDurationBandBoundaries(t *testing.T) {
	// 30 minutes is still Quick, 60 still Standard, 90 still Extended.
	assert.True(t, durationInBand(30, TimeQuick))
	assert.False(t, durationInBand(31, TimeQuick))
	assert.True(t, durationInBand(60, TimeStandard))
	assert.False(t, durationInBand(60, TimeExtended))
	assert.True(t, durationInBand(90, TimeExtended))
	assert.True(t, durationInBand(91, TimeLengthy))
}

func TestBandsMatchAnythingWhenUnanswered(t *testing.T) {
	assert.True(t, priceInBand(5000, ""))
	assert.True(t, durationInBand(1, ""))
}

func TestRecommendFiltersByEveryAnswer(t *testing.T) {
	svc := quizService()

	recs, err := svc.Recommend(QuizAnswers{
		Category:  "Massage",
		PriceBand: PriceModerate,
		TimeBand:  TimeStandard,
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Deep Tissue Massage", recs[0].ServiceName)
	assert.Equal(t, "spa-1", recs[0].SpaID)
}

func TestRecommendAreaNarrowsCandidates(t *testing.T) {
	svc := quizService()

	recs, err := svc.Recommend(QuizAnswers{Area: "Beau Vallon"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Hot Stone Massage", recs[0].ServiceName)
}

func TestRecommendAnyAreaScansWholeDirectory(t *testing.T) {
	svc := quizService()

	recs, err := svc.Recommend(QuizAnswers{Area: "any"})
	require.NoError(t, err)
	assert.Len(t, recs, 4)
}

func TestRecommendNoMatches(t *testing.T) {
	svc := quizService()

	recs, err := svc.Recommend(QuizAnswers{
		Category:  "Nails",
		PriceBand: PriceLuxury,
	})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestOptionsAggregatesDirectory(t *testing.T) {
	svc := quizService()

	opts, err := svc.Options()
	require.NoError(t, err)
	assert.Equal(t, []string{"Facial", "Massage"}, opts.Categories)
	assert.Equal(t, []string{"Beau Vallon", "Victoria"}, opts.Areas)
	assert.Len(t, opts.PriceBands, 4)
	assert.Len(t, opts.TimeBands, 4)
}

func TestSuggestShortQueryReturnsNothing(t *testing.T) {
	svc := quizService()

	suggestions, err := svc.Suggest("a")
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSearchMatchesServices(t *testing.T) {
	svc := quizService()

	results, err := svc.Search("massage")
	require.NoError(t, err)
	assert.Len(t, results.Spas, 2)
	// Three of the four catalogue entries are massages.
	assert.Len(t, results.Services, 3)
}
