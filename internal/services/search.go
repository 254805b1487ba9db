package services

import (
	"fmt"

	"github.com/P3chys/studyqa-api/internal/config"
	"github.com/P3chys/studyqa-api/internal/models"
	"github.com/meilisearch/meilisearch-go"
	"github.com/sirupsen/logrus"
)

const questionsIndex = "questions"

// SearchService mirrors store questions into Meilisearch for full-text lookup.
// The store stays the source of truth; the index only returns ids.
type SearchService struct {
	client *meilisearch.Client
	index  string
}

// questionDocument is the flattened shape stored in the index.
type questionDocument struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subject     string   `json:"subject"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Tags        []string `json:"tags"`
	AuthorID    string   `json:"author_id"`
	Upvotes     int      `json:"upvotes"`
	AnswerCount int      `json:"answer_count"`
	IsSolved    bool     `json:"is_solved"`
	CreatedAt   int64    `json:"created_at"`
}

func NewSearchService(cfg *config.Config, log *logrus.Logger) *SearchService {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   cfg.MeiliURL,
		APIKey: cfg.MeiliAPIKey,
	})

	// Ensure questions index exists (best effort)
	if _, err := client.GetIndex(questionsIndex); err != nil {
		if _, err := client.CreateIndex(&meilisearch.IndexConfig{
			Uid:        questionsIndex,
			PrimaryKey: "id",
		}); err != nil {
			log.WithError(err).Warn("Failed to create meilisearch questions index")
		}

		index := client.Index(questionsIndex)
		if _, err := index.UpdateFilterableAttributes(&[]string{"subject", "difficulty", "is_solved", "author_id"}); err != nil {
			log.WithError(err).Warn("Failed to update filterable attributes")
		}
		if _, err := index.UpdateSortableAttributes(&[]string{"created_at", "upvotes"}); err != nil {
			log.WithError(err).Warn("Failed to update sortable attributes")
		}
		if _, err := index.UpdateSearchableAttributes(&[]string{"title", "description", "tags"}); err != nil {
			log.WithError(err).Warn("Failed to update searchable attributes")
		}
	}

	return &SearchService{
		client: client,
		index:  questionsIndex,
	}
}

func (s *SearchService) IndexQuestion(q models.Question) error {
	return s.IndexQuestions([]models.Question{q})
}

func (s *SearchService) IndexQuestions(questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}

	docs := make([]questionDocument, 0, len(questions))
	for _, q := range questions {
		docs = append(docs, toQuestionDocument(q))
	}

	if _, err := s.client.Index(s.index).AddDocuments(docs); err != nil {
		return fmt.Errorf("failed to index questions: %w", err)
	}
	return nil
}

// SearchQuestionIDs returns the ids of matching questions in relevance order.
// An empty subject searches every subject.
func (s *SearchService) SearchQuestionIDs(query string, subject models.Subject, limit int64) ([]string, error) {
	request := &meilisearch.SearchRequest{
		Limit:                limit,
		AttributesToRetrieve: []string{"id"},
	}
	if subject != "" {
		request.Filter = fmt.Sprintf("subject = %q", string(subject))
	}

	resp, err := s.client.Index(s.index).Search(query, request)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return hitIDs(resp.Hits), nil
}

func (s *SearchService) GetQuestionCount() (int64, error) {
	stats, err := s.client.Index(s.index).GetStats()
	if err != nil {
		return 0, err
	}
	return stats.NumberOfDocuments, nil
}

func toQuestionDocument(q models.Question) questionDocument {
	doc := questionDocument{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Subject:     string(q.Subject),
		Tags:        q.Tags,
		AuthorID:    q.AuthorID,
		Upvotes:     q.Upvotes,
		AnswerCount: q.AnswerCount,
		IsSolved:    q.IsSolved,
		CreatedAt:   q.CreatedAt.Unix(),
	}
	if q.Difficulty != nil {
		doc.Difficulty = string(*q.Difficulty)
	}
	return doc
}

func hitIDs(hits []interface{}) []string {
	ids := make([]string, 0, len(hits))
	for _, hit := range hits {
		fields, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		if id, ok := fields["id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
