package main

import (
	"time"

	"github.com/P3chys/studyqa-api/internal/config"
	"github.com/P3chys/studyqa-api/internal/logger"
	"github.com/P3chys/studyqa-api/internal/services"
	"github.com/P3chys/studyqa-api/internal/store"
	"github.com/joho/godotenv"
)

const batchSize = 100

// reindex-questions rebuilds the Meilisearch mirror from the seed data.
func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New("reindex-questions", cfg.LogLevel)
	if envErr != nil {
		log.Info("No .env file found")
	}

	if cfg.MeiliURL == "" {
		log.Fatal("MEILI_URL is not set")
	}

	// Initialize search service
	searchService := services.NewSearchService(cfg, log.Logger)
	log.Info("Meilisearch service initialized")

	questions := store.NewSeeded().Questions()

	meiliCount, err := searchService.GetQuestionCount()
	if err != nil {
		log.WithError(err).Fatal("Failed to get question count from Meilisearch")
	}

	log.WithField("store", len(questions)).WithField("meilisearch", meiliCount).Info("Question counts")
	if meiliCount == int64(len(questions)) {
		log.Info("Counts match. Verifying all questions are indexed...")
	} else {
		log.Info("Counts do not match. Reindexing all questions...")
	}

	totalIndexed := 0
	for offset := 0; offset < len(questions); offset += batchSize {
		end := offset + batchSize
		if end > len(questions) {
			end = len(questions)
		}
		batch := questions[offset:end]

		if err := searchService.IndexQuestions(batch); err != nil {
			log.WithError(err).WithField("offset", offset).Warn("Failed to index batch")
		} else {
			totalIndexed += len(batch)
			log.WithField("batch", len(batch)).WithField("total", totalIndexed).Info("Indexed batch")
		}

		time.Sleep(100 * time.Millisecond) // Be nice to Meilisearch
	}

	// Final check
	finalCount, err := searchService.GetQuestionCount()
	if err != nil {
		log.WithError(err).Warn("Failed to get final count")
	}

	log.WithField("meilisearch", finalCount).Info("Reindexing completed")
}
