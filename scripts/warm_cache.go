package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"careerpilot/internal/config"
	"careerpilot/internal/services"
)

// Pre-warms the benchmark cache from a directory of job postings. Each
// posting is a text file named "<company>__<job title>.txt" whose content is
// the job description.
func main() {
	log.Println("🚀 Starting benchmark cache warmup...")

	// Load configuration
	cfg := config.Load()
	if cfg.Qdrant.URL == "" {
		log.Fatalln("❌ QDRANT_URL must be set to warm the cache")
	}

	postingsDir := "./postings"
	if len(os.Args) > 1 {
		postingsDir = os.Args[1]
	}

	// Initialize services
	completion, err := services.NewCompletionService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	cache, err := services.NewBenchmarkCache(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		completion,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := cache.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	prompts := services.NewPromptBuilder()
	benchmarks := services.NewBenchmarkService(completion, prompts)

	entries, err := os.ReadDir(postingsDir)
	if err != nil {
		log.Fatalf("❌ Failed to read postings directory %s: %v", postingsDir, err)
	}

	ctx := context.Background()
	successCount := 0
	failCount := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		base := strings.TrimSuffix(entry.Name(), ".txt")
		company, jobTitle, ok := strings.Cut(base, "__")
		if !ok {
			log.Printf("⚠️  Skipping %s: expected <company>__<job title>.txt", entry.Name())
			continue
		}

		log.Printf("\n📄 Processing: %s at %s", jobTitle, company)

		data, err := os.ReadFile(filepath.Join(postingsDir, entry.Name()))
		if err != nil {
			log.Printf("   ❌ Failed to read posting: %v", err)
			failCount++
			continue
		}
		jdText := services.CleanText(string(data))
		if jdText == "" {
			log.Printf("   ⚠️  Posting is empty, skipping...")
			failCount++
			continue
		}

		// Skip postings that are already cached
		cached, err := cache.Lookup(ctx, jobTitle, company, jdText)
		if err != nil {
			log.Printf("   ⚠️  Cache lookup failed: %v", err)
		} else if cached != nil {
			log.Printf("   ⚡ Already cached, skipping...")
			continue
		}

		benchmark, err := benchmarks.CreateIdealProfile(ctx, jobTitle, company, jdText)
		if err != nil {
			log.Printf("   ❌ Failed to build benchmark: %v", err)
			failCount++
			continue
		}

		if err := cache.Store(ctx, jobTitle, company, jdText, benchmark); err != nil {
			log.Printf("   ❌ Failed to store benchmark: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Benchmark cached (%d ideal skills)", len(benchmark.IdealSkills))
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Warmup Summary:")
	log.Printf("   ✅ Successful: %d postings", successCount)
	log.Printf("   ❌ Failed: %d postings", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some postings failed. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ Benchmark cache warmed successfully!")
}
