package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"careerpilot/internal/models"
)

// PipelineService runs the full generation pipeline for one request and
// returns the formatted response.
type PipelineService interface {
	Run(ctx context.Context, jobTitle, company, jdText, resumeText string) (*models.PipelineResponse, error)
}

type pipelineService struct {
	profiler   ProfilerService
	benchmark  BenchmarkService
	gaps       GapService
	documents  DocumentService
	consultant ConsultantService
	validator  ValidatorService
	cache      BenchmarkCache
}

// NewPipelineService wires the pipeline stages. cache may be nil, in which
// case every run builds its benchmark from scratch.
func NewPipelineService(
	profiler ProfilerService,
	benchmark BenchmarkService,
	gaps GapService,
	documents DocumentService,
	consultant ConsultantService,
	validator ValidatorService,
	cache BenchmarkCache,
) PipelineService {
	return &pipelineService{
		profiler:   profiler,
		benchmark:  benchmark,
		gaps:       gaps,
		documents:  documents,
		consultant: consultant,
		validator:  validator,
		cache:      cache,
	}
}

// Run implements PipelineService. Phases 1 and 2 are load-bearing and abort
// the run on failure; phases 3 through 5 degrade to empty artifacts so one
// failed document never sinks the rest of the response.
func (p *pipelineService) Run(ctx context.Context, jobTitle, company, jdText, resumeText string) (*models.PipelineResponse, error) {
	log.Printf("🚀 Pipeline started: %s at %s (jd %d chars, resume %d chars)\n",
		jobTitle, company, len(jdText), len(resumeText))

	// Phase 1: profile and benchmark in parallel
	var (
		profile      *models.CandidateProfile
		profileErr   error
		benchmark    *models.BenchmarkProfile
		benchmarkErr error
	)

	var wg sync.WaitGroup
	if strings.TrimSpace(resumeText) != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			profile, profileErr = p.profiler.ParseResume(ctx, resumeText)
		}()
	} else {
		profile = models.EmptyCandidateProfile()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		benchmark, benchmarkErr = p.resolveBenchmark(ctx, jobTitle, company, jdText)
	}()
	wg.Wait()

	if profileErr != nil {
		return nil, profileErr
	}
	if benchmarkErr != nil {
		return nil, benchmarkErr
	}
	log.Printf("✅ Phase 1 done: profile with %d skills, benchmark with %d ideal skills\n",
		len(profile.Skills), len(benchmark.IdealSkills))

	keywords := DeriveKeywords(benchmark, jdText)

	// Phase 2: gap analysis
	analysis, err := p.gaps.AnalyzeGaps(ctx, profile, benchmark, jobTitle, company)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Phase 2 done: compatibility %.0f\n", analysis.CompatibilityScore)

	// Phase 3: CV, cover letter, and roadmap in parallel
	var (
		cvHTML  string
		clHTML  string
		roadmap *models.RoadmapPlan
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		out, err := p.documents.GenerateTailoredCV(ctx, profile, jobTitle, company, jdText, analysis, resumeText)
		if err != nil {
			log.Printf("❌ CV generation failed: %v\n", err)
			return
		}
		cvHTML = out
	}()
	go func() {
		defer wg.Done()
		out, err := p.documents.GenerateTailoredCoverLetter(ctx, profile, jobTitle, company, jdText, analysis)
		if err != nil {
			log.Printf("❌ Cover letter generation failed: %v\n", err)
			return
		}
		clHTML = out
	}()
	go func() {
		defer wg.Done()
		out, err := p.consultant.GenerateRoadmap(ctx, analysis, profile, jobTitle, company)
		if err != nil {
			log.Printf("❌ Roadmap generation failed: %v\n", err)
			return
		}
		roadmap = out
	}()
	wg.Wait()
	log.Printf("✅ Phase 3 done: cv %d chars, cover letter %d chars\n", len(cvHTML), len(clHTML))

	// Phase 4: personal statement and portfolio in parallel
	psHTML, portfolioHTML := p.runPhase4(ctx, profile, jobTitle, company, jdText, analysis, resumeText)
	log.Printf("✅ Phase 4 done: statement %d chars, portfolio %d chars\n", len(psHTML), len(portfolioHTML))

	// Phase 5: best-effort CV validation
	validation := map[string]models.DocumentValidation{}
	report, err := p.validator.ValidateDocument(ctx, "Tailored CV", truncate(cvHTML, 3000), profile)
	if err != nil {
		log.Printf("⚠️ Validation skipped: %v\n", err)
	} else {
		validation["cv"] = models.DocumentValidation{
			Valid:        report.IsValid,
			QualityScore: report.QualityScore,
			Issues:       len(report.Issues),
		}
	}

	response := FormatResponse(FormatterInput{
		Benchmark:     benchmark,
		Analysis:      analysis,
		Roadmap:       roadmap,
		CVHTML:        cvHTML,
		CLHTML:        clHTML,
		PSHTML:        psHTML,
		PortfolioHTML: portfolioHTML,
		Validation:    validation,
		Keywords:      keywords,
		JobTitle:      jobTitle,
	})

	log.Printf("🎉 Pipeline complete: overall score %.0f\n", response.Scores.Overall)
	return response, nil
}

// resolveBenchmark consults the similarity cache before building a fresh
// benchmark. Cache errors are logged and ignored.
func (p *pipelineService) resolveBenchmark(ctx context.Context, jobTitle, company, jdText string) (*models.BenchmarkProfile, error) {
	if p.cache != nil {
		cached, err := p.cache.Lookup(ctx, jobTitle, company, jdText)
		if err != nil {
			log.Printf("⚠️ Benchmark cache lookup failed: %v\n", err)
		} else if cached != nil {
			log.Printf("⚡ Benchmark cache hit for %s at %s\n", jobTitle, company)
			return cached, nil
		}
	}

	benchmark, err := p.benchmark.CreateIdealProfile(ctx, jobTitle, company, jdText)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Store(ctx, jobTitle, company, jdText, benchmark); err != nil {
			log.Printf("⚠️ Benchmark cache store failed: %v\n", err)
		}
	}
	return benchmark, nil
}

// runPhase4 generates the personal statement and evidence portfolio. The
// whole phase is fenced with a recover so a panic degrades to empty output.
func (p *pipelineService) runPhase4(ctx context.Context, profile *models.CandidateProfile, jobTitle, company, jdText string, analysis *models.GapAnalysis, resumeText string) (psHTML, portfolioHTML string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Phase 4 panicked: %v\n", r)
		}
	}()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		out, err := p.documents.GenerateTailoredStatement(ctx, profile, jobTitle, company, jdText, analysis, resumeText)
		if err != nil {
			log.Printf("❌ Personal statement failed: %v\n", err)
			return
		}
		psHTML = out
	}()
	go func() {
		defer wg.Done()
		out, err := p.documents.GenerateTailoredPortfolio(ctx, profile, jobTitle, company, jdText, analysis, resumeText)
		if err != nil {
			log.Printf("❌ Evidence portfolio failed: %v\n", err)
			return
		}
		portfolioHTML = out
	}()
	wg.Wait()

	return psHTML, portfolioHTML
}
