package services

import (
	"log"
	"sync"

	"careerpilot/internal/models"
	"careerpilot/internal/repositories"
)

// RunPersister records generation runs off the request path. The pipeline
// handler enqueues a record after responding; persistence failures only log.
type RunPersister interface {
	Start()
	Stop()
	Enqueue(run *models.GenerationRun)
}

type runPersister struct {
	runRepo     repositories.RunRepository
	queue       chan *models.GenerationRun
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewRunPersister(runRepo repositories.RunRepository, concurrency int) RunPersister {
	return &runPersister{
		runRepo:     runRepo,
		queue:       make(chan *models.GenerationRun, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements RunPersister.
func (p *runPersister) Start() {
	log.Printf("🚀 Starting run persister with %d workers\n", p.concurrency)

	for i := 0; i < p.concurrency; i++ {
		p.wg.Add(1)
		go p.processRuns(i + 1)
	}

	log.Println("✅ Run persister started successfully")
}

// Stop implements RunPersister.
func (p *runPersister) Stop() {
	log.Println("🛑 Stopping run persister...")
	close(p.stopChan)
	p.wg.Wait()
	log.Println("✅ Run persister stopped")
}

// Enqueue implements RunPersister.
func (p *runPersister) Enqueue(run *models.GenerationRun) {
	select {
	case p.queue <- run:
	case <-p.stopChan:
		log.Printf("⚠️  Persister stopped, dropping run record for %s\n", run.JobTitle)
	}
}

func (p *runPersister) processRuns(workerID int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			log.Printf("👷 Persister worker #%d stopped\n", workerID)
			return
		case run := <-p.queue:
			if err := p.runRepo.Create(run); err != nil {
				log.Printf("❌ Persister worker #%d failed to record run: %v\n", workerID, err)
			} else {
				log.Printf("💾 Run %s recorded (%s)\n", run.ID, run.Status)
			}
		}
	}
}
