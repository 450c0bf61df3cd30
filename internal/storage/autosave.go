// internal/storage/autosave.go
package storage

import (
	"sync"
	"time"

	"go-ninja-idle/internal/app"
)

// AutoSaver периодически скидывает снапшот в хранилище. Ядро боя не
// отвечает за расписание сохранений — этим владеет внешний слой.
type AutoSaver struct {
	store    *Store
	source   func() *app.Snapshot
	interval time.Duration

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewAutoSaver(store *Store, source func() *app.Snapshot, interval time.Duration) *AutoSaver {
	return &AutoSaver{
		store:    store,
		source:   source,
		interval: interval,
	}
}

// Start запускает периодическое сохранение. Идемпотентен.
func (a *AutoSaver) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return
	}
	a.running = true
	a.stopChan = make(chan struct{})

	a.wg.Add(1)
	go a.run(a.stopChan)
}

// Stop останавливает сохранение и делает финальную запись. Идемпотентен.
func (a *AutoSaver) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	close(a.stopChan)
	a.mu.Unlock()

	a.wg.Wait()
	a.save()
}

func (a *AutoSaver) run(stop <-chan struct{}) {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			a.save()
		}
	}
}

func (a *AutoSaver) save() {
	snap := a.source()
	if snap == nil {
		return
	}

	if err := a.store.SaveNinja(NinjaRecord{
		Level:      snap.Ninja.Level,
		Experience: snap.Ninja.Experience,
		Gold:       snap.Ninja.Gold,
		Gems:       snap.Ninja.Gems,
	}); err != nil {
		a.store.log.Error().Err(err).Msg("autosave: ninja")
	}

	if err := a.store.SaveProgress(ProgressRecord{
		ZoneID: snap.Progress.ZoneID,
		Level:  snap.Progress.Level,
		Kills:  snap.Progress.Kills,
	}); err != nil {
		a.store.log.Error().Err(err).Msg("autosave: progress")
	}
}
