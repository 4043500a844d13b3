package watcher

import (
	"context"
	"time"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/pubsub"
)

// ConfigEvent is published after every debounced config file change.
// Type is pubsub.ConfigReloaded with the new Payload, or pubsub.ConfigFailed
// with Err set.
type ConfigEvent = pubsub.Event[config.Config]

// Reloader re-reads the config file whenever it changes and publishes the
// result.
type Reloader struct {
	watcher *Watcher
	path    string
	load    func(string) (config.Config, error)
	broker  *pubsub.Broker[config.Config]
}

// NewReloader watches path, loading it with config.Load on change.
func NewReloader(path string, debounce time.Duration) (*Reloader, error) {
	w, err := New(Config{Path: path, DebounceDur: debounce})
	if err != nil {
		return nil, err
	}
	return &Reloader{
		watcher: w,
		path:    path,
		load:    config.Load,
		broker:  pubsub.NewBroker[config.Config](),
	}, nil
}

// Subscribe returns reload events until ctx is cancelled or the reloader stops.
func (r *Reloader) Subscribe(ctx context.Context) <-chan ConfigEvent {
	return r.broker.Subscribe(ctx)
}

// Start begins watching. Reloads stop when ctx is cancelled or Stop is called.
func (r *Reloader) Start(ctx context.Context) error {
	onChange, err := r.watcher.Start()
	if err != nil {
		return err
	}

	log.Info(log.CatWatcher, "Watching config", "path", r.path)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-onChange:
				if !ok {
					return
				}
				r.reload()
			}
		}
	}()
	return nil
}

func (r *Reloader) reload() {
	cfg, err := r.load(r.path)
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Config reload failed", err, "path", r.path)
		r.broker.PublishErr(pubsub.ConfigFailed, err)
		return
	}
	log.Info(log.CatWatcher, "Config reloaded", "path", r.path)
	r.broker.Publish(pubsub.ConfigReloaded, cfg)
}

// Stop releases the file watch and closes all subscriptions.
// Reloads that a full subscriber missed are reported in the log.
func (r *Reloader) Stop() error {
	if n := r.broker.Dropped(); n > 0 {
		log.Warn(log.CatWatcher, "Config events dropped", "path", r.path, "count", n)
	}
	r.broker.Close()
	return r.watcher.Stop()
}
