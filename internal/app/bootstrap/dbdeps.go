// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"sync"

	"github.com/dalemusser/clubhub/internal/app/store/clubstore"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	Stores *clubstore.Stores

	// MongoDatabase is set only for the mongo backend; EnsureSchema uses it.
	MongoDatabase *mongo.Database

	// background collects stop funcs for goroutines started while building
	// the handler (rate limiter sweeps). Shutdown runs them.
	background *background
}

type background struct {
	mu    sync.Mutex
	stops []func()
}

func (b *background) add(stop func()) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stops = append(b.stops, stop)
}

func (b *background) stopAll() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, stop := range b.stops {
		stop()
	}
	b.stops = nil
}
