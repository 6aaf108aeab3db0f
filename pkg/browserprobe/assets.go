package browserprobe

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

//go:embed assets
var assets embed.FS

// WorkerScriptPath is where the worker bootstrap script is served.
const WorkerScriptPath = "/worker.js"

// ServiceChannel is the BroadcastChannel a service worker answers on.
// assets/worker.js listens on the same name.
const ServiceChannel = "liekit-worker"

// WorkerScript returns the embedded worker bootstrap script.
func WorkerScript() []byte {
	b, _ := assets.ReadFile("assets/worker.js")
	return b
}

// AssetsHandler serves the probe page and the worker script. Both must share
// an origin for service and shared workers to load.
func AssetsHandler() http.Handler {
	sub, _ := fs.Sub(assets, "assets")

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFileFS(w, r, sub, "index.html")
	})
	r.Get(WorkerScriptPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Service-Worker-Allowed", "/")
		_, _ = w.Write(WorkerScript())
	})
	return r
}

// assetServer serves AssetsHandler on a loopback listener.
type assetServer struct {
	srv *http.Server
	url string
}

func startAssets(addr string) (*assetServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Join(ErrAssetsServer, err)
	}
	srv := &http.Server{
		Handler:           AssetsHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() { _ = srv.Serve(ln) }()
	return &assetServer{srv: srv, url: "http://" + ln.Addr().String()}, nil
}

func (a *assetServer) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.srv.Shutdown(ctx)
}
