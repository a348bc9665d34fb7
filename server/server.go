package server

import (
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/0xERR0R/domainextractor/api"
	"github.com/0xERR0R/domainextractor/config"
	"github.com/0xERR0R/domainextractor/log"
	"github.com/0xERR0R/domainextractor/metrics"
	"github.com/0xERR0R/domainextractor/suffixlist"
	"github.com/0xERR0R/domainextractor/util"
	"github.com/0xERR0R/domainextractor/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// Server serves the HTTP API for the active suffix list
type Server struct {
	cfg          *config.Config
	holder       *suffixlist.Holder
	httpListener net.Listener
	httpMux      *chi.Mux
	httpServer   *httpServer
}

func logger() *logrus.Entry {
	return log.PrefixedLog("server")
}

// NewServer creates new server instance with passed config
func NewServer(cfg *config.Config, holder *suffixlist.Holder) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Ports.HTTP))
	if err != nil {
		return nil, fmt.Errorf("start http listener on port %d failed: %w", cfg.Ports.HTTP, err)
	}

	router := createRouter(cfg)

	metrics.Start(router, cfg.Prometheus)
	metrics.RegisterEventListeners()

	api.RegisterEndpoint(router, holder)

	server := &Server{
		cfg:          cfg,
		holder:       holder,
		httpListener: listener,
		httpMux:      router,
		httpServer:   newHTTPServer("http", router),
	}

	server.printConfiguration()

	return server, nil
}

// Addr returns the address of the http listener
func (s *Server) Addr() net.Addr {
	return s.httpListener.Addr()
}

// Start starts the server, the listener is closed once `ctx` is done
func (s *Server) Start(ctx context.Context, errCh chan<- error) {
	logger().Info("Starting server")

	go func() {
		logger().Infof("%s server is up and running on addr/port %s", s.httpServer, s.httpListener.Addr())

		if err := s.httpServer.Serve(ctx, s.httpListener); err != nil {
			errCh <- fmt.Errorf("start http listener failed: %w", err)
		}
	}()

	registerPrintConfigurationTrigger(ctx, s)
}

// Stop stops the server and waits for running requests
func (s *Server) Stop(ctx context.Context) error {
	logger().Info("Stopping server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("stop http listener failed: %w", err)
	}

	return nil
}

func (s *Server) printConfiguration() {
	logger().Info("current configuration:")

	s.cfg.LogConfig(logger())

	logger().Infof("- suffix rules: %d, loaded at %s",
		s.holder.Extractor().RuleCount(), s.holder.LastRefresh().Format("2006-01-02 15:04:05"))
	logger().Infof("- HTTP listening on addr/port: %s", s.httpListener.Addr())

	logger().Info("runtime information:")

	// force garbage collector
	runtime.GC()
	debug.FreeOSMemory()

	// gather memory stats
	var m runtime.MemStats

	runtime.ReadMemStats(&m)

	logger().Infof("MEM Alloc =        %10v MB", toMB(m.Alloc))
	logger().Infof("MEM HeapAlloc =    %10v MB", toMB(m.HeapAlloc))
	logger().Infof("MEM Sys =          %10v MB", toMB(m.Sys))
	logger().Infof("MEM NumGC =        %10v", m.NumGC)
	logger().Infof("RUN NumCPU =       %10d", runtime.NumCPU())
	logger().Infof("RUN NumGoroutine = %10d", runtime.NumGoroutine())
}

func toMB(b uint64) uint64 {
	const bytesInKB = 1024

	return b / bytesInKB / bytesInKB
}

func createRouter(cfg *config.Config) *chi.Mux {
	router := chi.NewRouter()

	configureCorsHandler(router)

	configureDebugHandler(router)

	configureRootHandler(cfg, router)

	return router
}

func configureRootHandler(cfg *config.Config, router *chi.Mux) {
	t := template.Must(template.New("index").Parse(web.IndexTmpl))

	router.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		type HandlerLink struct {
			URL   string
			Title string
		}

		type PageData struct {
			Links     []HandlerLink
			Version   string
			BuildTime string
		}

		pd := PageData{
			Links: []HandlerLink{
				{
					URL:   api.PathTLDsPath,
					Title: "Public suffix rules",
				},
				{
					URL:   "/debug/",
					Title: "Go Profiler",
				},
			},
			Version:   util.Version,
			BuildTime: util.BuildTime,
		}

		if cfg.Prometheus.Enable {
			pd.Links = append(pd.Links, HandlerLink{
				URL:   cfg.Prometheus.Path,
				Title: "Prometheus endpoint",
			})
		}

		err := t.Execute(writer, pd)
		if err != nil {
			logger().Error("can't write index template: ", err)
			writer.WriteHeader(http.StatusInternalServerError)
		}
	})
}

func configureDebugHandler(router *chi.Mux) {
	router.Mount("/debug", middleware.Profiler())
}

func configureCorsHandler(router *chi.Mux) {
	crs := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	router.Use(crs.Handler)
}
