package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	charmlog "github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/jsphweid/midirect/config"
	"github.com/jsphweid/midirect/file"
	"github.com/jsphweid/midirect/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// uploads larger than this are rejected
const maxUploadBytes = 32 << 20

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves POST /convert, turning an uploaded MIDI file into CSV.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func NewRouter(c *config.Config, l *charmlog.Logger) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", convertHandler(c, l)).Methods("POST")
	return cors.New(cors.Options{
		AllowedOrigins: c.Serve.AllowedOrigins,
		AllowedMethods: []string{http.MethodPost},
	}).Handler(router)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func convertHandler(c *config.Config, l *charmlog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqCfg := *c
		if layout := r.URL.Query().Get("layout"); layout != "" {
			reqCfg.Layout = model.Layout(layout)
		}
		if err := reqCfg.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), charmlog.ContextKey, l)
		body := http.MaxBytesReader(w, r.Body, maxUploadBytes)
		var buf bytes.Buffer
		if err := file.ConvertStream(ctx, "upload", body, &buf, rectOptions(&reqCfg)); err != nil {
			l.Warn("rejected upload", "err", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Write(buf.Bytes())
	}
}

func serve(ctx context.Context) error {
	server := &http.Server{Addr: cfg.Serve.Addr, Handler: NewRouter(cfg, logger)}
	go func() {
		<-ctx.Done()
		server.Close()
	}()
	logger.Info("listening", "addr", cfg.Serve.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
