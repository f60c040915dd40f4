package nats

import (
	"context"
	"os"
	"testing"
	"time"

	cfg "navzone/common/config"

	"github.com/flswld/halo/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger(&logger.Config{
		AppName:   "nats_test",
		Level:     logger.ParseLevel("INFO"),
		TrackLine: true,
	})
	os.Exit(m.Run())
}

func TestParseNatsAddr(t *testing.T) {
	tests := []struct {
		url  string
		host string
		port int
		ok   bool
	}{
		{"nats://127.0.0.1:4222", "127.0.0.1", 4222, true},
		{"0.0.0.0:5000", "0.0.0.0", 5000, true},
		{"nats://a:1,nats://b:2", "", 0, false},
		{"nats://127.0.0.1", "", 0, false},
		{"nats://127.0.0.1:port", "", 0, false},
	}
	for _, tt := range tests {
		host, port, err := ParseNatsAddr(tt.url)
		if (err == nil) != tt.ok || host != tt.host || port != tt.port {
			t.Fatalf("parse %v: got %v %v %v", tt.url, host, port, err)
		}
	}
}

func TestRunNatsServer(t *testing.T) {
	cfg.CONF = &cfg.Config{
		Navzone: cfg.Navzone{StandaloneModeEnable: true},
		MQ:      cfg.MQ{NatsUrl: "nats://127.0.0.1:-1"},
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*200)
	defer cancel()
	if err := RunNatsServer(ctx); err != nil {
		t.Fatalf("run nats server error: %v", err)
	}
}
