package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmspence/slateview/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"SLATE_CONFIG",
		"SLATE_ADDR",
		"SLATE_LOG_LEVEL",
		"SLATE_DATA_URL",
		"SLATE_FETCH_TIMEOUT_MS",
		"SLATE_HEADSHOT_DIR",
		"SLATE_SITE_TITLE",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slateview.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.FetchTimeoutMS, convey.ShouldEqual, 10_000)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SLATE_ADDR", ":9090")
			_ = os.Setenv("SLATE_DATA_URL", "http://roster.local/candidates.json")
			_ = os.Setenv("SLATE_FETCH_TIMEOUT_MS", "2500")
			_ = os.Setenv("SLATE_SITE_TITLE", "GSG Elections")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DataURL, convey.ShouldEqual, "http://roster.local/candidates.json")
				convey.So(cfg.FetchTimeoutMS, convey.ShouldEqual, 2500)
				convey.So(cfg.SiteTitle, convey.ShouldEqual, "GSG Elections")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			clearConfigEnvVars()
			yamlContent := `
addr: ":7070"
data_url: "http://files.local/roster.json"
fetch_timeout_ms: 4000
headshot_dir: "/srv/headshots"
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("SLATE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.DataURL, convey.ShouldEqual, "http://files.local/roster.json")
				convey.So(cfg.FetchTimeoutMS, convey.ShouldEqual, 4000)
				convey.So(cfg.HeadshotDir, convey.ShouldEqual, "/srv/headshots")
			})
		})

		convey.Convey("When env overrides the YAML file", func() {
			clearConfigEnvVars()
			tmpFile := createTempConfigFile(t, `addr: ":7070"`)
			_ = os.Setenv("SLATE_CONFIG", tmpFile)
			_ = os.Setenv("SLATE_ADDR", ":6060")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env should win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When required values are blanked out", func() {
			clearConfigEnvVars()
			tmpFile := createTempConfigFile(t, `data_url: ""`)
			_ = os.Setenv("SLATE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should fail with ErrInvalidConfig", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SLATE_CONFIG", "/nonexistent/slateview.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should fail with ErrLoadConfig", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}
