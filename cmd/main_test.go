package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/jmspence/slateview/internal/adapters/http/api"
	"github.com/jmspence/slateview/internal/adapters/http/site"
	app "github.com/jmspence/slateview/internal/app"
	"github.com/jmspence/slateview/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("SLATE_ADDR", ":8085")
			_ = os.Setenv("SLATE_DATA_URL", "http://localhost:8085/assets/data/candidates.json")
			defer func() {
				_ = os.Unsetenv("SLATE_ADDR")
				_ = os.Unsetenv("SLATE_DATA_URL")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8085")
				convey.So(cfg.DataURL, convey.ShouldEqual, "http://localhost:8085/assets/data/candidates.json")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithDataURL("http://localhost:9000/roster.json"),
					app.WithFetchTimeout(2*time.Second),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When assembling the HTTP mux", func() {
			svc := app.New(app.WithDataURL("http://localhost:9000/roster.json"))
			mux := http.NewServeMux()
			ctx := context.Background()

			site.Register(ctx, mux, svc, "Election Candidates", "")
			api.NewServer(svc, svc).Register(ctx, mux)

			convey.Convey("Then the mux should be usable", func() {
				convey.So(mux, convey.ShouldNotBeNil)
			})
		})
	})
}
