package config_test

import (
	"testing"
	"time"

	"github.com/jmspence/slateview/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.DataURL, convey.ShouldNotBeEmpty)
			convey.So(cfg.FetchTimeoutMS, convey.ShouldEqual, 10_000)
			convey.So(cfg.FetchTimeout(), convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.SiteTitle, convey.ShouldEqual, "Election Candidates")
		})
	})
}
