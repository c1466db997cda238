package service_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"

	api "github.com/jmspence/slateview/internal/adapters/http/api"
	site "github.com/jmspence/slateview/internal/adapters/http/site"
	app "github.com/jmspence/slateview/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

func TestServiceIntegration(t *testing.T) {
	Convey("Given a fully wired roster service", t, func() {
		ctx := context.Background()

		rosterSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(rosterJSON))
		}))
		defer rosterSrv.Close()

		svc := app.New(app.WithDataURL(rosterSrv.URL))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		mux := http.NewServeMux()
		site.Register(ctx, mux, svc, "GSG Elections", "")
		api.NewServer(svc, svc).Register(ctx, mux)

		web := httptest.NewServer(mux)
		defer web.Close()

		Convey("When fetching the roster page end-to-end", func() {
			resp, err := http.Get(web.URL + "/")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			doc, err := goquery.NewDocumentFromReader(resp.Body)
			So(err, ShouldBeNil)

			Convey("Then the page shows the loaded roster", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(doc.Find(".tab").Length(), ShouldEqual, 2)
				So(doc.Find(".tab.active").Length(), ShouldEqual, 1)
				So(doc.Find(".summary").Text(), ShouldEqual, "President • 2 candidates")
			})
		})

		Convey("When fetching the JSON API end-to-end", func() {
			resp, err := http.Get(web.URL + "/positions/president")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the detail endpoint answers", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				body, err := io.ReadAll(resp.Body)
				So(err, ShouldBeNil)
				So(string(body), ShouldContainSubstring, "A. Lee")
			})
		})

		Convey("When fetching operational endpoints", func() {
			for _, path := range []string{"/stats", "/healthz"} {
				resp, err := http.Get(web.URL + path)
				So(err, ShouldBeNil)
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				_ = resp.Body.Close()
			}
		})
	})
}
