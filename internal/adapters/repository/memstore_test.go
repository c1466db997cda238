package repository_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/jmspence/slateview/internal/adapters/repository"
	model "github.com/jmspence/slateview/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore(t *testing.T) {
	Convey("Given a roster document", t, func() {
		ctx := context.Background()
		doc := model.Document{Positions: []model.Position{
			{Slug: "president", Title: "President", Candidates: []model.Candidate{{Name: "A"}, {Name: "B"}}},
			{Slug: "treasurer", Title: "Treasurer", Candidates: []model.Candidate{{Name: "C"}}},
			{Title: "Slugless Officer"},
		}}

		store := repository.NewMemStore(ctx, doc)

		Convey("When listing positions", func() {
			got := store.List(ctx)

			Convey("Then roster order is preserved", func() {
				So(len(got), ShouldEqual, 3)
				So(got[0].Slug, ShouldEqual, "president")
				So(got[2].Title, ShouldEqual, "Slugless Officer")
			})
		})

		Convey("When resolving identifiers", func() {
			p, err := store.Get(ctx, "treasurer")
			So(err, ShouldBeNil)
			So(p.Title, ShouldEqual, "Treasurer")

			Convey("And a slugless position resolves by title", func() {
				p, err := store.Get(ctx, "Slugless Officer")
				So(err, ShouldBeNil)
				So(p.Title, ShouldEqual, "Slugless Officer")
			})

			Convey("And an unknown identifier yields ErrNotFound", func() {
				_, err := store.Get(ctx, "provost")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When counting", func() {
			So(store.Count(ctx), ShouldEqual, 3)
			So(store.CandidateCount(ctx), ShouldEqual, 3)
		})

		Convey("When identifiers collide", func() {
			dup := repository.NewMemStore(ctx, model.Document{Positions: []model.Position{
				{Title: "Officer", Candidates: []model.Candidate{{Name: "First"}}},
				{Title: "Officer", Candidates: []model.Candidate{{Name: "Second"}}},
			}})

			Convey("Then the first occurrence wins the lookup", func() {
				p, err := dup.Get(ctx, "Officer")
				So(err, ShouldBeNil)
				So(p.Candidates[0].Name, ShouldEqual, "First")
				So(dup.Count(ctx), ShouldEqual, 2)
			})
		})

		Convey("When the roster is empty", func() {
			empty := repository.NewMemStore(ctx, model.Document{})

			So(empty.Count(ctx), ShouldEqual, 0)
			So(empty.CandidateCount(ctx), ShouldEqual, 0)
			So(len(empty.List(ctx)), ShouldEqual, 0)
		})
	})
}
